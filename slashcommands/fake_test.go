package slashcommands

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

type reaction struct {
	ChannelID string
	MessageID string
	Emoji     string
}

// fakeSession records calls and answers each interaction with a message
// whose ID is derived from the interaction ID.
type fakeSession struct {
	mu        sync.Mutex
	responses []*discordgo.InteractionResponse
	fetches   int
	reactions []reaction

	respondErr  error
	responseErr error
	// reactErrAt fails the n-th reaction call (1-based) when set.
	reactErrAt int
	reactErr   error
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	return f.respondErr
}

func (f *fakeSession) InteractionResponse(i *discordgo.Interaction, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.responseErr != nil {
		return nil, f.responseErr
	}
	return &discordgo.Message{ID: "msg-" + i.ID, ChannelID: i.ChannelID}, nil
}

func (f *fakeSession) MessageReactionAdd(channelID, messageID, emojiID string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.reactErrAt > 0 && len(f.reactions)+1 == f.reactErrAt {
		return f.reactErr
	}
	f.reactions = append(f.reactions, reaction{ChannelID: channelID, MessageID: messageID, Emoji: emojiID})
	return nil
}

func (f *fakeSession) reactionsFor(messageID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var emojis []string
	for _, r := range f.reactions {
		if r.MessageID == messageID {
			emojis = append(emojis, r.Emoji)
		}
	}
	return emojis
}

type fakeOverwriter struct {
	appID    string
	guildID  string
	commands []*discordgo.ApplicationCommand
	err      error
}

func (f *fakeOverwriter) ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.appID, f.guildID, f.commands = appID, guildID, commands
	if f.err != nil {
		return nil, f.err
	}
	return commands, nil
}

func commandInteraction(id, name string, options map[string]string) *discordgo.InteractionCreate {
	data := discordgo.ApplicationCommandInteractionData{Name: name}
	for _, key := range []string{SchedulerOptTitle, SchedulerOptDatetimes} {
		if v, ok := options[key]; ok {
			data.Options = append(data.Options, &discordgo.ApplicationCommandInteractionDataOption{
				Name:  key,
				Type:  discordgo.ApplicationCommandOptionString,
				Value: v,
			})
		}
	}
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        id,
		ChannelID: "channel-1",
		GuildID:   "guild-1",
		Type:      discordgo.InteractionApplicationCommand,
		Data:      data,
		Member:    &discordgo.Member{User: &discordgo.User{ID: "user-1", Username: "alice"}},
	}}
}

func schedulerInteraction(id, title, datetimes string) *discordgo.InteractionCreate {
	return commandInteraction(id, SchedulerCommandName, map[string]string{
		SchedulerOptTitle:     title,
		SchedulerOptDatetimes: datetimes,
	})
}
