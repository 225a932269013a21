package slashcommands

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/gornius/scheduler-bot/utils"
)

// Session is the part of *discordgo.Session that command handlers use.
type Session interface {
	utils.InteractionResponder
	InteractionResponse(interaction *discordgo.Interaction, options ...discordgo.RequestOption) (*discordgo.Message, error)
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
}

type CommandOverwriter interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

type SlashCommand struct {
	ApplicationCommand *discordgo.ApplicationCommand
	Handler            func(ctx context.Context, s Session, i *discordgo.InteractionCreate) error
}

type Registry struct {
	commands []*SlashCommand
	logger   *slog.Logger
}

func NewRegistry(logger *slog.Logger, commands ...*SlashCommand) *Registry {
	return &Registry{commands: commands, logger: logger}
}

// Sync replaces the application's registered commands with the registry's.
// Failures are logged; the bot keeps running with whatever Discord already has.
func (r *Registry) Sync(o CommandOverwriter, appID, guildID string) {
	definitions := make([]*discordgo.ApplicationCommand, 0, len(r.commands))
	for _, command := range r.commands {
		definitions = append(definitions, command.ApplicationCommand)
	}

	r.logger.Info("registering slash commands", "count", len(definitions), "guild_id", guildID)
	registered, err := o.ApplicationCommandBulkOverwrite(appID, guildID, definitions)
	if err != nil {
		r.logger.Error("failed to register slash commands", "err", err)
		return
	}
	r.logger.Info("slash commands registered", "count", len(registered))
}

// Dispatch runs the handler of the invoked command. Other interaction types
// and unknown command names are ignored.
func (r *Registry) Dispatch(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
	if i.Interaction.Type != discordgo.InteractionApplicationCommand {
		return
	}
	commandName := i.ApplicationCommandData().Name
	var foundCommand *SlashCommand
	for _, command := range r.commands {
		if command.ApplicationCommand.Name == commandName {
			foundCommand = command
			break
		}
	}
	if foundCommand == nil {
		return
	}

	logger := utils.InteractionLogger(r.logger, i.Interaction).With("command", commandName)
	logger.Debug("handling command")
	if err := foundCommand.Handler(ctx, s, i); err != nil {
		logger.Error("command failed", "err", err)
	}
}
