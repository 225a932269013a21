package utils

import (
	"io"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

type InteractionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

func GetUserFromInteraction(i *discordgo.Interaction) *discordgo.User {
	if i.User != nil {
		return i.User
	}

	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}

	return nil
}

// SendEphemeralMessage replies with text only the invoking user can see.
func SendEphemeralMessage(s InteractionResponder, i *discordgo.Interaction, message string) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// InteractionLogger annotates logger with who invoked what, where.
func InteractionLogger(logger *slog.Logger, i *discordgo.Interaction) *slog.Logger {
	attrs := []any{"interaction_id", i.ID, "guild_id", i.GuildID, "channel_id", i.ChannelID}
	if user := GetUserFromInteraction(i); user != nil {
		attrs = append(attrs, "user", user.Username)
	}
	return logger.With(attrs...)
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
