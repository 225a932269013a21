package slashcommands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gornius/scheduler-bot/poll"
	"github.com/gornius/scheduler-bot/utils"
	"golang.org/x/time/rate"
)

const (
	SchedulerCommandName  = "scheduler"
	SchedulerOptTitle     = "title"
	SchedulerOptDatetimes = "datetimes"

	tooManyCandidatesMessage = "候補は最大10個までにしてください。"
	invalidCodeMessage       = "候補日時の形式が正しくありません: %s（MMDDHHmm の8桁で指定してください）"
	noCandidatesMessage      = "候補日時を1つ以上指定してください。"
)

var SchedulerApplicationCommand = &discordgo.ApplicationCommand{
	Name:        SchedulerCommandName,
	Description: "イベント日程を調整します",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        SchedulerOptTitle,
			Description: "イベントのタイトル",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        SchedulerOptDatetimes,
			Description: "候補日時（例: 06201200,06211300）",
			Required:    true,
		},
	},
}

type Scheduler struct {
	Logger *slog.Logger
	// Now supplies the current time; its year and location resolve candidate codes.
	Now              func() time.Time
	AbsentCaption    string
	ReactionInterval time.Duration
}

func NewSchedulerCommand(s *Scheduler) *SlashCommand {
	return &SlashCommand{
		ApplicationCommand: SchedulerApplicationCommand,
		Handler:            s.Handle,
	}
}

func (sc *Scheduler) Handle(ctx context.Context, s Session, i *discordgo.InteractionCreate) error {
	title, datetimes := schedulerOptions(i.ApplicationCommandData())

	p, err := poll.Build(poll.NewRequest(title, datetimes), sc.now(), sc.AbsentCaption)
	if err != nil {
		return rejectRequest(s, i.Interaction, err)
	}
	if sc.Logger != nil {
		utils.InteractionLogger(sc.Logger, i.Interaction).Debug("poll built",
			"title", p.Title, "candidates", len(p.Candidates), "table", "\n"+p.Table())
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{p.Embed()},
		},
	})
	if err != nil {
		return fmt.Errorf("send poll: %w", err)
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		return fmt.Errorf("fetch poll message: %w", err)
	}

	// A fresh limiter per poll keeps concurrent invocations independent.
	limiter := rate.NewLimiter(rate.Inf, 1)
	if sc.ReactionInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(sc.ReactionInterval), 1)
	}
	for _, reaction := range p.Reactions() {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("add reaction %s: %w", reaction, err)
		}
		if err := s.MessageReactionAdd(msg.ChannelID, msg.ID, reaction); err != nil {
			return fmt.Errorf("add reaction %s: %w", reaction, err)
		}
	}

	return nil
}

func (sc *Scheduler) now() time.Time {
	if sc.Now != nil {
		return sc.Now()
	}
	return time.Now()
}

func schedulerOptions(data discordgo.ApplicationCommandInteractionData) (title, datetimes string) {
	for _, opt := range data.Options {
		if opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		switch opt.Name {
		case SchedulerOptTitle:
			title = opt.StringValue()
		case SchedulerOptDatetimes:
			datetimes = opt.StringValue()
		}
	}
	return title, datetimes
}

func rejectRequest(s Session, i *discordgo.Interaction, cause error) error {
	var (
		message string
		codeErr *poll.CodeError
	)
	switch {
	case errors.Is(cause, poll.ErrTooManyCandidates):
		message = tooManyCandidatesMessage
	case errors.Is(cause, poll.ErrNoCandidates):
		message = noCandidatesMessage
	case errors.As(cause, &codeErr):
		message = fmt.Sprintf(invalidCodeMessage, codeErr.Code)
	default:
		return cause
	}

	if err := utils.SendEphemeralMessage(s, i, message); err != nil {
		return fmt.Errorf("send rejection: %w", err)
	}
	return nil
}
