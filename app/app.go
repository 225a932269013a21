package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/gornius/scheduler-bot/config"
	"github.com/gornius/scheduler-bot/slashcommands"
)

// App owns the Discord session and the registered commands.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	session  *discordgo.Session
	registry *slashcommands.Registry

	// ctx is handed to command handlers; cancel stops their reaction loops.
	ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	registry := slashcommands.NewRegistry(logger, slashcommands.NewSchedulerCommand(&slashcommands.Scheduler{
		Logger:           logger,
		AbsentCaption:    cfg.AbsentCaption,
		ReactionInterval: cfg.ReactionInterval,
	}))

	return &App{
		cfg:      cfg,
		logger:   logger,
		session:  dg,
		registry: registry,
	}, nil
}

// Start registers the commands and opens the gateway connection. Handlers
// run under a child of ctx that Close cancels.
func (a *App) Start(ctx context.Context) error {
	a.addHandlers(ctx)

	a.registry.Sync(a.session, a.cfg.AppID, a.cfg.GuildID)

	if err := a.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	return nil
}

func (a *App) addHandlers(ctx context.Context) {
	a.ctx, a.cancel = context.WithCancel(ctx)

	a.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		a.logger.Info("logged in", "user", r.User.String())
	})
	a.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		a.registry.Dispatch(a.ctx, s, i)
	})
}

// Close stops in-flight handlers, then closes the gateway connection.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	return a.session.Close()
}
