package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gornius/scheduler-bot/config"
	"github.com/gornius/scheduler-bot/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{
		Token:            "secret",
		AppID:            "app-1",
		ReactionInterval: 250 * time.Millisecond,
	}

	a, err := New(cfg, utils.NewLogger(&buf, slog.LevelInfo))
	require.NoError(t, err)

	assert.Equal(t, "Bot secret", a.session.Token)
	assert.Equal(t, discordgo.IntentsGuilds, a.session.Identify.Intents)
	assert.NotNil(t, a.registry)
	assert.Same(t, cfg, a.cfg)
}

func TestClose_CancelsHandlerContext(t *testing.T) {
	var buf bytes.Buffer
	a, err := New(&config.Config{Token: "secret", AppID: "app-1"}, utils.NewLogger(&buf, slog.LevelInfo))
	require.NoError(t, err)

	a.addHandlers(context.Background())
	require.NoError(t, a.ctx.Err())

	_ = a.Close()
	assert.ErrorIs(t, a.ctx.Err(), context.Canceled)
}

func TestClose_BeforeStart(t *testing.T) {
	var buf bytes.Buffer
	a, err := New(&config.Config{Token: "secret", AppID: "app-1"}, utils.NewLogger(&buf, slog.LevelInfo))
	require.NoError(t, err)

	assert.NotPanics(t, func() { _ = a.Close() })
}
