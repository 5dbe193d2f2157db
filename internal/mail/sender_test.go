package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
)

func TestNewSender_ProductionModeSelectsMailjet(t *testing.T) {
	cfg := config.Mail{Mode: "production", APIKey: "key", APISecret: "secret", FromEmail: "app@notekeeper.dev"}

	s := NewSender(cfg, logger.Nop())

	_, ok := s.(*mailjetSender)
	assert.True(t, ok)
}

func TestNewSender_DefaultModeSelectsLogSender(t *testing.T) {
	s := NewSender(config.Mail{}, logger.Nop())

	_, ok := s.(*logSender)
	assert.True(t, ok)
}

func TestLogSender_LogsInsteadOfSending(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}

	s := &logSender{logger: l}
	err := s.Send(context.Background(), "alice@example.com", "Your code", "123456")
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "alice@example.com", entry["to"])
	assert.Equal(t, "Your code", entry["subject"])
	assert.Equal(t, "123456", entry["body"])
}
