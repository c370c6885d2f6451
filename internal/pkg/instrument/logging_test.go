package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestHandler_RenamesKeysAndAddsContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&Config{ServiceName: "mailer", LogOutput: &buf}, nil))

	ctx := SetCorrelationID(context.Background(), "cid-1")
	logger.InfoContext(ctx, "dispatched", "variant", "SMTP")

	line := decodeLine(t, &buf)
	assert.Equal(t, "dispatched", line["msg"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Contains(t, line, "ts")
	assert.Equal(t, "cid-1", line["_cID"])
	assert.Equal(t, "mailer", line["service"])
	assert.Equal(t, "SMTP", line["variant"])
	assert.Contains(t, line["file"], "internal/pkg/instrument/logging_test.go:")
}

func TestHandler_MasksFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&Config{LogOutput: &buf, MaskFields: []string{" Password ", ""}}, nil))

	logger.Info("login", "password", "secret", slog.Group("user", "PASSWORD", "secret", "name", "ann"))

	line := decodeLine(t, &buf)
	assert.Equal(t, "***", line["password"])
	user, ok := line["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "***", user["PASSWORD"])
	assert.Equal(t, "ann", user["name"])
}

func TestHandler_WithAttrsMasked(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&Config{LogOutput: &buf, MaskFields: []string{"token"}}, nil))

	logger.With("token", "abc").Info("with attrs")

	line := decodeLine(t, &buf)
	assert.Equal(t, "***", line["token"])
}

func TestHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&Config{LogOutput: &buf, LogLevel: "warn"}, nil))

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.NotEmpty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.Equal(t, "abc", GetCorrelationID(SetCorrelationID(context.Background(), "abc")))
}

func TestNew_DisabledReturnsNoop(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	ins, err := New(context.Background(), &Config{Enabled: false, LogOutput: &buf})
	require.NoError(t, err)

	_, span := ins.Tracer("test").Start(context.Background(), "op")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, ins.Shutdown(context.Background()))

	slog.Info("routed")
	assert.Contains(t, buf.String(), `"msg":"routed"`)
}

func TestClampRatio(t *testing.T) {
	assert.InDelta(t, 0.0, clampRatio(-1), 0)
	assert.InDelta(t, 1.0, clampRatio(2), 0)
	assert.InDelta(t, 0.25, clampRatio(0.25), 0)
}
