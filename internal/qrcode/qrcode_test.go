package qrcode

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeParse(t *testing.T) {
	generatedAt := time.Date(2025, 4, 19, 9, 0, 0, 0, time.UTC)

	text, err := Encode(NewPayload("session-1", "", generatedAt))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"session_checkin","sessionId":"session-1","eventId":"event-1","timestamp":1745053200000}`, text)

	p, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "session-1", p.SessionID)
	assert.Equal(t, "event-1", p.EventID)
	assert.Equal(t, generatedAt.UnixMilli(), p.Timestamp)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "not json", text: "https://example.com/session-1"},
		{name: "wrong type", text: `{"type":"ticket","sessionId":"session-1"}`},
		{name: "missing session", text: `{"type":"session_checkin"}`},
		{name: "empty", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestParseOptionalFields(t *testing.T) {
	p, err := Parse(`{"type":"session_checkin","sessionId":"s9"}`)
	require.NoError(t, err)
	assert.Equal(t, "s9", p.SessionID)
	assert.Empty(t, p.EventID)
}

func TestPNG(t *testing.T) {
	data, err := PNG(NewPayload("session-1", "devcon", time.Now()), 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}
