package realtime

import (
	"testing"

	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		name       string
		channel    string
		collection string
		documentID string
		ok         bool
	}{
		{name: "collection", channel: "documents.polls", collection: "polls", ok: true},
		{name: "document", channel: "documents.polls.p1", collection: "polls", documentID: "p1", ok: true},
		{name: "missing prefix", channel: "polls", ok: false},
		{name: "empty collection", channel: "documents.", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collection, documentID, ok := ParseChannel(tt.channel)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.collection, collection)
			assert.Equal(t, tt.documentID, documentID)
		})
	}
}

func TestChannelsFor(t *testing.T) {
	event := &models.ChangeEvent{Collection: "questions", DocumentID: "q1"}
	assert.Equal(t, []string{"documents.questions", "documents.questions.q1"}, channelsFor(event))

	assert.Equal(t, []string{"documents.questions"}, channelsFor(&models.ChangeEvent{Collection: "questions"}))
}
