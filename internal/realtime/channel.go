package realtime

import (
	"strings"

	"github.com/KirkDiggler/agendabot/internal/models"
)

const channelPrefix = "documents."

// CollectionChannel is the channel carrying every change in a collection
func CollectionChannel(collection string) string {
	return channelPrefix + collection
}

// DocumentChannel is the channel carrying changes to a single document
func DocumentChannel(collection, documentID string) string {
	return channelPrefix + collection + "." + documentID
}

// ParseChannel splits a channel name into its collection and optional document ID
func ParseChannel(channel string) (collection, documentID string, ok bool) {
	rest, found := strings.CutPrefix(channel, channelPrefix)
	if !found || rest == "" {
		return "", "", false
	}
	collection, documentID, _ = strings.Cut(rest, ".")
	return collection, documentID, collection != ""
}

// channelsFor lists every channel an event is delivered on
func channelsFor(event *models.ChangeEvent) []string {
	channels := []string{CollectionChannel(event.Collection)}
	if event.DocumentID != "" {
		channels = append(channels, DocumentChannel(event.Collection, event.DocumentID))
	}
	return channels
}
