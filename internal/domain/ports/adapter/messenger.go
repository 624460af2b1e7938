// File: internal/domain/ports/adapter/messenger.go
package adapter

import "context"

// Messenger sends plain text to a chat destination. Destinations are either
// the requesting user's chat or the fixed admin group; neither is persisted.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}
