package contextx

import (
	"context"
	"fmt"
	"strconv"
)

// SessionID identifies a conversation (Telegram chat) the bot talks to.
type SessionID int64

type contextKeySessionID struct{}

func (s SessionID) String() string {
	return strconv.FormatInt(int64(s), 10)
}

func WithSessionID(ctx context.Context, sessionID SessionID) context.Context {
	return context.WithValue(ctx, contextKeySessionID{}, sessionID)
}

func SessionIDFromContext(ctx context.Context) (SessionID, error) {
	sessionID, ok := ctx.Value(contextKeySessionID{}).(SessionID)
	if !ok {
		return 0, fmt.Errorf("session id: %w", ErrNoValue)
	}

	return sessionID, nil
}
