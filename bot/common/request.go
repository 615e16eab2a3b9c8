package common

import "context"

// Request is a parsed chat command from a single user
type Request struct {
	ID          string   // Correlates log lines for one command
	Command     string   // Command name without the prefix
	Args        []string // Space separated arguments after the command name
	UserID      int64
	DisplayName string
	ChannelID   string
}

// CommandHandler handles one command and returns the reply text.
// A *BotError carries its own reply; any other error gets the generic one.
type CommandHandler func(ctx context.Context, req *Request) (string, error)

// NameResolver turns a user id into something printable. It never fails;
// lookups that cannot be completed return a placeholder.
type NameResolver interface {
	ResolveName(ctx context.Context, userID int64) string
}
