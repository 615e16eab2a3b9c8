package common

import (
	"errors"
	"fmt"
)

// GenericFailureMessage is shown when a command fails for reasons the user cannot fix
const GenericFailureMessage = "Something went wrong. Please try again later."

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string // Message shown to Discord user
	LogMessage  string // Internal message for logging
	Err         error  // Underlying error
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// IsUserError reports whether the error was caused by the user rather than the system
func (e *BotError) IsUserError() bool {
	return e.Err == nil
}

// NewUserError creates an error for user-caused issues (validation, insufficient funds, etc)
func NewUserError(userMessage string, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
	}
}

// NewSystemError creates an error for system issues (database, unexpected state, etc)
func NewSystemError(err error, logMessage string) *BotError {
	return &BotError{
		UserMessage: GenericFailureMessage,
		LogMessage:  logMessage,
		Err:         err,
	}
}

// ReplyFor returns the message to show the user for an error returned by a handler
func ReplyFor(err error) string {
	var botErr *BotError
	if errors.As(err, &botErr) && botErr.UserMessage != "" {
		return botErr.UserMessage
	}
	return GenericFailureMessage
}
