package common

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// ParseUserID converts a Discord user ID string to int64
func ParseUserID(userID string) (int64, error) {
	return strconv.ParseInt(userID, 10, 64)
}

// FormatUserID converts an int64 user ID to string
func FormatUserID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// UnknownUserName is shown in place of a user whose name could not be looked up
func UnknownUserName(userID int64) string {
	return fmt.Sprintf("Unknown user (%d)", userID)
}

// UserDisplayName returns the best available name for a user
func UserDisplayName(user *discordgo.User) string {
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// AuthorDisplayName returns the server nickname of the message author,
// falling back to the global display name and then the username
func AuthorDisplayName(m *discordgo.Message) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	return UserDisplayName(m.Author)
}
