package common

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndFormatUserID(t *testing.T) {
	id, err := ParseUserID("123456789012345678")
	require.NoError(t, err)
	assert.Equal(t, int64(123456789012345678), id)
	assert.Equal(t, "123456789012345678", FormatUserID(id))

	_, err = ParseUserID("not-a-snowflake")
	assert.Error(t, err)
}

func TestAuthorDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		message  *discordgo.Message
		expected string
	}{
		{
			name: "nickname wins",
			message: &discordgo.Message{
				Author: &discordgo.User{Username: "squiddy", GlobalName: "Squid"},
				Member: &discordgo.Member{Nick: "Captain"},
			},
			expected: "Captain",
		},
		{
			name: "global name without nickname",
			message: &discordgo.Message{
				Author: &discordgo.User{Username: "squiddy", GlobalName: "Squid"},
				Member: &discordgo.Member{},
			},
			expected: "Squid",
		},
		{
			name: "username in direct messages",
			message: &discordgo.Message{
				Author: &discordgo.User{Username: "squiddy"},
			},
			expected: "squiddy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AuthorDisplayName(tt.message))
		})
	}
}

func TestUnknownUserName(t *testing.T) {
	assert.Equal(t, "Unknown user (42)", UnknownUserName(42))
}
