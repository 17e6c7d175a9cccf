package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestNextOffset(t *testing.T) {
	tests := []struct {
		name     string
		updates  []tgbotapi.Update
		expected int
	}{
		{
			name:     "Empty backlog keeps offset 0",
			updates:  nil,
			expected: 0,
		},
		{
			name:     "Single pending update",
			updates:  []tgbotapi.Update{{UpdateID: 41}},
			expected: 42,
		},
		{
			name: "Polling resumes past the whole backlog",
			updates: []tgbotapi.Update{
				{UpdateID: 10},
				{UpdateID: 11},
				{UpdateID: 12},
			},
			expected: 13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextOffset(tt.updates); got != tt.expected {
				t.Errorf("Expected offset %d, got %d", tt.expected, got)
			}
		})
	}
}
