package gifservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "drops stop words",
			message:  "I am feeling really happy today",
			expected: "feeling really happy",
		},
		{
			name:     "caps at three keywords",
			message:  "dancing penguins celebrate winter holidays together",
			expected: "dancing penguins celebrate",
		},
		{
			name:     "lowercases input",
			message:  "HAPPY Birthday Friend",
			expected: "happy birthday friend",
		},
		{
			name:     "drops short words",
			message:  "go to the gym",
			expected: "gym",
		},
		{
			name:     "falls back to original when nothing survives",
			message:  "it is me",
			expected: "it is me",
		},
		{
			name:     "trims fallback whitespace",
			message:  "  ok  ",
			expected: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractKeywords(tt.message))
		})
	}
}
