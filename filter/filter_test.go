package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpeterson/gifrelay/giphy"
)

func testItems() []giphy.SearchItem {
	return []giphy.SearchItem{
		{
			ID:     "small-g",
			Title:  "Tiny Cat",
			Rating: "g",
			Tags:   []string{"cat", "cute"},
			Original: giphy.ImageAsset{
				URL: "u1", Width: 100, Height: 80, SizeBytes: 5000,
			},
		},
		{
			ID:     "big-pg13",
			Title:  "Wild Party",
			Rating: "pg-13",
			Tags:   []string{"party"},
			Original: giphy.ImageAsset{
				URL: "u2", Width: 480, Height: 270, SizeBytes: 900000,
			},
		},
		{
			ID:     "mid-r",
			Title:  "Late Night",
			Rating: "r",
			Original: giphy.ImageAsset{
				URL: "u3", Width: 320, Height: 240, SizeBytes: 200000,
			},
		},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "valid comparison", expression: `Width > 200`},
		{name: "valid helper call", expression: `hasTag("cat")`},
		{name: "empty expression", expression: "   ", wantErr: true},
		{name: "syntax error", expression: `Width >`, wantErr: true},
		{name: "non-boolean result", expression: `Width + 1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestApply(t *testing.T) {
	items := testItems()

	tests := []struct {
		name       string
		expression string
		wantIDs    []string
	}{
		{
			name:       "dimension filter",
			expression: `minDimensions(300, 200)`,
			wantIDs:    []string{"big-pg13", "mid-r"},
		},
		{
			name:       "rating ladder",
			expression: `ratedAtMost("pg-13")`,
			wantIDs:    []string{"small-g", "big-pg13"},
		},
		{
			name:       "tag lookup is case-insensitive",
			expression: `hasTag("CAT")`,
			wantIDs:    []string{"small-g"},
		},
		{
			name:       "title substring",
			expression: `contains(Title, "party")`,
			wantIDs:    []string{"big-pg13"},
		},
		{
			name:       "combined clauses",
			expression: `Rating == "g" && SizeBytes < 10000`,
			wantIDs:    []string{"small-g"},
		},
		{
			name:       "no matches",
			expression: `Width > 10000`,
			wantIDs:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched := f.Apply(items)
			ids := make([]string, 0, len(matched))
			for _, item := range matched {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRatedAtMostUnknownRating(t *testing.T) {
	f, err := Compile(`ratedAtMost("nc-17")`)
	require.NoError(t, err)
	assert.Empty(t, f.Apply(testItems()))
}
