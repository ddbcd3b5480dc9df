// Package filter provides expr-language filtering of GIF search results.
//
// Expressions evaluate against one search item at a time and must yield a
// boolean. Item fields are exposed as plain variables (ID, Title, Rating,
// Tags, Width, Height, SizeBytes) alongside a small set of helper functions.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mpeterson/gifrelay/giphy"
)

// ratingOrder is the content-rating ladder used by ratedAtMost
var ratingOrder = map[string]int{
	"g":     0,
	"pg":    1,
	"pg-13": 2,
	"r":     3,
}

// Filter is a compiled boolean expression over search items. It is safe for
// concurrent use.
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile compiles a filter expression
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(environment(giphy.SearchItem{})),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter %q: %w", expression, err)
	}

	return &Filter{program: program, expression: expression}, nil
}

// Expression returns the original expression text
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single item. Evaluation errors count
// as a non-match.
func (f *Filter) Match(item giphy.SearchItem) bool {
	result, err := expr.Run(f.program, environment(item))
	if err != nil {
		return false
	}
	// AsBool() during compilation guarantees a boolean result
	return result.(bool)
}

// Apply returns the items matching the filter, preserving order
func (f *Filter) Apply(items []giphy.SearchItem) []giphy.SearchItem {
	matched := make([]giphy.SearchItem, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// environment builds the evaluation environment for one item: its fields as
// plain variables plus the helper functions
func environment(item giphy.SearchItem) map[string]any {
	env := map[string]any{
		"ID":        item.ID,
		"Title":     item.Title,
		"Rating":    item.Rating,
		"Tags":      item.Tags,
		"Width":     item.Original.Width,
		"Height":    item.Original.Height,
		"SizeBytes": item.Original.SizeBytes,

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}

	env["hasTag"] = func(tag string) bool {
		for _, t := range item.Tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	}
	env["ratedAtMost"] = func(rating string) bool {
		limit, ok := ratingOrder[strings.ToLower(rating)]
		if !ok {
			return false
		}
		own, ok := ratingOrder[strings.ToLower(item.Rating)]
		return ok && own <= limit
	}
	env["minDimensions"] = func(width, height int) bool {
		return item.Original.Width >= width && item.Original.Height >= height
	}

	return env
}
