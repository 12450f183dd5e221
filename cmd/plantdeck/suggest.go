package main

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/muurk/plantdeck/internal/catalog"
	"github.com/muurk/plantdeck/internal/ui"
)

// resolveCategory returns the catalog spelling of name, ignoring case
func resolveCategory(name string, categories []catalog.Category) (string, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c.Name, true
		}
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c.Name, true
		}
	}
	return "", false
}

// suggestCategory returns the closest category name, or "" when nothing
// is within a third of the name's length in edits (at least two)
func suggestCategory(name string, categories []catalog.Category) string {
	target := strings.ToLower(name)
	best, bestDist := "", -1

	for _, c := range categories {
		d := levenshtein.ComputeDistance(target, strings.ToLower(c.Name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c.Name, d
		}
	}

	if bestDist < 0 || bestDist > max(2, len([]rune(name))/3) {
		return ""
	}
	return best
}

func unknownCategoryError(name string, categories []catalog.Category) error {
	if s := suggestCategory(name, categories); s != "" {
		return fmt.Errorf("unknown category %q; did you mean %q?", name, s)
	}
	return fmt.Errorf("unknown category %q; run 'plantdeck categories' to list them", name)
}

// categoryHints lists the closest match, if any, then points to the list
func categoryHints(name string, categories []catalog.Category) []string {
	var hints []string
	if s := ui.RenderSuggestion(suggestCategory(name, categories)); s != "" {
		hints = append(hints, s)
	}
	return append(hints, "Run 'plantdeck categories' to list them")
}
