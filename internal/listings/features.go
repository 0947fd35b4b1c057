// Package listings holds the shared text helpers of the property-listing
// pages. Listing CRUD itself lives behind its own collaborator; only the
// presentation-neutral pieces are kept here.
package listings

import "strings"

// featureSeparators are the characters a free-text description is split on.
const featureSeparators = ",;\n"

// SplitFeatures turns a listing's free-text description into trimmed bullet
// features, splitting on commas, semicolons, and newlines. Empty fragments
// are dropped, so "clean,quiet; near station\ngym" yields
// ["clean", "quiet", "near station", "gym"].
func SplitFeatures(description string) []string {
	if strings.TrimSpace(description) == "" {
		return nil
	}

	fields := strings.FieldsFunc(description, func(r rune) bool {
		return strings.ContainsRune(featureSeparators, r)
	})

	features := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			features = append(features, f)
		}
	}
	if len(features) == 0 {
		return nil
	}
	return features
}
