package helpers

import "strings"

// SplitTags turns the admin form's free-text comma-separated tag field into a
// clean list: split on commas, trim whitespace, drop empties.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// CategorySlug lowercases a category name and replaces whitespace runs with
// hyphens, matching the tag the PDF library attaches to uploads.
func CategorySlug(category string) string {
	return strings.Join(strings.Fields(strings.ToLower(category)), "-")
}

// Contains reports whether value is present in list.
func Contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
