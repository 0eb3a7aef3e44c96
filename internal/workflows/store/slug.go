package store

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 50

var (
	// slugRegex matches characters that should be replaced with hyphens
	slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

	// stripMarks decomposes accented letters and drops the combining marks,
	// so "Crème" becomes "Creme".
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify converts a workflow name into a file-name friendly slug.
// Rules:
// - Accents are stripped, then everything is lowercased
// - Runs of anything but a-z and 0-9 become a single hyphen
// - Leading/trailing hyphens are trimmed
// - Max length: 50 chars, cut at a hyphen when possible
//
// Examples:
//
//	"Attach a header to an HTTP request with cURL" -> "attach-a-header-to-an-http-request-with-curl"
//	"Undo the last commit!" -> "undo-the-last-commit"
func Slugify(name string) string {
	result, _, err := transform.String(stripMarks, strings.TrimSpace(name))
	if err != nil {
		result = name
	}

	result = strings.ToLower(result)
	result = slugRegex.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > maxSlugLength {
		cutoff := maxSlugLength
		if idx := strings.LastIndex(result[:cutoff], "-"); idx > 0 {
			cutoff = idx
		}
		result = result[:cutoff]
	}

	return result
}

// UniqueSlug returns the slug of name, with a numeric suffix when it is
// already taken. Names that slugify to nothing become "workflow".
func UniqueSlug(name string, taken func(slug string) bool) string {
	base := Slugify(name)
	if base == "" {
		base = "workflow"
	}

	slug := base
	for i := 1; taken(slug); i++ {
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return slug
}
