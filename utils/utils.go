package utils

import (
	rndm "math/rand"
	"regexp"
	"strings"
)

// --- Random ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

// GenerateID creates a random lowercase alphanumeric string of length n.
func GenerateID(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// --- Slugs ---

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses everything that is not a letter or
// digit into single hyphens.
func Slugify(s string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// IsSlug reports whether s is already URL-safe.
func IsSlug(s string) bool {
	return s != "" && s == Slugify(s)
}

// --- Email ---

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
