// Package classify decides whether a comment needs a moderator's attention.
package classify

import (
	"regexp"
	"strings"
)

// Matches http(s) URLs, @-handles, and phone-like runs of digits/hyphens.
var suspiciousPattern = regexp.MustCompile(`(?:https?://)|(?:@)|(?:[0-9-]{6,})`)

type Config struct {
	// LinksOnly restricts classification to the suspicious-pattern predicate,
	// skipping the word list. Off by default.
	LinksOnly bool
}

type Service struct {
	words     []string
	linksOnly bool
}

func NewService(cfg Config) *Service {
	return &Service{
		words:     badwords,
		linksOnly: cfg.LinksOnly,
	}
}

// Flagged reports whether the text matches either predicate.
func (s *Service) Flagged(text string) bool {
	if !s.linksOnly && s.MatchesProfanity(text) {
		return true
	}
	return s.MatchesSuspicious(text)
}

// MatchesProfanity reports whether any word list entry occurs as a substring.
func (s *Service) MatchesProfanity(text string) bool {
	for _, word := range s.words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// MatchesSuspicious reports whether the text contains a URL, an @-handle, or
// a phone-like digit run.
func (s *Service) MatchesSuspicious(text string) bool {
	return suspiciousPattern.MatchString(text)
}
