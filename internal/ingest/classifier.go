package ingest

import "strings"

// Classifier flags cleaned descriptions as functional and/or technical via
// case-insensitive substring matching. Both flags may be true for one ticket;
// precedence between them is the resolver's concern.
type Classifier struct {
	functional []string
	technical  []string
}

// NewClassifier builds a classifier from the given keyword sets.
func NewClassifier(sets KeywordSets) *Classifier {
	return &Classifier{
		functional: lowerAll(sets.Functional),
		technical:  lowerAll(sets.Technical),
	}
}

// IsFunctional reports whether the description mentions a UI-facing concern.
func (c *Classifier) IsFunctional(description string) bool {
	return containsAny(description, c.functional)
}

// IsTechnical reports whether the description mentions an infrastructure concern.
func (c *Classifier) IsTechnical(description string) bool {
	return containsAny(description, c.technical)
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	lowered := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func lowerAll(keywords []string) []string {
	lowered := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		lowered = append(lowered, strings.ToLower(keyword))
	}
	return lowered
}
