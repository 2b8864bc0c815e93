package service

import (
	"strings"

	"github.com/saranya-m1904/contract-risk-bot/config"
)

// Classifier assigns one coarse contract-type label to a whole document.
type Classifier struct {
	rules    []config.KeywordRule
	fallback string
}

func NewClassifier(rules []config.KeywordRule, fallback string) *Classifier {
	return &Classifier{rules: rules, fallback: fallback}
}

// Classify lower-cases the document and returns the label of the first rule
// group with any keyword present, or the fallback label. Total: always
// returns exactly one label.
func (c *Classifier) Classify(text string) string {
	text = strings.ToLower(text)
	for _, rule := range c.rules {
		if containsAny(text, rule.Keywords) {
			return rule.Label
		}
	}
	return c.fallback
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
