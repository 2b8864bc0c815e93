package service

import (
	"strings"

	"github.com/saranya-m1904/contract-risk-bot/config"
)

// Tagger assigns a grammatical-modality label to a single clause.
type Tagger struct {
	rules    []config.KeywordRule
	fallback string
}

func NewTagger(rules []config.KeywordRule, fallback string) *Tagger {
	return &Tagger{rules: rules, fallback: fallback}
}

// Tag returns the label of the first matching modality group, or the
// fallback. Group order is binding: a clause containing both "shall not"
// and "may" is a Prohibition because that group is tested first.
func (t *Tagger) Tag(clause string) string {
	clause = strings.ToLower(clause)
	for _, rule := range t.rules {
		if containsAny(clause, rule.Keywords) {
			return rule.Label
		}
	}
	return t.fallback
}
