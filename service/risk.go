package service

import (
	"strings"

	"github.com/saranya-m1904/contract-risk-bot/config"
	"github.com/saranya-m1904/contract-risk-bot/model"
)

// RiskDetector tests a clause against the fixed bilingual risk categories.
type RiskDetector struct {
	categories []config.KeywordRule
}

func NewRiskDetector(categories []config.KeywordRule) *RiskDetector {
	return &RiskDetector{categories: categories}
}

// Detect returns the names of all matched categories in declaration order.
// The length of the result is the clause's risk count.
func (d *RiskDetector) Detect(clause string) []string {
	clause = strings.ToLower(clause)
	var risks []string
	for _, category := range d.categories {
		if containsAny(clause, category.Keywords) {
			risks = append(risks, category.Label)
		}
	}
	return risks
}

// RiskLevel maps a risk count to its ordinal level. The thresholds are a
// fixed step function: 0 is Low, 1 or 2 Medium, 3 or more High.
func RiskLevel(count int) string {
	switch {
	case count == 0:
		return model.RiskLow
	case count <= 2:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}

// Explain renders the fixed explanation template for a detected risk set.
func Explain(risks []string) string {
	if len(risks) == 0 {
		return "This clause appears balanced and does not pose significant legal risk."
	}
	return "This clause may expose the business to legal risk due to: " + strings.Join(risks, ", ")
}

// Mitigation renders the mitigation advice. It is keyed only on whether any
// risk was detected, not on which.
func Mitigation(risks []string) string {
	if len(risks) == 0 {
		return "No immediate mitigation required."
	}
	return "Consider renegotiating this clause to ensure mutual obligations, " +
		"clear limits on liability, and fair termination conditions."
}
