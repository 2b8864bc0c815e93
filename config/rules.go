package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// KeywordRule maps one label to the terms that trigger it. Rules are kept
// in slices, not maps: the classifiers are first-match-wins, so declaration
// order is part of the contract.
type KeywordRule struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// EntityPatterns holds the extraction patterns, applied to lower-cased text.
type EntityPatterns struct {
	Amounts       string   `yaml:"amounts"`
	Dates         string   `yaml:"dates"`
	Jurisdictions []string `yaml:"jurisdictions"`
}

// Rules is the full rule set for one analyzer. Loaded once at startup and
// treated as immutable afterwards.
type Rules struct {
	// MinClauseLength is the exclusive lower bound on trimmed clause length,
	// counted in runes.
	MinClauseLength int `yaml:"min_clause_length"`

	// ContractTypes are tried in order against the whole document;
	// FallbackType applies when none match.
	ContractTypes []KeywordRule `yaml:"contract_types"`
	FallbackType  string        `yaml:"fallback_type"`

	// Modalities are tried in order against each clause; FallbackModality
	// applies when none match.
	Modalities       []KeywordRule `yaml:"modalities"`
	FallbackModality string        `yaml:"fallback_modality"`

	// RiskCategories are all tested against each clause; every match counts.
	RiskCategories []KeywordRule `yaml:"risk_categories"`

	Entities EntityPatterns `yaml:"entities"`
}

// DefaultRules returns the built-in rule tables.
func DefaultRules() *Rules {
	return &Rules{
		MinClauseLength: 30,
		ContractTypes: []KeywordRule{
			{Label: "Employment Agreement", Keywords: []string{"employee", "employer", "salary"}},
			{Label: "Lease Agreement", Keywords: []string{"lease", "rent", "premises"}},
			{Label: "Service Contract", Keywords: []string{"service", "deliverables"}},
			{Label: "Vendor Agreement", Keywords: []string{"vendor", "supplier"}},
		},
		FallbackType: "General Commercial Contract",
		Modalities: []KeywordRule{
			{Label: "Prohibition", Keywords: []string{"shall not", "must not", "prohibited"}},
			{Label: "Obligation", Keywords: []string{"shall", "must"}},
			{Label: "Right", Keywords: []string{"may", "can"}},
		},
		FallbackModality: "Neutral",
		RiskCategories: []KeywordRule{
			{Label: "Penalty Clause", Keywords: []string{"penalty", "fine", "दंड", "जुर्माना"}},
			{Label: "Indemnity Clause", Keywords: []string{"indemnify", "indemnity", "क्षतिपूर्ति"}},
			{Label: "Termination Risk", Keywords: []string{"terminate", "termination", "समाप्त"}},
			{Label: "Non-Compete Clause", Keywords: []string{"non compete", "non-compete", "not compete", "प्रतिस्पर्धा"}},
			{Label: "IP Transfer", Keywords: []string{"intellectual property", "ip rights", "बौद्धिक संपदा"}},
			{Label: "Unilateral Rights", Keywords: []string{"without notice", "sole discretion", "बिना सूचना"}},
		},
		Entities: EntityPatterns{
			Amounts:       `₹\s?\d+(?:,\d+)*(?:\.\d+)?|\d+(?:\.\d+)?\s?(?:lakh|lakhs|crore|crores)`,
			Dates:         `\d{1,2}/\d{1,2}/\d{4}`,
			Jurisdictions: []string{"india", "tamil nadu", "delhi", "mumbai"},
		},
	}
}

// LoadRules returns the default rules, overridden section by section from
// the given YAML file when path is non-empty.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, rules); err != nil {
			return nil, fmt.Errorf("failed to parse rules %s: %w", path, err)
		}
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Validate checks that the rule tables are usable: patterns compile and no
// rule group is empty.
func (r *Rules) Validate() error {
	if r.MinClauseLength < 0 {
		return fmt.Errorf("min_clause_length must not be negative, got %d", r.MinClauseLength)
	}
	if r.FallbackType == "" {
		return fmt.Errorf("fallback_type must not be empty")
	}
	if r.FallbackModality == "" {
		return fmt.Errorf("fallback_modality must not be empty")
	}
	for _, group := range [][]KeywordRule{r.ContractTypes, r.Modalities, r.RiskCategories} {
		for _, rule := range group {
			if rule.Label == "" {
				return fmt.Errorf("keyword rule with empty label")
			}
			if len(rule.Keywords) == 0 {
				return fmt.Errorf("keyword rule %q has no keywords", rule.Label)
			}
		}
	}
	if _, err := regexp.Compile(r.Entities.Amounts); err != nil {
		return fmt.Errorf("invalid amounts pattern: %w", err)
	}
	if _, err := regexp.Compile(r.Entities.Dates); err != nil {
		return fmt.Errorf("invalid dates pattern: %w", err)
	}
	return nil
}
