package model

import (
	"time"
)

// Contract type labels produced by the default rules.
const (
	TypeEmployment = "Employment Agreement"
	TypeLease      = "Lease Agreement"
	TypeService    = "Service Contract"
	TypeVendor     = "Vendor Agreement"
	TypeGeneral    = "General Commercial Contract"
)

// Modality labels for a clause.
const (
	ClauseProhibition = "Prohibition"
	ClauseObligation  = "Obligation"
	ClauseRight       = "Right"
	ClauseNeutral     = "Neutral"
)

// Ordinal risk levels derived from the per-clause risk count.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Clause is one segmented unit of contract text. Ordinal is 1-based and
// follows first-occurrence order in the document.
type Clause struct {
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
}

// EntityBag holds the extracted key information for one document.
// Sequences keep document order and duplicates; empty means not detected.
type EntityBag struct {
	Amounts      []string `json:"amounts"`
	Dates        []string `json:"dates"`
	Jurisdiction []string `json:"jurisdiction"`
}

// ClauseResult is the per-clause assessment.
type ClauseResult struct {
	Clause      Clause   `json:"clause"`
	Type        string   `json:"type"`
	Risks       []string `json:"risks"`
	RiskCount   int      `json:"risk_count"`
	Level       string   `json:"level"`
	Explanation string   `json:"explanation"`
	Mitigation  string   `json:"mitigation"`
}

// Analysis is the full result of one pipeline run.
type Analysis struct {
	ID           string         `json:"id"`
	Tenant       string         `json:"tenant,omitempty"`
	ContractType string         `json:"contract_type"`
	Entities     EntityBag      `json:"entities"`
	Clauses      []ClauseResult `json:"clauses"`

	// CompositeScore is the mean of per-clause risk counts rounded to two
	// decimals. It is meaningless when no clauses were extracted;
	// ScoreApplicable reports that case instead of dividing by zero.
	CompositeScore  float64 `json:"composite_score"`
	ScoreApplicable bool    `json:"score_applicable"`

	CreatedAt time.Time `json:"created_at"`
}
