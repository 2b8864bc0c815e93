package service

import (
	"fmt"
	"math"
	"time"

	"github.com/saranya-m1904/contract-risk-bot/config"
	"github.com/saranya-m1904/contract-risk-bot/model"
)

// Analyzer runs the full pipeline: segmentation, contract classification
// and entity extraction over the whole document, then modality tagging,
// risk detection, scoring and explanation per clause. Every stage is a pure
// function of its input; the analyzer itself is safe for concurrent use
// once constructed.
type Analyzer struct {
	segmenter  *Segmenter
	classifier *Classifier
	extractor  *EntityExtractor
	tagger     *Tagger
	detector   *RiskDetector
}

func NewAnalyzer(rules *config.Rules) (*Analyzer, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	extractor, err := NewEntityExtractor(rules.Entities)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		segmenter:  NewSegmenter(rules.MinClauseLength),
		classifier: NewClassifier(rules.ContractTypes, rules.FallbackType),
		extractor:  extractor,
		tagger:     NewTagger(rules.Modalities, rules.FallbackModality),
		detector:   NewRiskDetector(rules.RiskCategories),
	}, nil
}

// Analyze processes one document synchronously to completion. ID and tenant
// are left for the caller to fill in.
func (a *Analyzer) Analyze(text string) *model.Analysis {
	clauses := a.segmenter.Segment(text)

	results := make([]model.ClauseResult, 0, len(clauses))
	total := 0
	for _, clause := range clauses {
		risks := a.detector.Detect(clause.Text)
		total += len(risks)

		results = append(results, model.ClauseResult{
			Clause:      clause,
			Type:        a.tagger.Tag(clause.Text),
			Risks:       risks,
			RiskCount:   len(risks),
			Level:       RiskLevel(len(risks)),
			Explanation: Explain(risks),
			Mitigation:  Mitigation(risks),
		})
	}

	analysis := &model.Analysis{
		ContractType: a.classifier.Classify(text),
		Entities:     a.extractor.Extract(text),
		Clauses:      results,
		CreatedAt:    time.Now(),
	}

	// The mean over zero clauses is undefined; report it as not applicable
	// instead of propagating a division fault.
	if len(results) > 0 {
		mean := float64(total) / float64(len(results))
		analysis.CompositeScore = math.Round(mean*100) / 100
		analysis.ScoreApplicable = true
	}

	return analysis
}
