package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/saranya-m1904/contract-risk-bot/config"
	"github.com/saranya-m1904/contract-risk-bot/model"
)

// EntityExtractor scans a whole document for amounts, dates and
// jurisdiction names. All scans are case-insensitive by lower-casing the
// input; matches are non-overlapping, in document order, duplicates kept.
type EntityExtractor struct {
	amounts      *regexp.Regexp
	dates        *regexp.Regexp
	jurisdiction *regexp.Regexp
}

func NewEntityExtractor(patterns config.EntityPatterns) (*EntityExtractor, error) {
	amounts, err := regexp.Compile(patterns.Amounts)
	if err != nil {
		return nil, fmt.Errorf("invalid amounts pattern: %w", err)
	}
	dates, err := regexp.Compile(patterns.Dates)
	if err != nil {
		return nil, fmt.Errorf("invalid dates pattern: %w", err)
	}

	// Jurisdictions are literal tokens, joined into one alternation.
	// An empty token list would compile to a regexp matching the empty
	// string at every position, so it is kept nil instead.
	var jurisdiction *regexp.Regexp
	if len(patterns.Jurisdictions) > 0 {
		quoted := make([]string, len(patterns.Jurisdictions))
		for i, j := range patterns.Jurisdictions {
			quoted[i] = regexp.QuoteMeta(strings.ToLower(j))
		}
		jurisdiction, err = regexp.Compile(strings.Join(quoted, "|"))
		if err != nil {
			return nil, fmt.Errorf("invalid jurisdiction pattern: %w", err)
		}
	}

	return &EntityExtractor{
		amounts:      amounts,
		dates:        dates,
		jurisdiction: jurisdiction,
	}, nil
}

// Extract runs the three scans independently over the document.
func (e *EntityExtractor) Extract(text string) model.EntityBag {
	lower := strings.ToLower(text)
	bag := model.EntityBag{
		Amounts: e.amounts.FindAllString(lower, -1),
		Dates:   e.dates.FindAllString(lower, -1),
	}
	if e.jurisdiction != nil {
		bag.Jurisdiction = e.jurisdiction.FindAllString(lower, -1)
	}
	return bag
}
