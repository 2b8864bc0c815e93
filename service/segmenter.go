package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/saranya-m1904/contract-risk-bot/model"
)

// clauseBoundary splits on newlines or a period followed by whitespace.
// The period alternative consumes the trailing whitespace, so "notice.\nThe"
// yields the same fragments either way.
var clauseBoundary = regexp.MustCompile(`\n|\.\s+`)

// Segmenter splits raw contract text into clauses. Fragments at or below
// minLength runes after trimming are discarded.
type Segmenter struct {
	minLength int
}

func NewSegmenter(minLength int) *Segmenter {
	return &Segmenter{minLength: minLength}
}

// Segment returns the qualifying clauses in first-occurrence order, with
// 1-based ordinals. An input with no qualifying fragment returns an empty
// slice; callers must handle that (the composite score is undefined then).
func (s *Segmenter) Segment(text string) []model.Clause {
	var clauses []model.Clause
	for _, fragment := range clauseBoundary.Split(text, -1) {
		fragment = strings.TrimSpace(fragment)
		if utf8.RuneCountInString(fragment) <= s.minLength {
			continue
		}
		clauses = append(clauses, model.Clause{
			Ordinal: len(clauses) + 1,
			Text:    fragment,
		})
	}
	return clauses
}
