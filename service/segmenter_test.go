package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentSplitsOnNewlinesAndSentences(t *testing.T) {
	seg := NewSegmenter(30)

	text := "The employee shall indemnify the company against all claims.\n" +
		"The company may terminate the agreement at its sole discretion. " +
		"The supplier must deliver the goods before the end of the quarter."

	clauses := seg.Segment(text)
	require.Len(t, clauses, 3)

	assert.Equal(t, "The employee shall indemnify the company against all claims", clauses[0].Text)
	assert.Equal(t, "The company may terminate the agreement at its sole discretion", clauses[1].Text)
	assert.Equal(t, "The supplier must deliver the goods before the end of the quarter.", clauses[2].Text)

	for i, c := range clauses {
		assert.Equal(t, i+1, c.Ordinal)
	}
}

func TestSegmentDropsShortFragments(t *testing.T) {
	seg := NewSegmenter(30)

	clauses := seg.Segment("Short line.\nAlso short.\nThis line however is comfortably longer than thirty characters.")
	require.Len(t, clauses, 1)
	assert.Equal(t, "This line however is comfortably longer than thirty characters.", clauses[0].Text)
}

func TestSegmentEmptyResult(t *testing.T) {
	seg := NewSegmenter(30)

	assert.Empty(t, seg.Segment(""))
	assert.Empty(t, seg.Segment("too short\nstill too short"))
	assert.Empty(t, seg.Segment("   \n\n  "))
}

// Re-segmenting a single already-qualifying clause with no internal
// boundary yields that same clause unchanged.
func TestSegmentIdempotentOnSingleClause(t *testing.T) {
	seg := NewSegmenter(30)

	clause := "The vendor shall supply the agreed deliverables on schedule"
	clauses := seg.Segment(clause)
	require.Len(t, clauses, 1)
	assert.Equal(t, clause, clauses[0].Text)

	again := seg.Segment(clauses[0].Text)
	require.Len(t, again, 1)
	assert.Equal(t, clauses[0], again[0])
}

func TestSegmentCountsRunesNotBytes(t *testing.T) {
	seg := NewSegmenter(30)

	// 11 Devanagari runes but far more than 30 bytes
	assert.Empty(t, seg.Segment("क्षतिपूर्ति"))
}
