package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_FirstSeenOrder(t *testing.T) {
	idx := NewIndex([]Record{
		{FunctionID: "f1", Minute: 0, Count: 3},
		{FunctionID: "f3", Minute: 1, Count: 2},
		{FunctionID: "f1", Minute: 5, Count: 4},
	})

	assert.Equal(t, []string{"f1", "f3"}, idx.Functions())
}

func TestIndex_CatalogOrderAndNoDuplicates(t *testing.T) {
	// Records for f1, f3, f1: catalog must be [f1, f3] with no duplicates.
	idx := NewIndex([]Record{
		{FunctionID: "f1", Minute: 0, Count: 1},
		{FunctionID: "f3", Minute: 0, Count: 1},
		{FunctionID: "f1", Minute: 1, Count: 1},
	})

	catalog := idx.Catalog()
	require.Len(t, catalog, 2)
	assert.Equal(t, "f1", catalog[0].FunctionID)
	assert.Equal(t, "f3", catalog[1].FunctionID)
	assert.Equal(t, 2, catalog[0].TotalInvocations)
	assert.Equal(t, 1, catalog[1].TotalInvocations)
}

func TestIndex_CatalogCarriesDurations(t *testing.T) {
	idx := NewIndex([]Record{{FunctionID: "f1", Minute: 0, Count: 1}})
	idx.SetDurations(map[string]float64{"f1": 125.5})

	catalog := idx.Catalog()
	require.Len(t, catalog, 1)
	assert.Equal(t, 125.5, catalog[0].AvgDurationMs)
}

func TestIndex_CountsAndTotals(t *testing.T) {
	idx := NewIndex([]Record{
		{FunctionID: "f1", Minute: 2, Count: 5},
		{FunctionID: "f2", Minute: 2, Count: 7},
		{FunctionID: "f1", Minute: 2, Count: 1}, // duplicate (fn, minute) sums
		{FunctionID: "f1", Minute: 9, Count: 2},
	})

	assert.Equal(t, 10, idx.Span())
	assert.Equal(t, 6, idx.Count("f1", 2))
	assert.Equal(t, 13, idx.MinuteTotal(2))
	assert.Equal(t, 0, idx.MinuteTotal(3), "absent minutes count as zero")
	assert.Equal(t, 0, idx.Count("f2", 9))
	assert.Equal(t, 8, idx.TotalInvocations("f1"))
}

func TestIndex_MinuteCountsOrderedAndNonZero(t *testing.T) {
	idx := NewIndex([]Record{
		{FunctionID: "late", Minute: 0, Count: 1},
		{FunctionID: "early", Minute: 3, Count: 4},
		{FunctionID: "late", Minute: 3, Count: 2},
	})

	got := idx.MinuteCounts(3)
	require.Len(t, got, 2)
	// "late" was seen first in the trace, so it leads despite the name.
	assert.Equal(t, MinuteCount{FunctionID: "late", Count: 2}, got[0])
	assert.Equal(t, MinuteCount{FunctionID: "early", Count: 4}, got[1])
}

func TestIndex_RangeCounts(t *testing.T) {
	idx := NewIndex([]Record{
		{FunctionID: "f1", Minute: 0, Count: 2},
		{FunctionID: "f1", Minute: 1, Count: 3},
		{FunctionID: "f2", Minute: 1, Count: 1},
		{FunctionID: "f2", Minute: 4, Count: 9},
	})

	got := idx.RangeCounts(0, 2)
	require.Len(t, got, 2)
	assert.Equal(t, MinuteCount{FunctionID: "f1", Count: 5}, got[0])
	assert.Equal(t, MinuteCount{FunctionID: "f2", Count: 1}, got[1])

	assert.Empty(t, idx.RangeCounts(2, 2), "range with no activity is empty")
}

func TestIndex_ZeroCountRecordRegistersFunction(t *testing.T) {
	idx := NewIndex([]Record{{FunctionID: "idle", Minute: 0, Count: 0}})

	assert.Equal(t, []string{"idle"}, idx.Functions())
	assert.Equal(t, 0, idx.TotalInvocations("idle"))
	assert.Equal(t, 1, idx.Span())
}
