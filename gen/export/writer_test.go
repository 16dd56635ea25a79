package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceforge/traceforge/gen"
	"github.com/traceforge/traceforge/gen/trace"
)

func sampleSchedule() gen.Schedule {
	return gen.Schedule{
		{Timestamp: 0, FunctionID: "f1"},
		{Timestamp: 1.5, FunctionID: "f2"},
		{Timestamp: 59.999999, FunctionID: "f1"},
	}
}

func TestWriteScheduleCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScheduleCSV(&buf, sampleSchedule()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "timestamp_s,function", lines[0])
	assert.Equal(t, "0.000000,f1", lines[1])
	assert.Equal(t, "1.500000,f2", lines[2])
	assert.Equal(t, "59.999999,f1", lines[3])
}

func TestWriteScheduleCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScheduleCSV(&buf, nil))

	assert.Equal(t, "timestamp_s,function\n", buf.String())
}

func TestWriteScheduleJSON_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScheduleJSON(&buf, sampleSchedule()))

	var decoded []struct {
		TimestampS float64 `json:"timestamp_s"`
		Function   string  `json:"function"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, 1.5, decoded[1].TimestampS)
	assert.Equal(t, "f2", decoded[1].Function)
}

func TestWriteCatalogJSON_PreservesOrder(t *testing.T) {
	entries := []trace.CatalogEntry{
		{FunctionID: "f1", TotalInvocations: 12, AvgDurationMs: 250},
		{FunctionID: "f3", TotalInvocations: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCatalogJSON(&buf, entries))

	var decoded []trace.CatalogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, entries, decoded)
}

func TestWriteCatalogJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCatalogJSON(&buf, nil))

	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}
