package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Azure trace file name patterns, one file per recorded day (01-14).
const (
	azureInvocationsFile = "invocations_per_function_md.anon.d%02d.csv"
	azureDurationsFile   = "function_durations_percentiles.anon.d%02d.csv"
)

// azureFunctionID joins the Azure hash triplet into a single opaque
// function identifier. The triplet is the trace's primary key; HashFunction
// alone is not unique across apps.
func azureFunctionID(owner, app, function string) string {
	return owner + "-" + app + "-" + function
}

// ReadInvocations parses an Azure-format per-minute invocation CSV into
// Records. The header is expected to carry the hash triplet columns plus
// one column per minute, named "1".."1440". Rows containing a negative
// count in any minute column are dropped, matching the trace's published
// sanitization guidance. Zero-count cells produce no Record.
func ReadInvocations(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading invocations header: %w", err)
	}
	cols, minuteCols, err := indexAzureHeader(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	dropped := 0
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading invocations row %d: %w", line, err)
		}
		line++

		fn := azureFunctionID(row[cols.owner], row[cols.app], row[cols.function])
		parsed := make([]Record, 0, 8)
		valid := true
		for _, mc := range minuteCols {
			count, err := strconv.Atoi(row[mc.column])
			if err != nil {
				return nil, fmt.Errorf("invocations row %d, minute %d: %w", line, mc.minute, err)
			}
			if count < 0 {
				valid = false
				break
			}
			if count == 0 {
				continue
			}
			parsed = append(parsed, Record{FunctionID: fn, Minute: mc.minute, Count: count})
		}
		if !valid {
			dropped++
			continue
		}
		if len(parsed) == 0 {
			// Keep first-seen registration for all-zero functions.
			parsed = append(parsed, Record{FunctionID: fn, Minute: 0, Count: 0})
		}
		records = append(records, parsed...)
	}
	if dropped > 0 {
		logrus.Warnf("dropped %d invocation rows with negative minute counts", dropped)
	}
	return records, nil
}

// ReadDurations parses an Azure-format duration percentile CSV into a map
// from function identifier to average execution time in milliseconds.
// A negative average falls back to the median column; rows where both are
// negative are dropped.
func ReadDurations(r io.Reader) (map[string]float64, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading durations header: %w", err)
	}
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}
	for _, required := range []string{"HashOwner", "HashApp", "HashFunction", "Average", "percentile_Average_50"} {
		if _, ok := pos[required]; !ok {
			return nil, fmt.Errorf("durations header missing column %q", required)
		}
	}

	durations := make(map[string]float64)
	dropped := 0
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading durations row %d: %w", line, err)
		}
		line++

		avg, err := strconv.ParseFloat(row[pos["Average"]], 64)
		if err != nil {
			return nil, fmt.Errorf("durations row %d: %w", line, err)
		}
		if avg < 0 {
			avg, err = strconv.ParseFloat(row[pos["percentile_Average_50"]], 64)
			if err != nil {
				return nil, fmt.Errorf("durations row %d: %w", line, err)
			}
		}
		if avg < 0 {
			dropped++
			continue
		}
		fn := azureFunctionID(row[pos["HashOwner"]], row[pos["HashApp"]], row[pos["HashFunction"]])
		durations[fn] = avg
	}
	if dropped > 0 {
		logrus.Warnf("dropped %d duration rows with no valid average", dropped)
	}
	return durations, nil
}

// LoadAzureDay loads one recorded day of an Azure trace directory into an
// Index, attaching duration metadata when the durations file is present.
func LoadAzureDay(dir string, day int) (*Index, error) {
	invPath := filepath.Join(dir, fmt.Sprintf(azureInvocationsFile, day))
	invFile, err := os.Open(invPath)
	if err != nil {
		return nil, fmt.Errorf("opening invocations file: %w", err)
	}
	defer invFile.Close()

	records, err := ReadInvocations(invFile)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", invPath, err)
	}
	idx := NewIndex(records)

	durPath := filepath.Join(dir, fmt.Sprintf(azureDurationsFile, day))
	durFile, err := os.Open(durPath)
	if err != nil {
		logrus.Warnf("no durations file for day %d (%v); catalog entries will omit durations", day, err)
		return idx, nil
	}
	defer durFile.Close()

	durations, err := ReadDurations(durFile)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", durPath, err)
	}
	idx.SetDurations(durations)

	logrus.Infof("loaded trace day %d: %d functions over %d minutes", day, len(idx.Functions()), idx.Span())
	return idx, nil
}

// azureColumns locates the hash triplet inside an invocations header.
type azureColumns struct {
	owner, app, function int
}

// azureMinuteColumn maps a header column index to its zero-based minute
// offset.
type azureMinuteColumn struct {
	column int
	minute int
}

func indexAzureHeader(header []string) (azureColumns, []azureMinuteColumn, error) {
	cols := azureColumns{owner: -1, app: -1, function: -1}
	var minutes []azureMinuteColumn
	for i, name := range header {
		switch name {
		case "HashOwner":
			cols.owner = i
		case "HashApp":
			cols.app = i
		case "HashFunction":
			cols.function = i
		default:
			if m, err := strconv.Atoi(name); err == nil && m >= 1 {
				minutes = append(minutes, azureMinuteColumn{column: i, minute: m - 1})
			}
		}
	}
	if cols.owner < 0 || cols.app < 0 || cols.function < 0 {
		return cols, nil, fmt.Errorf("invocations header missing hash triplet columns")
	}
	if len(minutes) == 0 {
		return cols, nil, fmt.Errorf("invocations header has no minute columns")
	}
	return cols, minutes, nil
}
