package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sentinel errors surfaced by Load. Both are fatal to a build.
var (
	// ErrNotFound reports a missing data file.
	ErrNotFound = errors.New("data file not found")

	// ErrNoValidRows reports that cleaning discarded every row.
	ErrNoValidRows = errors.New("no valid rows after cleaning")
)

// Load reads, cleans, and derives the dataset at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV rows from r and returns the cleaned, derived Table.
//
// Cleaning drops, rather than rejects, rows the charts cannot use: rows with
// missing fields, rows whose numeric columns do not parse, and rows without
// positive protein content (the 10g normalization divides by it). String
// fields are whitespace-trimmed and NFC-normalized so the same food spelled
// with different Unicode forms collates as one. An input whose every row is
// dropped yields ErrNoValidRows.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoValidRows
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	t := &Table{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		food, ok := cleanRow(record, idx)
		if !ok {
			continue
		}
		t.Foods = append(t.Foods, food)
	}

	if len(t.Foods) == 0 {
		return nil, ErrNoValidRows
	}

	t.derive()
	return t, nil
}

// columns maps each required header name to its position in the file.
type columns struct {
	food, calories, protein, cost, category int
}

func columnIndex(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	idx := columns{}
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{ColFood, &idx.food},
		{ColCalories, &idx.calories},
		{ColProtein, &idx.protein},
		{ColCost, &idx.cost},
		{ColCategory, &idx.category},
	} {
		i, ok := pos[col.name]
		if !ok {
			return idx, fmt.Errorf("missing column %q", col.name)
		}
		*col.dst = i
	}
	return idx, nil
}

func cleanRow(record []string, idx columns) (Food, bool) {
	need := idx.food
	for _, i := range []int{idx.calories, idx.protein, idx.cost, idx.category} {
		if i > need {
			need = i
		}
	}
	if len(record) <= need {
		return Food{}, false
	}

	food := Food{
		Name:     cleanString(record[idx.food]),
		Category: cleanString(record[idx.category]),
	}

	var ok bool
	if food.CaloriesPerGram, ok = parseNumber(record[idx.calories]); !ok {
		return Food{}, false
	}
	if food.ProteinPerGram, ok = parseNumber(record[idx.protein]); !ok {
		return Food{}, false
	}
	if food.CostPerGram, ok = parseNumber(record[idx.cost]); !ok {
		return Food{}, false
	}
	if food.ProteinPerGram <= 0 {
		return Food{}, false
	}
	return food, true
}

func cleanString(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
