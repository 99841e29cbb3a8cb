package adapters

import (
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"strings"

	"proculator/internal/features/serviceability/domain"
)

var allDigits = regexp.MustCompile(`^[0-9]+$`)

// CSVParser implements ports.TableParser for comma-delimited tables with a
// header row. Columns are located by case-insensitive substring rules on the
// header names, so carrier exports with varying headings still parse.
type CSVParser struct{}

// NewCSVParser creates a new CSVParser.
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// columnIndexes holds the located column positions; -1 means absent.
type columnIndexes struct {
	pincode  int
	pickup   int
	delivery int
	zone     int
	city     int
	state    int
}

// Parse reads the table. Rows whose pincode is not all digits are skipped
// and counted; a table without a pincode column fails entirely with
// domain.ErrMissingPincodeColumn.
func (p *CSVParser) Parse(r io.Reader) (*domain.ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, domain.ErrMissingPincodeColumn
		}
		return nil, err
	}

	cols := locateColumns(header)
	if cols.pincode == -1 {
		return nil, domain.ErrMissingPincodeColumn
	}

	result := &domain.ParseResult{
		Records: make(map[string]domain.Record),
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				result.Skipped++
				continue
			}
			return nil, err
		}

		pincode := field(row, cols.pincode)
		if !allDigits.MatchString(pincode) {
			result.Skipped++
			continue
		}

		result.Records[pincode] = domain.Record{
			Pincode:           pincode,
			PickupAvailable:   availability(row, cols.pickup),
			DeliveryAvailable: availability(row, cols.delivery),
			Zone:              field(row, cols.zone),
			City:              field(row, cols.city),
			State:             field(row, cols.state),
		}
		result.Accepted++
	}

	return result, nil
}

// locateColumns matches header names by case-insensitive substrings.
func locateColumns(header []string) columnIndexes {
	cols := columnIndexes{pincode: -1, pickup: -1, delivery: -1, zone: -1, city: -1, state: -1}
	for i, h := range header {
		name := strings.ToUpper(strings.TrimSpace(h))
		switch {
		case cols.pincode == -1 && strings.Contains(name, "PIN") && strings.Contains(name, "CODE"):
			cols.pincode = i
		case cols.pickup == -1 && strings.Contains(name, "PICK") && strings.Contains(name, "AVAILABLE"):
			cols.pickup = i
		case cols.delivery == -1 && strings.Contains(name, "DELIVERY") && strings.Contains(name, "AVAILABLE"):
			cols.delivery = i
		case cols.zone == -1 && strings.Contains(name, "ZONAL"):
			cols.zone = i
		case cols.city == -1 && strings.Contains(name, "CITY"):
			cols.city = i
		case cols.state == -1 && strings.Contains(name, "STATE"):
			cols.state = i
		}
	}
	return cols
}

// field returns the trimmed cell at idx, or "" when the column is absent or
// the row is short.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// availability interprets an availability cell. An absent column means the
// whole leg is assumed available; a present column requires an affirmative
// token.
func availability(row []string, idx int) bool {
	if idx < 0 || idx >= len(row) {
		return true
	}
	return domain.IsAffirmative(row[idx])
}
