package everything

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/evertools/esq-cli/internal/core/domain"
	"github.com/evertools/esq-cli/internal/logger"
)

// parseRecords converts decoded CSV output into result records. The first
// line is the header and names the record keys; expected lists the columns
// the request asked for and is used only to flag discrepancies, the header
// always wins. Rows whose field count differs from the header are skipped
// and logged, never fatal for the batch. Output that cannot be read as CSV
// at all is a domain.ErrParse. An empty body under a valid header is an
// empty result set, not an error.
func parseRecords(text string, expected []string) ([]domain.Record, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.Record{}, nil
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Record{}, nil
		}
		return nil, fmt.Errorf("%w: reading header: %v", domain.ErrParse, err)
	}

	checkHeader(header, expected)

	records := []domain.Record{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				logger.Anomaly("skipping malformed row: %v", err)
				continue
			}
			return nil, fmt.Errorf("%w: reading rows: %v", domain.ErrParse, err)
		}
		if len(row) != len(header) {
			logger.Anomaly("skipping row with %d fields, header has %d", len(row), len(header))
			continue
		}
		records = append(records, buildRecord(header, row))
	}

	return records, nil
}

// checkHeader logs a mismatch between what the engine emitted and what the
// request asked for. A silent engine-side column change would otherwise be
// invisible to callers keying on column names.
func checkHeader(header, expected []string) {
	if len(expected) == 0 {
		return
	}
	if len(header) != len(expected) {
		logger.Anomaly("engine emitted %d columns %v, request asked for %d %v",
			len(header), header, len(expected), expected)
		return
	}
	for i := range header {
		if header[i] != expected[i] {
			logger.Anomaly("engine column %d is %q, request asked for %q",
				i, header[i], expected[i])
			return
		}
	}
}

// buildRecord pairs header names with row values in emission order.
func buildRecord(header, row []string) domain.Record {
	fields := make([]domain.Field, len(header))
	for i, col := range header {
		fields[i] = domain.Field{Column: col, Value: typedValue(col, row[i])}
	}
	return domain.Record{Fields: fields}
}

// typedValue widens all-digit size cells to int64. Anything else stays a
// string: the engine legitimately emits placeholder text for sizes of
// folders.
func typedValue(column, value string) any {
	if column == domain.ColumnSize && isDigits(value) {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return value
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
