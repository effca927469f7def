// SPDX-License-Identifier: MIT

// Package matrix - CSV ingestion and export.
//
// Format:
//   - One matrix row per record, one value per field, no header.
//   - Surrounding whitespace in a field is ignored; blank lines are skipped.
//   - Values are written with strconv 'g' formatting at full precision, so
//     WriteCSV → ReadCSV reproduces the matrix bit for bit.

package matrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	opReadCSV  = "ReadCSV"
	opWriteCSV = "WriteCSV"
)

// ReadCSV parses a rectangular numeric CSV document into a Dense.
// Implementation:
//   - Stage 1: read all records; ragged rows surface as ErrParse.
//   - Stage 2: parse every field as float64 into a row-major buffer.
//   - Stage 3: build via NewDenseFrom (numeric policy applies).
//
// Errors:
//   - ErrParse (ragged rows, non-numeric cell), ErrInvalidDimensions (empty input),
//     ErrNaNInf under the default policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ReadCSV(r io.Reader, opts ...Option) (*Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, matrixErrorf(opReadCSV, fmt.Errorf("%v: %w", pe, ErrParse))
		}
		return nil, matrixErrorf(opReadCSV, err)
	}
	if len(records) == 0 {
		return nil, matrixErrorf(opReadCSV, ErrInvalidDimensions)
	}

	rows, cols := len(records), len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		for j, field := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if perr != nil {
				return nil, matrixErrorf(opReadCSV, fmt.Errorf("cell (%d,%d) %q: %w", i, j, field, ErrParse))
			}
			data = append(data, v)
		}
	}

	m, err := NewDenseFrom(rows, cols, data, opts...)
	if err != nil {
		return nil, matrixErrorf(opReadCSV, err)
	}

	return m, nil
}

// WriteCSV writes m as CSV, one record per row.
// Errors: ErrNilMatrix, writer errors.
// Complexity: Time O(r*c), Space O(c) per record.
func WriteCSV(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opWriteCSV, err)
	}
	cw := csv.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	rec := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return matrixErrorf(opWriteCSV, err)
			}
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return matrixErrorf(opWriteCSV, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return matrixErrorf(opWriteCSV, err)
	}

	return nil
}
