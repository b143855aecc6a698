// Package result models the rows returned by one executed statement as an
// immutable, read-only value with explicitly tagged cell variants.
package result

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// Kind tags the variant held by a Cell.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindInt
	KindFloat
	KindBytes
	KindTime
)

// Cell is one nullable scalar value. Cells are immutable once built.
type Cell struct {
	kind  Kind
	text  string
	i     int64
	f     float64
	bytes []byte
	t     time.Time
}

// Null returns the null cell.
func Null() Cell { return Cell{kind: KindNull} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{kind: KindText, text: s} }

// Int returns an integer cell.
func Int(i int64) Cell { return Cell{kind: KindInt, i: i} }

// Float returns a real-valued cell.
func Float(f float64) Cell { return Cell{kind: KindFloat, f: f} }

// Bytes returns a binary cell.
func Bytes(b []byte) Cell { return Cell{kind: KindBytes, bytes: b} }

// Time returns a temporal cell.
func Time(t time.Time) Cell { return Cell{kind: KindTime, t: t} }

// Kind reports the variant tag.
func (c Cell) Kind() Kind { return c.kind }

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool { return c.kind == KindNull }

// String returns the raw textual form of the cell, before any sanitization.
// Null cells render as the empty string.
func (c Cell) String() string {
	switch c.kind {
	case KindNull:
		return ""
	case KindText:
		return c.text
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return strconv.FormatFloat(c.f, 'g', -1, 64)
	case KindBytes:
		return string(c.bytes)
	case KindTime:
		return c.t.Format("2006-01-02 15:04:05")
	}
	return ""
}

// Row is an ordered sequence of cells, one per header of the owning Set.
type Row []Cell

// Set is the ordered headers plus ordered rows returned by one statement.
// Every row holds exactly len(Headers) cells.
type Set struct {
	Headers []string
	Rows    []Row
}

// Slice returns a view over rows [start, end) sharing the same headers.
func (s *Set) Slice(start, end int) *Set {
	return &Set{Headers: s.Headers, Rows: s.Rows[start:end]}
}

// FromSQLRows drains a database/sql result into a Set, tagging each value.
// The caller retains ownership of rows and must close them.
func FromSQLRows(rows *sql.Rows) (*Set, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	set := &Set{Headers: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(cols))
		for i, v := range values {
			row[i] = fromDriverValue(v)
		}
		set.Rows = append(set.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating result: %w", err)
	}
	return set, nil
}

// fromDriverValue maps a database/sql scan value onto a tagged Cell.
// The MySQL driver hands text columns back as []byte; those become text
// cells when they are valid UTF-8, binary cells otherwise.
func fromDriverValue(v any) Cell {
	switch x := v.(type) {
	case nil:
		return Null()
	case int64:
		return Int(x)
	case float64:
		return Float(x)
	case bool:
		if x {
			return Int(1)
		}
		return Int(0)
	case time.Time:
		return Time(x)
	case string:
		return Text(x)
	case []byte:
		if utf8.Valid(x) {
			return Text(string(x))
		}
		b := make([]byte, len(x))
		copy(b, x)
		return Bytes(b)
	default:
		return Text(fmt.Sprintf("%v", x))
	}
}
