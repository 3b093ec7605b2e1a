// Package ranking orders player rows by a numeric column.
package ranking

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pable/hoopmetrics/internal/model"
)

// Direction is a sort direction.
type Direction int

const (
	Desc Direction = iota
	Asc
)

func (d Direction) String() string {
	if d == Asc {
		return "asc"
	}
	return "desc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// ParseDirection accepts "asc" or "desc" (case-insensitive); empty means desc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc":
		return Desc, nil
	case "asc":
		return Asc, nil
	default:
		return Desc, fmt.Errorf("unknown sort direction: %s", s)
	}
}

// Row is anything with numeric columns.
type Row interface {
	SortValue(field model.StatField) (float64, bool)
}

// Sort is the selected column and direction.
type Sort struct {
	Field     model.StatField
	Direction Direction
}

// Select returns the sort after the user picks field: picking the current
// field flips the direction, picking another resets to descending.
func (s Sort) Select(field model.StatField) Sort {
	if field == s.Field {
		return Sort{Field: field, Direction: s.Direction.Flip()}
	}
	return Sort{Field: field, Direction: Desc}
}

func (s Sort) String() string {
	return fmt.Sprintf("%s %s", s.Field, s.Direction)
}

// Rows returns a sorted copy of rows; the input is left untouched. Equal
// values, and rows without the field, keep their relative order.
func Rows[T Row](rows []T, s Sort) []T {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b T) int {
		va, _ := a.SortValue(s.Field)
		vb, _ := b.SortValue(s.Field)
		var c int
		switch {
		case va < vb:
			c = -1
		case va > vb:
			c = 1
		}
		if s.Direction == Desc {
			return -c
		}
		return c
	})
	return out
}
