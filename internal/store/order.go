package store

import (
	"slices"
	"time"

	"pet-hub/internal/platform/timestamp"
)

// parseDate interpreta los campos date guardados como texto. Sin zona => UTC.
func parseDate(s string) (time.Time, bool) { return timestamp.Parse(s) }

func createdAt(t timestamp.Time) (time.Time, bool) {
	return t.Time, t.Valid()
}

// sortNewestFirst ordena descendente por ts. Sin timestamp válido va al final;
// empates por id descendente.
func sortNewestFirst[T any](items []T, ts func(T) (time.Time, bool), id func(T) int64) {
	slices.SortStableFunc(items, func(a, b T) int {
		ta, okA := ts(a)
		tb, okB := ts(b)
		switch {
		case okA && !okB:
			return -1
		case !okA && okB:
			return 1
		case okA && okB:
			if c := tb.Compare(ta); c != 0 {
				return c
			}
		}
		ia, ib := id(a), id(b)
		switch {
		case ia > ib:
			return -1
		case ia < ib:
			return 1
		default:
			return 0
		}
	})
}
