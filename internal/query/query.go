// Package query is the read-only filter layer the dashboards consume. All
// functions are pure over one snapshot and recomputed on every call; at
// in-memory scale there is nothing to cache or invalidate.
package query

import (
	"sort"
	"time"

	"go-hrm/internal/domain"
)

type Period string

const (
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodYear   Period = "year"
	PeriodCustom Period = "custom"
)

type DateRange struct {
	From time.Time
	To   time.Time
}

// RangeFor resolves a period preset against "today" in today's location.
// Week runs Monday through Sunday. Custom keeps the last explicit range.
func RangeFor(period Period, today time.Time, custom DateRange) DateRange {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, today.Location())
	}

	switch period {
	case PeriodWeek:
		weekday := int(today.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday closes the week
		}
		monday := day(today).AddDate(0, 0, 1-weekday)
		return DateRange{From: monday, To: monday.AddDate(0, 0, 6)}
	case PeriodMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return DateRange{From: first, To: first.AddDate(0, 1, -1)}
	case PeriodYear:
		return DateRange{
			From: time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()),
			To:   time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location()),
		}
	default:
		return custom
	}
}

// Filter composes equality predicates with a date range, all ANDed. An
// empty DepartmentID/EmployeeID matches everything; a zero range skips the
// date check.
type Filter struct {
	Range        DateRange
	DepartmentID string
	EmployeeID   string
}

func (f Filter) matchesScope(departmentID, employeeID string) bool {
	if f.DepartmentID != "" && f.DepartmentID != departmentID {
		return false
	}
	if f.EmployeeID != "" && f.EmployeeID != employeeID {
		return false
	}
	return true
}

func (f Filter) dated() bool {
	return !f.Range.From.IsZero() || !f.Range.To.IsZero()
}

// overlaps is true when [start, end] intersects the filter range at all; a
// multi-day leave spanning a boundary still matches.
func (f Filter) overlaps(start, end time.Time) bool {
	if !f.dated() {
		return true
	}
	return !start.After(f.Range.To) && !end.Before(f.Range.From)
}

// Leaves returns the matching leaves sorted by start date descending.
func Leaves(snap *domain.Snapshot, f Filter) []domain.Leave {
	var out []domain.Leave
	for _, l := range snap.Leaves {
		// cheap equality checks first, date math last
		if !f.matchesScope(l.DepartmentID, l.EmployeeID) {
			continue
		}
		if !f.overlaps(l.StartDate, l.EndDate) {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out
}

// Overtimes returns the matching overtimes sorted by date descending.
func Overtimes(snap *domain.Snapshot, f Filter) []domain.Overtime {
	var out []domain.Overtime
	for _, o := range snap.Overtimes {
		if !f.matchesScope(o.DepartmentID, o.EmployeeID) {
			continue
		}
		if !f.overlaps(o.OvertimeDate, o.OvertimeDate) {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OvertimeDate.After(out[j].OvertimeDate)
	})
	return out
}

// TimeEntries returns the matching time entries sorted by work date
// descending.
func TimeEntries(snap *domain.Snapshot, f Filter) []domain.TimeEntry {
	var out []domain.TimeEntry
	for _, te := range snap.TimeEntries {
		if !f.matchesScope(te.DepartmentID, te.EmployeeID) {
			continue
		}
		if !f.overlaps(te.WorkDate, te.WorkDate) {
			continue
		}
		out = append(out, te)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WorkDate.After(out[j].WorkDate)
	})
	return out
}

const DefaultPageSize = 10

type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// Paginate slices an already-filtered, already-sorted result. Out-of-range
// page numbers clamp to the nearest valid page instead of failing.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	totalItems := len(items)
	totalPages := (totalItems + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
