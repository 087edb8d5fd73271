package query_test

import (
	"fmt"
	"testing"
	"time"

	"go-hrm/internal/domain"
	"go-hrm/internal/query"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureSnapshot() *domain.Snapshot {
	snap := domain.NewSnapshot()
	snap.Leaves = []domain.Leave{
		{ID: "1", EmployeeID: "1", DepartmentID: "1",
			StartDate: date(2024, time.January, 28), EndDate: date(2024, time.February, 3)},
		{ID: "2", EmployeeID: "2", DepartmentID: "1",
			StartDate: date(2024, time.February, 10), EndDate: date(2024, time.February, 12)},
		{ID: "3", EmployeeID: "1", DepartmentID: "2",
			StartDate: date(2024, time.March, 1), EndDate: date(2024, time.March, 5)},
	}
	snap.Overtimes = []domain.Overtime{
		{ID: "1", EmployeeID: "1", DepartmentID: "1", OvertimeDate: date(2024, time.February, 14)},
		{ID: "2", EmployeeID: "2", DepartmentID: "2", OvertimeDate: date(2024, time.February, 29)},
		{ID: "3", EmployeeID: "1", DepartmentID: "1", OvertimeDate: date(2024, time.March, 1)},
	}
	snap.TimeEntries = []domain.TimeEntry{
		{ID: "1", EmployeeID: "1", DepartmentID: "1", WorkDate: date(2024, time.February, 1), Status: "present"},
		{ID: "2", EmployeeID: "1", DepartmentID: "1", WorkDate: date(2024, time.February, 2), Status: "late"},
	}
	return snap
}

func TestRangeFor(t *testing.T) {
	t.Run("Week runs Monday through Sunday", func(t *testing.T) {
		wednesday := date(2024, time.February, 14)

		r := query.RangeFor(query.PeriodWeek, wednesday, query.DateRange{})

		assert.Equal(t, date(2024, time.February, 12), r.From)
		assert.Equal(t, date(2024, time.February, 18), r.To)
	})

	t.Run("Sunday closes its own week", func(t *testing.T) {
		sunday := date(2024, time.February, 18)

		r := query.RangeFor(query.PeriodWeek, sunday, query.DateRange{})

		assert.Equal(t, date(2024, time.February, 12), r.From)
		assert.Equal(t, date(2024, time.February, 18), r.To)
	})

	t.Run("Month covers the leap February", func(t *testing.T) {
		r := query.RangeFor(query.PeriodMonth, date(2024, time.February, 14), query.DateRange{})

		assert.Equal(t, date(2024, time.February, 1), r.From)
		assert.Equal(t, date(2024, time.February, 29), r.To)
	})

	t.Run("Year", func(t *testing.T) {
		r := query.RangeFor(query.PeriodYear, date(2024, time.July, 9), query.DateRange{})

		assert.Equal(t, date(2024, time.January, 1), r.From)
		assert.Equal(t, date(2024, time.December, 31), r.To)
	})

	t.Run("Custom keeps the explicit range", func(t *testing.T) {
		custom := query.DateRange{From: date(2024, time.April, 1), To: date(2024, time.April, 7)}

		r := query.RangeFor(query.PeriodCustom, date(2024, time.July, 9), custom)

		assert.Equal(t, custom, r)
	})
}

func TestLeaves(t *testing.T) {
	snap := fixtureSnapshot()
	february := query.DateRange{From: date(2024, time.February, 1), To: date(2024, time.February, 29)}

	t.Run("Range match includes a leave spanning the boundary", func(t *testing.T) {
		out := query.Leaves(snap, query.Filter{Range: february})

		// Leave 1 starts in January but overlaps February 1-3.
		assert.Len(t, out, 2)
		assert.Equal(t, "2", out[0].ID) // sorted by start date descending
		assert.Equal(t, "1", out[1].ID)
	})

	t.Run("Department and employee predicates AND together", func(t *testing.T) {
		out := query.Leaves(snap, query.Filter{DepartmentID: "1", EmployeeID: "1"})

		assert.Len(t, out, 1)
		assert.Equal(t, "1", out[0].ID)
	})

	t.Run("Zero range matches everything", func(t *testing.T) {
		out := query.Leaves(snap, query.Filter{})

		assert.Len(t, out, 3)
	})

	t.Run("Disjoint range matches nothing", func(t *testing.T) {
		out := query.Leaves(snap, query.Filter{
			Range: query.DateRange{From: date(2025, time.January, 1), To: date(2025, time.January, 31)},
		})

		assert.Empty(t, out)
	})
}

func TestOvertimes(t *testing.T) {
	snap := fixtureSnapshot()
	february := query.DateRange{From: date(2024, time.February, 1), To: date(2024, time.February, 29)}

	out := query.Overtimes(snap, query.Filter{Range: february})

	assert.Len(t, out, 2)
	assert.Equal(t, "2", out[0].ID) // Feb 29 sorts before Feb 14
	assert.Equal(t, "1", out[1].ID)
}

func TestTimeEntries(t *testing.T) {
	snap := fixtureSnapshot()

	out := query.TimeEntries(snap, query.Filter{EmployeeID: "1"})

	assert.Len(t, out, 2)
	assert.Equal(t, "2", out[0].ID)
}

func TestPaginate(t *testing.T) {
	items := make([]string, 25)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i+1)
	}

	t.Run("Middle page", func(t *testing.T) {
		page := query.Paginate(items, 2, 10)

		assert.Equal(t, 2, page.Number)
		assert.Equal(t, 10, len(page.Items))
		assert.Equal(t, "item-11", page.Items[0])
		assert.Equal(t, 25, page.TotalItems)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("Last page is short", func(t *testing.T) {
		page := query.Paginate(items, 3, 10)

		assert.Len(t, page.Items, 5)
	})

	t.Run("Page beyond the end clamps to the last page", func(t *testing.T) {
		page := query.Paginate(items, 99, 10)

		assert.Equal(t, 3, page.Number)
		assert.Len(t, page.Items, 5)
	})

	t.Run("Page below one clamps to the first page", func(t *testing.T) {
		page := query.Paginate(items, 0, 10)

		assert.Equal(t, 1, page.Number)
		assert.Equal(t, "item-1", page.Items[0])
	})

	t.Run("Non-positive size falls back to the default", func(t *testing.T) {
		page := query.Paginate(items, 1, 0)

		assert.Equal(t, query.DefaultPageSize, page.Size)
		assert.Len(t, page.Items, query.DefaultPageSize)
	})

	t.Run("Empty input is one empty page", func(t *testing.T) {
		page := query.Paginate([]string{}, 1, 10)

		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 1, page.Number)
	})
}
