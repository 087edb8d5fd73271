package employee_test

import (
	"context"
	"testing"
	"time"

	"go-hrm/internal/approval"
	"go-hrm/internal/domain"
	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/events"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type capturingPublisher struct {
	published []events.EmployeeCreatedEvent
}

func (p *capturingPublisher) PublishEmployeeCreated(_ context.Context, event events.EmployeeCreatedEvent) error {
	p.published = append(p.published, event)
	return nil
}

func setupServiceTest(snap *domain.Snapshot) (employee.Service, *store.Store, *capturingPublisher) {
	st := store.New(snap, zap.NewNop())
	pub := &capturingPublisher{}
	return employee.NewService(st, pub, zap.NewNop()), st, pub
}

func seededSnapshot() *domain.Snapshot {
	snap := domain.NewSnapshot()
	snap.Departments = []domain.Department{
		{ID: "1", Code: "ENG", Name: "Engineering"},
		{ID: "2", Code: "FIN", Name: "Finance", HeadID: "1"},
	}
	snap.Positions = []domain.Position{
		{ID: "1", Name: "Engineer"},
		{ID: "2", Name: "Manager"},
	}
	snap.Employees = []domain.Employee{
		{ID: "1", Code: "E001", Name: "Alice Tran", IdentityCard: "079123"},
		{ID: "2", Code: "E002", Name: "Bao Nguyen", IdentityCard: "079124"},
	}
	snap.DepartmentEmployees = []domain.DepartmentEmployee{
		{ID: "1", DepartmentID: "1", EmployeeID: "1"},
		{ID: "2", DepartmentID: "2", EmployeeID: "1"},
		{ID: "3", DepartmentID: "1", EmployeeID: "2"},
	}
	snap.PositionEmployees = []domain.PositionEmployee{
		{ID: "1", PositionID: "1", EmployeeID: "1"},
	}
	snap.Leaves = []domain.Leave{
		{ID: "1", EmployeeID: "1", DepartmentID: "1", LeaveTypeID: "1",
			Approval: approval.State{Status: approval.StatusPending}},
	}
	snap.Overtimes = []domain.Overtime{
		{ID: "1", EmployeeID: "1", DepartmentID: "1", OvertimeTypeID: "1",
			Approval: approval.State{Status: approval.StatusPending}},
	}
	snap.TimeEntries = []domain.TimeEntry{
		{ID: "1", EmployeeID: "1", DepartmentID: "1", WorkShiftID: "1", Status: "present"},
		{ID: "2", EmployeeID: "2", DepartmentID: "1", WorkShiftID: "1", Status: "present"},
	}
	return snap
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - inserts employee with links in one commit", func(t *testing.T) {
		svc, st, pub := setupServiceTest(seededSnapshot())

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			Code:          "E003",
			Name:          "Chi Pham",
			IdentityCard:  "079125",
			ContractDate:  "2024-01-02",
			DepartmentIDs: []string{"1", "2", "1"}, // duplicate collapses
			PositionIDs:   []string{"2"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "3", resp.ID)
		assert.ElementsMatch(t, []string{"1", "2"}, resp.DepartmentIDs)
		assert.Equal(t, []string{"2"}, resp.PositionIDs)

		snap := st.State()
		assert.Len(t, snap.Employees, 3)
		assert.Len(t, snap.DepartmentEmployees, 5)
		assert.Len(t, snap.PositionEmployees, 2)

		// Join rows from the same batch get distinct ids.
		seen := map[string]bool{}
		for _, link := range snap.DepartmentEmployees {
			assert.False(t, seen[link.ID], "duplicate link id %s", link.ID)
			seen[link.ID] = true
		}

		assert.Len(t, pub.published, 1)
		assert.Equal(t, "employee.created", pub.published[0].EventType)
		assert.Equal(t, "3", pub.published[0].EmployeeID)
		assert.NotEmpty(t, pub.published[0].EventID)
	})

	t.Run("Unknown department rolls back the whole batch", func(t *testing.T) {
		svc, st, pub := setupServiceTest(seededSnapshot())
		before := st.State()

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			Code:          "E003",
			Name:          "Chi Pham",
			IdentityCard:  "079125",
			ContractDate:  "2024-01-02",
			DepartmentIDs: []string{"1", "99"},
		})

		assert.ErrorIs(t, err, employeeerrors.ErrDepartmentNotFound)
		assert.Same(t, before, st.State())
		assert.Empty(t, pub.published)
	})

	t.Run("Validation error - missing identity card", func(t *testing.T) {
		svc, _, _ := setupServiceTest(seededSnapshot())

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			Code:         "E003",
			Name:         "Chi Pham",
			ContractDate: "2024-01-02",
		})

		assert.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil link slice keeps existing links", func(t *testing.T) {
		svc, st, _ := setupServiceTest(seededSnapshot())
		name := "Alice T. Tran"

		resp, err := svc.Update(ctx, "1", employee.UpdateEmployeeRequest{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "Alice T. Tran", resp.Name)
		assert.ElementsMatch(t, []string{"1", "2"}, resp.DepartmentIDs)
		assert.Len(t, st.State().DepartmentEmployees, 3)
	})

	t.Run("Non-nil slice replaces the whole link set", func(t *testing.T) {
		svc, st, _ := setupServiceTest(seededSnapshot())
		departments := []string{"2"}

		resp, err := svc.Update(ctx, "1", employee.UpdateEmployeeRequest{DepartmentIDs: &departments})

		assert.NoError(t, err)
		assert.Equal(t, []string{"2"}, resp.DepartmentIDs)

		var mine int
		for _, link := range st.State().DepartmentEmployees {
			if link.EmployeeID == "1" {
				mine++
				assert.Equal(t, "2", link.DepartmentID)
			}
		}
		assert.Equal(t, 1, mine)
		// The other employee's links are untouched.
		assert.Len(t, st.State().DepartmentEmployees, 2)
	})

	t.Run("Replacing with the same set twice accumulates nothing", func(t *testing.T) {
		svc, st, _ := setupServiceTest(seededSnapshot())
		departments := []string{"1", "2"}

		_, err := svc.Update(ctx, "1", employee.UpdateEmployeeRequest{DepartmentIDs: &departments})
		assert.NoError(t, err)
		_, err = svc.Update(ctx, "1", employee.UpdateEmployeeRequest{DepartmentIDs: &departments})
		assert.NoError(t, err)

		var mine []string
		for _, link := range st.State().DepartmentEmployees {
			if link.EmployeeID == "1" {
				mine = append(mine, link.DepartmentID)
			}
		}
		assert.ElementsMatch(t, []string{"1", "2"}, mine)
	})

	t.Run("Empty slice clears all links", func(t *testing.T) {
		svc, st, _ := setupServiceTest(seededSnapshot())
		departments := []string{}

		resp, err := svc.Update(ctx, "1", employee.UpdateEmployeeRequest{DepartmentIDs: &departments})

		assert.NoError(t, err)
		assert.Empty(t, resp.DepartmentIDs)
		assert.Len(t, st.State().DepartmentEmployees, 1)
	})

	t.Run("Unknown position in replacement set is refused", func(t *testing.T) {
		svc, st, _ := setupServiceTest(seededSnapshot())
		before := st.State()
		positions := []string{"99"}

		_, err := svc.Update(ctx, "1", employee.UpdateEmployeeRequest{PositionIDs: &positions})

		assert.ErrorIs(t, err, employeeerrors.ErrPositionNotFound)
		assert.Same(t, before, st.State())
	})

	t.Run("Not found", func(t *testing.T) {
		svc, _, _ := setupServiceTest(seededSnapshot())
		name := "Nobody"

		_, err := svc.Update(ctx, "99", employee.UpdateEmployeeRequest{Name: &name})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Cascades operational records and clears head reference", func(t *testing.T) {
		svc, st, _ := setupServiceTest(seededSnapshot())

		err := svc.Delete(ctx, "1")

		assert.NoError(t, err)
		snap := st.State()
		_, ok := snap.EmployeeByID("1")
		assert.False(t, ok)

		for _, link := range snap.DepartmentEmployees {
			assert.NotEqual(t, "1", link.EmployeeID)
		}
		assert.Empty(t, snap.PositionEmployees)
		assert.Empty(t, snap.Leaves)
		assert.Empty(t, snap.Overtimes)
		assert.Len(t, snap.TimeEntries, 1)
		assert.Equal(t, "2", snap.TimeEntries[0].EmployeeID)

		dept, _ := snap.DepartmentByID("2")
		assert.Empty(t, dept.HeadID)
	})

	t.Run("Live contract blocks deletion", func(t *testing.T) {
		snap := seededSnapshot()
		snap.Contracts = []domain.Contract{
			{ID: "1", EmployeeID: "1", ContractTypeID: "1", BaseSalary: 20_000_000,
				StartDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		}
		svc, st, _ := setupServiceTest(snap)
		before := st.State()

		err := svc.Delete(ctx, "1")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeHasContracts)
		assert.Equal(t, apperror.CodeReferenced, apperror.CodeOf(err))
		assert.Same(t, before, st.State())
	})

	t.Run("Not found", func(t *testing.T) {
		svc, _, _ := setupServiceTest(seededSnapshot())

		err := svc.Delete(ctx, "99")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
