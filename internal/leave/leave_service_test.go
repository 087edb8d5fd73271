package leave_test

import (
	"context"
	"testing"

	"go-hrm/internal/approval"
	"go-hrm/internal/domain"
	"go-hrm/internal/events"
	"go-hrm/internal/leave"
	leaveerrors "go-hrm/internal/leave/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type capturingPublisher struct {
	published []events.ApprovalDecidedEvent
}

func (p *capturingPublisher) PublishApprovalDecided(_ context.Context, event events.ApprovalDecidedEvent) error {
	p.published = append(p.published, event)
	return nil
}

func setupServiceTest(snap *domain.Snapshot) (leave.Service, *store.Store, *capturingPublisher) {
	st := store.New(snap, zap.NewNop())
	pub := &capturingPublisher{}
	return leave.NewService(st, pub, zap.NewNop()), st, pub
}

func seededSnapshot() *domain.Snapshot {
	snap := domain.NewSnapshot()
	snap.Departments = []domain.Department{
		{ID: "1", Code: "ENG", Name: "Engineering"},
		{ID: "2", Code: "FIN", Name: "Finance"},
	}
	snap.Employees = []domain.Employee{
		{ID: "3", Code: "E003", Name: "Chi Pham", IdentityCard: "079125"},
		{ID: "5", Code: "E005", Name: "Duy Le", IdentityCard: "079126"},
		{ID: "7", Code: "E007", Name: "Huong Vo", IdentityCard: "079127"},
	}
	snap.DepartmentEmployees = []domain.DepartmentEmployee{
		{ID: "1", DepartmentID: "1", EmployeeID: "3"},
		{ID: "2", DepartmentID: "1", EmployeeID: "7"},
		{ID: "3", DepartmentID: "2", EmployeeID: "5"},
	}
	snap.LeaveTypes = []domain.LeaveType{
		{ID: "1", Name: "Annual"},
		{ID: "2", Name: "Sick"},
	}
	return snap
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - pending with inclusive day count", func(t *testing.T) {
		svc, st, _ := setupServiceTest(seededSnapshot())

		resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID:   "3",
			DepartmentID: "1",
			LeaveTypeID:  "1",
			StartDate:    "2024-03-01",
			EndDate:      "2024-03-05",
			Reason:       "family trip",
		})

		assert.NoError(t, err)
		assert.Equal(t, "1", resp.ID)
		assert.Equal(t, string(approval.StatusPending), resp.Status)
		assert.Equal(t, 5, resp.NumberOfDays)
		assert.Len(t, st.State().Leaves, 1)
	})

	t.Run("Single day counts as one", func(t *testing.T) {
		svc, _, _ := setupServiceTest(seededSnapshot())

		resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID:   "3",
			DepartmentID: "1",
			LeaveTypeID:  "2",
			StartDate:    "2024-03-01",
			EndDate:      "2024-03-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.NumberOfDays)
	})

	t.Run("Employee outside the department is refused", func(t *testing.T) {
		svc, _, _ := setupServiceTest(seededSnapshot())

		_, err := svc.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID:   "5", // linked to department 2
			DepartmentID: "1",
			LeaveTypeID:  "1",
			StartDate:    "2024-03-01",
			EndDate:      "2024-03-05",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotInDepartment)
	})

	t.Run("Start after end is refused", func(t *testing.T) {
		svc, _, _ := setupServiceTest(seededSnapshot())

		_, err := svc.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID:   "3",
			DepartmentID: "1",
			LeaveTypeID:  "1",
			StartDate:    "2024-03-05",
			EndDate:      "2024-03-01",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})
}

func TestLeaveService_ApprovalFlow(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc leave.Service) string {
		t.Helper()
		resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID:   "3",
			DepartmentID: "1",
			LeaveTypeID:  "1",
			StartDate:    "2024-03-01",
			EndDate:      "2024-03-05",
		})
		assert.NoError(t, err)
		return resp.ID
	}

	t.Run("Two-stage approval records the trail", func(t *testing.T) {
		svc, st, pub := setupServiceTest(seededSnapshot())
		id := create(t, svc)

		resp, err := svc.DepartmentApprove(ctx, id, "7")
		assert.NoError(t, err)
		assert.Equal(t, string(approval.StatusDepartmentApproved), resp.Status)
		assert.Equal(t, "7", resp.DepartmentApprovedByID)

		resp, err = svc.Approve(ctx, id, "5")
		assert.NoError(t, err)
		assert.Equal(t, string(approval.StatusApproved), resp.Status)
		assert.Equal(t, "5", resp.ApprovedByID)
		// The first-stage trail survives the final approval.
		assert.Equal(t, "7", resp.DepartmentApprovedByID)

		l, _ := st.State().LeaveByID(id)
		assert.NotNil(t, l.Approval.DepartmentApprovedAt)
		assert.NotNil(t, l.Approval.ApprovedAt)

		assert.Len(t, pub.published, 2)
		assert.Equal(t, "leave.department_approved", pub.published[0].EventType)
		assert.Equal(t, "leave.approved", pub.published[1].EventType)
		assert.Equal(t, "leave", pub.published[1].RequestKind)
	})

	t.Run("Final approval cannot skip the department stage", func(t *testing.T) {
		svc, _, pub := setupServiceTest(seededSnapshot())
		id := create(t, svc)

		_, err := svc.Approve(ctx, id, "5")

		assert.ErrorIs(t, err, approval.ErrInvalidTransition)
		assert.Equal(t, apperror.CodeInvalidState, apperror.CodeOf(err))
		assert.Empty(t, pub.published)
	})

	t.Run("Rejection after department approval is terminal", func(t *testing.T) {
		svc, st, _ := setupServiceTest(seededSnapshot())
		id := create(t, svc)

		_, err := svc.DepartmentApprove(ctx, id, "7")
		assert.NoError(t, err)

		resp, err := svc.Reject(ctx, id, "5", "missing documents")
		assert.NoError(t, err)
		assert.Equal(t, string(approval.StatusRejected), resp.Status)
		assert.Equal(t, "missing documents", resp.RejectionReason)

		// A later approval attempt is a no-op on the stored record.
		_, err = svc.Approve(ctx, id, "5")
		assert.ErrorIs(t, err, approval.ErrInvalidTransition)

		l, _ := st.State().LeaveByID(id)
		assert.Equal(t, approval.StatusRejected, l.Approval.Status)
		assert.Equal(t, "7", l.Approval.DepartmentApprovedByID)
	})

	t.Run("Blank rejection reason is refused", func(t *testing.T) {
		svc, st, _ := setupServiceTest(seededSnapshot())
		id := create(t, svc)

		_, err := svc.Reject(ctx, id, "5", "   ")

		assert.ErrorIs(t, err, approval.ErrRejectionReasonRequired)
		l, _ := st.State().LeaveByID(id)
		assert.Equal(t, approval.StatusPending, l.Approval.Status)
	})
}

func TestLeaveService_TerminalImmutability(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupServiceTest(seededSnapshot())

	resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID:   "3",
		DepartmentID: "1",
		LeaveTypeID:  "1",
		StartDate:    "2024-03-01",
		EndDate:      "2024-03-05",
	})
	assert.NoError(t, err)

	_, err = svc.DepartmentApprove(ctx, resp.ID, "7")
	assert.NoError(t, err)
	_, err = svc.Approve(ctx, resp.ID, "5")
	assert.NoError(t, err)

	reason := "changed my mind"
	_, err = svc.Update(ctx, resp.ID, leave.UpdateLeaveRequest{Reason: &reason})
	assert.ErrorIs(t, err, approval.ErrImmutable)

	err = svc.Delete(ctx, resp.ID)
	assert.ErrorIs(t, err, approval.ErrImmutable)
}

func TestLeaveService_Types(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete refused while leaves reference the type", func(t *testing.T) {
		svc, _, _ := setupServiceTest(seededSnapshot())
		_, err := svc.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID:   "3",
			DepartmentID: "1",
			LeaveTypeID:  "1",
			StartDate:    "2024-03-01",
			EndDate:      "2024-03-05",
		})
		assert.NoError(t, err)

		err = svc.DeleteType(ctx, "1")

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveTypeInUse)
		assert.Equal(t, apperror.CodeReferenced, apperror.CodeOf(err))
	})

	t.Run("Delete succeeds for an unreferenced type", func(t *testing.T) {
		svc, st, _ := setupServiceTest(seededSnapshot())

		err := svc.DeleteType(ctx, "2")

		assert.NoError(t, err)
		assert.Len(t, st.State().LeaveTypes, 1)
	})
}
