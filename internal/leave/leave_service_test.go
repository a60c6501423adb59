package leave_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/chsatyam09/HRMS/internal/leave"
	leaveerrors "github.com/chsatyam09/HRMS/internal/leave/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createFn         func(ctx context.Context, l *leave.Leave) error
	findAllFn        func(ctx context.Context) ([]leave.Leave, error)
	findByIDFn       func(ctx context.Context, id string) (*leave.Leave, error)
	updateFn         func(ctx context.Context, l *leave.Leave) error
	employeeExistsFn func(ctx context.Context, employeeID string) (bool, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context) ([]leave.Leave, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID)
	}
	return true, nil
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestLeaveService_Apply(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	validReq := leave.ApplyLeaveRequest{
		EmployeeID: employeeID.String(),
		StartDate:  "2024-04-01",
		EndDate:    "2024-04-03",
		Reason:     "Family vacation",
	}

	t.Run("new applications always start pending", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeLeaveRepository{}
		repo.createFn = func(ctx context.Context, l *leave.Leave) error {
			assert.Equal(t, employeeID, l.EmployeeID)
			assert.Equal(t, "2024-04-01", l.StartDate)
			assert.Equal(t, "2024-04-03", l.EndDate)
			assert.Equal(t, leave.StatusPending, l.Status)
			return nil
		}

		svc := leave.NewService(db, repo)
		resp, err := svc.Apply(ctx, validReq)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("single day leave is allowed", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		req := validReq
		req.EndDate = req.StartDate

		svc := leave.NewService(db, &fakeLeaveRepository{})
		_, err := svc.Apply(ctx, req)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("end before start fails before any transaction", func(t *testing.T) {
		req := validReq
		req.StartDate = "2024-04-03"
		req.EndDate = "2024-04-01"

		svc := leave.NewService(nil, &fakeLeaveRepository{})
		_, err := svc.Apply(ctx, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("malformed employee id fails before any transaction", func(t *testing.T) {
		req := validReq
		req.EmployeeID = "nope"

		svc := leave.NewService(nil, &fakeLeaveRepository{})
		_, err := svc.Apply(ctx, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidEmployeeID)
	})

	t.Run("malformed date fails before any transaction", func(t *testing.T) {
		req := validReq
		req.StartDate = "01/04/2024"

		svc := leave.NewService(nil, &fakeLeaveRepository{})
		_, err := svc.Apply(ctx, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("unknown employee rolls back with not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeLeaveRepository{}
		repo.employeeExistsFn = func(ctx context.Context, id string) (bool, error) {
			return false, nil
		}
		repo.createFn = func(ctx context.Context, l *leave.Leave) error {
			t.Fatal("nothing may be created for an unknown employee")
			return nil
		}

		svc := leave.NewService(db, repo)
		_, err := svc.Apply(ctx, validReq)

		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeaveService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("includes the employee summary when preloaded", func(t *testing.T) {
		repo := &fakeLeaveRepository{}
		repo.findAllFn = func(ctx context.Context) ([]leave.Leave, error) {
			return []leave.Leave{
				{
					ID:         uuid.New(),
					EmployeeID: uuid.New(),
					StartDate:  "2024-04-01",
					EndDate:    "2024-04-03",
					Reason:     "Holiday",
					Status:     leave.StatusApproved,
					Employee:   &leave.EmployeeRef{EmployeeID: "EMP001", FullName: "John Smith"},
				},
				{
					ID:         uuid.New(),
					EmployeeID: uuid.New(),
					StartDate:  "2024-04-05",
					EndDate:    "2024-04-05",
					Reason:     "Sick leave",
					Status:     leave.StatusPending,
				},
			}, nil
		}

		svc := leave.NewService(nil, repo)
		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.NotNil(t, resp[0].Employee)
		assert.Equal(t, "EMP001", resp[0].Employee.EmployeeID)
		assert.Nil(t, resp[1].Employee)
	})

	t.Run("empty store yields an empty slice", func(t *testing.T) {
		svc := leave.NewService(nil, &fakeLeaveRepository{})
		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})
}

func TestLeaveService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New()

	existing := func() *leave.Leave {
		return &leave.Leave{
			ID:         leaveID,
			EmployeeID: uuid.New(),
			StartDate:  "2024-04-01",
			EndDate:    "2024-04-03",
			Reason:     "Holiday",
			Status:     leave.StatusPending,
		}
	}

	t.Run("malformed id fails before any transaction", func(t *testing.T) {
		svc := leave.NewService(nil, &fakeLeaveRepository{})
		_, err := svc.UpdateStatus(ctx, "nope", leave.UpdateLeaveStatusRequest{Status: leave.StatusApproved})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveID)
	})

	t.Run("unknown status fails before any transaction", func(t *testing.T) {
		svc := leave.NewService(nil, &fakeLeaveRepository{})
		_, err := svc.UpdateStatus(ctx, leaveID.String(), leave.UpdateLeaveStatusRequest{Status: "Cancelled"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatus)
	})

	t.Run("unknown leave rolls back with not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		svc := leave.NewService(db, &fakeLeaveRepository{})
		_, err := svc.UpdateStatus(ctx, leaveID.String(), leave.UpdateLeaveStatusRequest{Status: leave.StatusApproved})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("approves a pending request inside a committed transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeLeaveRepository{}
		repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			assert.Equal(t, leaveID.String(), id)
			return existing(), nil
		}
		repo.updateFn = func(ctx context.Context, l *leave.Leave) error {
			assert.Equal(t, leave.StatusApproved, l.Status)
			return nil
		}

		svc := leave.NewService(db, repo)
		resp, err := svc.UpdateStatus(ctx, leaveID.String(), leave.UpdateLeaveStatusRequest{Status: leave.StatusApproved})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("any transition between known statuses is accepted", func(t *testing.T) {
		for _, target := range []string{leave.StatusPending, leave.StatusApproved, leave.StatusRejected} {
			db, mock := newMockDB(t)
			mock.ExpectBegin()
			mock.ExpectCommit()

			repo := &fakeLeaveRepository{}
			repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
				l := existing()
				l.Status = leave.StatusApproved
				return l, nil
			}

			svc := leave.NewService(db, repo)
			resp, err := svc.UpdateStatus(ctx, leaveID.String(), leave.UpdateLeaveStatusRequest{Status: target})

			assert.NoError(t, err)
			assert.Equal(t, target, resp.Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		}
	})
}
