package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chsatyam09/HRMS/internal/employee"
	employeeerrors "github.com/chsatyam09/HRMS/internal/employee/errors"
	"github.com/chsatyam09/HRMS/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	createFn func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn func(ctx context.Context) ([]employee.EmployeeResponse, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestEmployeeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	t.Run("valid payload returns 201 with the created record", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "EMP001", req.EmployeeID)
				return employee.EmployeeResponse{
					ID:         uuid.New().String(),
					EmployeeID: req.EmployeeID,
					FullName:   req.FullName,
					Email:      req.Email,
					Department: req.Department,
				}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"EMP001","full_name":"John Smith","email":"john@example.com","department":"Engineering"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		employee.NewHandler(svc).Create(c)
		env := decodeEnvelope(t, w)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Ok)

		var resp employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, "EMP001", resp.EmployeeID)
	})

	t.Run("missing fields fail binding with 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called when binding fails")
				return employee.EmployeeResponse{}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(`{"employee_id":"EMP001"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		employee.NewHandler(svc).Create(c)
		env := decodeEnvelope(t, w)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("malformed email fails binding with 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called when binding fails")
				return employee.EmployeeResponse{}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"EMP001","full_name":"John Smith","email":"not-an-email","department":"Engineering"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		employee.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate employee surfaces as 409", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeIDAlreadyExists
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"EMP001","full_name":"John Smith","email":"john@example.com","department":"Engineering"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		employee.NewHandler(svc).Create(c)
		env := decodeEnvelope(t, w)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", env.Error.Code)
		assert.Equal(t, "Employee ID already exists", env.Error.Message)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the employee list", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{
					{EmployeeID: "EMP002"},
					{EmployeeID: "EMP001"},
				}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)

		employee.NewHandler(svc).GetAll(c)
		env := decodeEnvelope(t, w)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Ok)

		var resp []employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("service failure is a 500", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return nil, assert.AnError
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)

		employee.NewHandler(svc).GetAll(c)
		env := decodeEnvelope(t, w)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful delete returns 200", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			deleteFn: func(ctx context.Context, got string) error {
				assert.Equal(t, id, got)
				return nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/employees/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		employee.NewHandler(svc).Delete(c)
		env := decodeEnvelope(t, w)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Ok)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			deleteFn: func(ctx context.Context, got string) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/employees/some-id", nil)
		c.Params = gin.Params{{Key: "id", Value: "some-id"}}

		employee.NewHandler(svc).Delete(c)
		env := decodeEnvelope(t, w)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}
