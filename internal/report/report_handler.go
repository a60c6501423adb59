package report

import (
	"net/http"

	"github.com/chsatyam09/HRMS/internal/shared/apperror"
	"github.com/chsatyam09/HRMS/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetReports(c *gin.Context) {
	q := ReportQuery{
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		Department: c.Query("department"),
	}

	resp, err := h.service.GetReports(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetEmployeeReport(c *gin.Context) {
	employeeID := c.Query("employeeId")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	resp, err := h.service.GetEmployeeReport(c.Request.Context(), employeeID, startDate, endDate)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}
