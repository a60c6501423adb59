package leave

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Approved Rejected"`
}

type EmployeeSummary struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
}

type LeaveResponse struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employeeId"`
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	Reason     string           `json:"reason"`
	Status     string           `json:"status"`
	CreatedAt  string           `json:"created_at"`
	Employee   *EmployeeSummary `json:"employee,omitempty"`
}
