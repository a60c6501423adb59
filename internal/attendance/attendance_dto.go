package attendance

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=Present Absent"`
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}
