package report

// ReportQuery carries the optional filters for the aggregate report.
// StartDate/EndDate only take effect when both are present; Department is
// ignored when empty or the sentinel "all".
type ReportQuery struct {
	StartDate  string
	EndDate    string
	Department string
}

type DepartmentStat struct {
	Department string `json:"department"`
	Total      int64  `json:"total"`
}

type MonthlyTrendEntry struct {
	Month   string `json:"month"`
	Count   int64  `json:"count"`
	Present int64  `json:"present"`
}

type ReportResponse struct {
	TotalEmployees  int64               `json:"totalEmployees"`
	TotalAttendance int64               `json:"totalAttendance"`
	PresentCount    int64               `json:"presentCount"`
	AbsentCount     int64               `json:"absentCount"`
	AttendanceRate  float64             `json:"attendanceRate"`
	DepartmentStats []DepartmentStat    `json:"departmentStats"`
	MonthlyTrend    []MonthlyTrendEntry `json:"monthlyTrend"`
}

type EmployeeIdentity struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type AttendanceRecord struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

type EmployeeReportResponse struct {
	Employee       EmployeeIdentity   `json:"employee"`
	TotalDays      int64              `json:"totalDays"`
	PresentDays    int64              `json:"presentDays"`
	AbsentDays     int64              `json:"absentDays"`
	AttendanceRate float64            `json:"attendanceRate"`
	Records        []AttendanceRecord `json:"records"`
}
