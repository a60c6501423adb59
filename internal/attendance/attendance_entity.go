package attendance

import (
	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Attendance is one presence mark for one employee on one calendar date.
// Dates are stored as YYYY-MM-DD strings; the composite unique index keeps
// at most one mark per employee per day.
type Attendance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendances_employee_date"`
	Date       string    `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendances_employee_date"`
	Status     string    `gorm:"column:status;type:varchar(10);not null"`
}

func (Attendance) TableName() string {
	return "attendances"
}
