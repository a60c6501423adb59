package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Leave struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`
	StartDate  string    `gorm:"column:start_date;type:date;not null"`
	EndDate    string    `gorm:"column:end_date;type:date;not null"`
	Reason     string    `gorm:"column:reason;type:text;not null"`
	Status     string    `gorm:"column:status;type:varchar(10);not null;default:'Pending'"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Leave) TableName() string {
	return "leaves"
}

// EmployeeRef is the minimal employee identity joined into leave listings.
type EmployeeRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string    `gorm:"column:employee_id"`
	FullName   string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
