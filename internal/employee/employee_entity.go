package employee

import (
	"time"
)

// Employee is the stored record. The gorm tags describe the PostgreSQL
// table; the Mongo repository maps it through employeeDocument.
type Employee struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Location  string    `gorm:"not null"`
	Position  string    `gorm:"not null"`
	Salary    float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeFields are the four business fields, already trimmed and checked.
type EmployeeFields struct {
	Name     string
	Location string
	Position string
	Salary   float64
}
