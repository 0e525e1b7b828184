package events

import "time"

const DefaultEmployeeLifecycleTopic = "employees.lifecycle.v1"

const (
	EmployeeCreated = "employee_created"
	EmployeeUpdated = "employee_updated"
	EmployeeDeleted = "employee_deleted"
)

// EmployeeLifecycleEvent is published after a write to the record store has
// succeeded. Snapshot is the record after the write, or before it for
// deletions.
type EmployeeLifecycleEvent struct {
	EventType  string           `json:"event_type"`
	RequestID  string           `json:"request_id,omitempty"`
	EmployeeID string           `json:"employee_id"`
	Snapshot   EmployeeSnapshot `json:"snapshot"`
	OccurredAt time.Time        `json:"occurred_at"`
}

type EmployeeSnapshot struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Position string  `json:"position"`
	Salary   float64 `json:"salary"`
}
