package employee

import (
	"context"
	"errors"
	"time"
)

// errMalformedID is returned by repositories for ids the backend could never
// have issued. The service reports it as not found.
var errMalformedID = errors.New("malformed employee id")

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	// Create assigns the id and both timestamps on empl.
	Create(ctx context.Context, empl *Employee) error
	// Update replaces the business fields in one statement, refreshes
	// UpdatedAt and returns the stored record after the change.
	Update(ctx context.Context, id string, fields EmployeeFields) (*Employee, error)
	// Delete removes the record and returns it as it was.
	Delete(ctx context.Context, id string) (*Employee, error)
	Ping(ctx context.Context) error
}

// storeNow is the timestamp source shared by both backends. Millisecond
// precision matches what MongoDB can store.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
