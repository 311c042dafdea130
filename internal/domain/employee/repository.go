package employee

import "context"

// EmployeeRepository is read-only to this service; employee records are
// administered elsewhere.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
}
