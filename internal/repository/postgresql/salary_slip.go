package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fintradify/attendance-backend-go/internal/domain/salaryslip"
	"github.com/fintradify/attendance-backend-go/internal/pkg/database"
)

type salarySlipRepository struct {
	db *database.DB
}

func NewSalarySlipRepository(db *database.DB) salaryslip.SalarySlipRepository {
	return &salarySlipRepository{db: db}
}

const salarySlipColumns = `
	s.id, s.employee_id, s.month, s.amount, s.hours_worked, s.created_at,
	e.employee_code, e.name, e.email, e.position
`

// Upsert implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) Upsert(ctx context.Context, slip salaryslip.SalarySlip) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO salary_slips (id, employee_id, month, amount, hours_worked)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, month)
		DO UPDATE SET amount = EXCLUDED.amount, hours_worked = EXCLUDED.hours_worked, created_at = NOW()
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		slip.EmployeeID,
		slip.Month,
		slip.Amount,
		slip.HoursWorked,
	).Scan(&slip.ID, &slip.CreatedAt)

	if err != nil {
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to upsert salary slip: %w", err)
	}

	return slip, nil
}

// GetByID implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) GetByID(ctx context.Context, id string) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + salarySlipColumns + `
		FROM salary_slips s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	slip, err := scanSalarySlip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salaryslip.SalarySlip{}, salaryslip.ErrSalarySlipNotFound
		}
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to get salary slip by id: %w", err)
	}

	return slip, nil
}

// GetByEmployeeAndMonth implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + salarySlipColumns + `
		FROM salary_slips s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.month = $2
	`

	slip, err := scanSalarySlip(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salaryslip.SalarySlip{}, salaryslip.ErrSalarySlipNotFound
		}
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to get salary slip by employee and month: %w", err)
	}

	return slip, nil
}

// ListByEmployee implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) ListByEmployee(ctx context.Context, employeeID string) ([]salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + salarySlipColumns + `
		FROM salary_slips s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
		ORDER BY s.month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips by employee: %w", err)
	}
	defer rows.Close()

	return scanSalarySlips(rows)
}

// ListAll implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) ListAll(ctx context.Context) ([]salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + salarySlipColumns + `
		FROM salary_slips s
		JOIN employees e ON e.id = s.employee_id
		ORDER BY s.month DESC, e.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips: %w", err)
	}
	defer rows.Close()

	return scanSalarySlips(rows)
}

// ListByMonthRange implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) ListByMonthRange(ctx context.Context, startMonth, endMonth string, employeeID *string) ([]salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + salarySlipColumns + `
		FROM salary_slips s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.month >= $1 AND s.month <= $2
	`
	args := []interface{}{startMonth, endMonth}
	if employeeID != nil {
		query += ` AND s.employee_id = $3`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY s.month ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips by month range: %w", err)
	}
	defer rows.Close()

	return scanSalarySlips(rows)
}

func scanSalarySlip(row pgx.Row) (salaryslip.SalarySlip, error) {
	var slip salaryslip.SalarySlip
	err := row.Scan(
		&slip.ID, &slip.EmployeeID, &slip.Month, &slip.Amount, &slip.HoursWorked, &slip.CreatedAt,
		&slip.EmployeeCode, &slip.EmployeeName, &slip.EmployeeEmail, &slip.EmployeePosition,
	)
	return slip, err
}

func scanSalarySlips(rows pgx.Rows) ([]salaryslip.SalarySlip, error) {
	var slips []salaryslip.SalarySlip
	for rows.Next() {
		slip, err := scanSalarySlip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary slip: %w", err)
		}
		slips = append(slips, slip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary slips: %w", err)
	}
	return slips, nil
}
