package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fintradify/attendance-backend-go/internal/domain/attendance"
	"github.com/fintradify/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const uniqueViolationCode = "23505"

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	newAttendance.ID = uuid.NewString()

	query := `
		INSERT INTO attendances (id, employee_id, date, punch_in, punch_out)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.PunchIn,
		newAttendance.PunchOut,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			// The (employee_id, date) unique index caught a concurrent punch-in.
			return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.punch_in, a.punch_out, a.created_at, a.updated_at,
			   e.employee_code, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.PunchIn, &att.PunchOut, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeCode, &att.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// SetPunchOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetPunchOut(ctx context.Context, id string, punchOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET punch_out = $2, updated_at = NOW()
		WHERE id = $1 AND punch_out IS NULL
		RETURNING id, employee_id, date, punch_in, punch_out, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id, punchOut).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.PunchIn, &att.PunchOut, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the record is gone or a concurrent punch-out already
			// closed it; look it up to tell the cases apart.
			var exists bool
			checkErr := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM attendances WHERE id = $1)`, id).Scan(&exists)
			if checkErr != nil {
				return attendance.Attendance{}, fmt.Errorf("failed to check attendance existence: %w", checkErr)
			}
			if exists {
				return attendance.Attendance{}, attendance.ErrAlreadyPunchedOut
			}
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set punch out: %w", err)
	}

	return att, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, start, end *time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.punch_in, a.punch_out, a.created_at, a.updated_at,
			   e.employee_code, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
	`
	args := []interface{}{employeeID}
	if start != nil && end != nil {
		query += ` AND a.date >= $2 AND a.date <= $3`
		args = append(args, *start, *end)
	}
	query += ` ORDER BY a.date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by employee: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, start, end *time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.punch_in, a.punch_out, a.created_at, a.updated_at,
			   e.employee_code, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
	`
	var args []interface{}
	if start != nil && end != nil {
		query += ` WHERE a.date >= $1 AND a.date <= $2`
		args = append(args, *start, *end)
	}
	query += ` ORDER BY a.date DESC, e.name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// ListOpenBefore implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.punch_in, a.punch_out, a.created_at, a.updated_at,
			   e.employee_code, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.punch_out IS NULL AND a.punch_in < $1
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list open attendances: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

func scanAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.PunchIn, &att.PunchOut, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeCode, &att.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}
	return attendances, nil
}
