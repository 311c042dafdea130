package employee

import "time"

type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Position     *string
	Role         Role
	CreatedAt    time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)
