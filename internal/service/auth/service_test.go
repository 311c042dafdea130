package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintradify/attendance-backend-go/internal/domain/auth"
	"github.com/fintradify/attendance-backend-go/internal/domain/employee"
	"github.com/fintradify/attendance-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeEmployeeRepo struct {
	byEmail map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.byEmail {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	if emp, ok := f.byEmail[email]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func newAuthService(t *testing.T, password string) auth.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{byEmail: map[string]employee.Employee{
		"asha@fintradify.com": {
			ID:           "emp-1",
			EmployeeCode: "EMP001",
			Name:         "Asha Verma",
			Email:        "asha@fintradify.com",
			PasswordHash: string(hash),
			Role:         employee.RoleEmployee,
		},
	}}
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t, "secret-password")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@fintradify.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "employee", resp.Role)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(t, "secret-password")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@fintradify.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAuthService(t, "secret-password")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@fintradify.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InvalidRequest(t *testing.T) {
	svc := newAuthService(t, "secret-password")

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: ""})
	assert.Error(t, err)
}
