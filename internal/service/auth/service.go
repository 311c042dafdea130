package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fintradify/attendance-backend-go/internal/domain/auth"
	"github.com/fintradify/attendance-backend-go/internal/domain/employee"
	"github.com/fintradify/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if emp.PasswordHash == "" {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, _, err := a.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		EmployeeID:   emp.ID,
		Name:         emp.Name,
		Role:         string(emp.Role),
	}, nil
}
