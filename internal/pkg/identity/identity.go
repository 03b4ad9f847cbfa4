package identity

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/employee"
)

var ErrNoIdentity = errors.New("no authenticated identity in context")

// Identity is the caller extracted from the verified access token.
type Identity struct {
	EmployeeID string
	Email      string
	Role       employee.Role
	Department string
}

// FromContext reads the caller identity from the request's JWT claims.
func FromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, err
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Identity{}, ErrNoIdentity
	}

	id := Identity{EmployeeID: employeeID}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		id.Role = employee.Role(role)
	}
	if department, ok := claims["department"].(string); ok {
		id.Department = department
	}

	return id, nil
}
