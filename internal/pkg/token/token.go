package token

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Claims carried by an access token for one employee.
type Claims struct {
	EmployeeID string
	Email      string
	Role       string
	Department string
}

type Service interface {
	GenerateAccessToken(c Claims) (token string, expiresAt int64, err error)
	GenerateStreamToken(employeeID string) (token string, expiresIn int, err error)
	ValidateStreamToken(tokenString string) (employeeID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type service struct {
	secretKey            string
	accessExpirationTime string
	tokenAuth            *jwtauth.JWTAuth
}

func NewService(secretKey string, accessExpirationTime string) Service {
	return &service{
		secretKey:            secretKey,
		accessExpirationTime: accessExpirationTime,
		tokenAuth:            jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (s *service) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *service) GenerateAccessToken(c Claims) (string, int64, error) {
	expDuration, err := time.ParseDuration(s.accessExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := s.tokenAuth.Encode(map[string]interface{}{
		"employee_id": c.EmployeeID,
		"email":       c.Email,
		"role":        c.Role,
		"department":  c.Department,
		"type":        "access",
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}

// GenerateStreamToken issues a short-lived token for SSE connections, which
// cannot carry an Authorization header from EventSource clients.
func (s *service) GenerateStreamToken(employeeID string) (string, int, error) {
	expiresIn := 300
	expiresAt := time.Now().Add(5 * time.Minute).Unix()

	_, tokenString, err := s.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "stream",
		"exp":         expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

func (s *service) ValidateStreamToken(tokenString string) (string, error) {
	tok, err := s.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := tok.Get("type")
	if !ok || tokenType != "stream" {
		return "", jwt.ErrInvalidJWT()
	}

	idVal, ok := tok.Get("employee_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	employeeID, ok := idVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return employeeID, nil
}
