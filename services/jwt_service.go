package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
	RoleViewer     = "viewer"

	tokenIssuer = "modeva-restaurant-cms"
)

// AdminJWTClaims represents the JWT claims for admin tokens
type AdminJWTClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// CanWrite reports whether the role may change guest records.
func (c *AdminJWTClaims) CanWrite() bool {
	return c.Role == RoleAdmin || c.Role == RoleSuperAdmin
}

// JWTService handles JWT token generation and verification
type JWTService struct {
	secretKey string
	now       func() time.Time
}

var jwtService *JWTService

// InitJWTService initializes the JWT service with a secret key
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = &JWTService{secretKey: secretKey, now: time.Now}
	return nil
}

// GetJWTService returns the initialized JWT service
func GetJWTService() *JWTService {
	if jwtService == nil {
		secretKey := os.Getenv("JWT_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secretKey: secretKey, now: time.Now}
	}
	return jwtService
}

// GenerateAdminJWT creates a signed token valid for ttl.
func (j *JWTService) GenerateAdminJWT(adminID, email, role string, ttl time.Duration) (string, error) {
	if adminID == "" || email == "" {
		return "", errors.New("adminID and email cannot be empty")
	}
	switch role {
	case RoleAdmin, RoleSuperAdmin, RoleViewer:
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	now := j.now()
	claims := AdminJWTClaims{
		AdminID: adminID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyAdminJWT verifies and parses a JWT token
// Returns claims if valid, error if invalid or expired
func (j *JWTService) VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	claims := &AdminJWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.AdminID == "" || claims.Email == "" || claims.Role == "" {
		return nil, errors.New("token missing required claims")
	}

	return claims, nil
}

// VerifyAdminJWT verifies a JWT token using the global JWT service
func VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	return GetJWTService().VerifyAdminJWT(tokenString)
}
