package auth

//go:generate mockgen -destination=mocks/mock_jwt.go -package=mocks compliance-cms/pkg/auth TokenManager

// TokenManager defines the interface for access token operations.
type TokenManager interface {
	// GenerateToken signs an access token for the given user.
	GenerateToken(userID, email string) (string, error)
	// ValidateToken parses and validates a token, returning its claims.
	ValidateToken(tokenString string) (*Claims, error)
}

var _ TokenManager = (*JWTManager)(nil)
