package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/aishwaryaDel/aihub-bolt/internal/apperr"
	"github.com/aishwaryaDel/aihub-bolt/internal/models"
	"github.com/aishwaryaDel/aihub-bolt/internal/repo"
	"github.com/aishwaryaDel/aihub-bolt/internal/validation"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgTokenInvalid       = "Invalid or expired token"
	msgEmailTaken         = "User with this email already exists"
	msgUserNotFound       = "User not found"
	msgDatabase           = "Database operation failed"

	bcryptCost = 10
)

// Claims is the identity payload embedded in a session token.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResult is what a successful login returns to the client.
type LoginResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Service issues and verifies session tokens and owns everything that touches
// a plaintext password. Tokens are stateless: signature and expiry are the
// only invalidation mechanism, nothing is revoked server-side.
type Service struct {
	users  *repo.UserStore
	secret []byte
	ttl    time.Duration
}

func NewService(users *repo.UserStore, secret string, ttl time.Duration) *Service {
	return &Service{users: users, secret: []byte(secret), ttl: ttl}
}

// Login verifies the credentials and issues a signed token. A wrong password
// and an unknown email produce the same message on purpose.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := validation.ValidateLogin(email, password); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	if u == nil {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}
	token, err := s.issueToken(u)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: u.Sanitized()}, nil
}

// Register creates an account through the self-service path, which requires
// a longer password than admin-driven creation. An empty role defaults to
// viewer.
func (s *Service) Register(ctx context.Context, in *models.CreateUserInput) (*models.PublicUser, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, apperr.BadRequest("email, password, and name are required")
	}
	if !validation.IsValidEmail(in.Email) {
		return nil, apperr.BadRequest("email has invalid format")
	}
	if len(in.Password) < 8 {
		return nil, apperr.BadRequest("Password must be at least 8 characters long")
	}
	role := in.Role
	if role == "" {
		role = models.RoleViewer
	}
	if !models.IsValidRole(role) {
		return nil, apperr.BadRequest("role must be one of: admin, viewer")
	}
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	if existing != nil {
		return nil, apperr.Conflict(msgEmailTaken)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	u := &models.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, apperr.Database(msgDatabase, err)
	}
	pu := u.Sanitized()
	return &pu, nil
}

// VerifyToken checks signature and expiry and returns the embedded identity.
func (s *Service) VerifyToken(token string) (*models.AuthenticatedUser, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperr.Unauthorized(msgTokenInvalid)
	}
	return &models.AuthenticatedUser{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// ChangePassword rotates the password given the correct old one.
func (s *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return apperr.Database(msgDatabase, err)
	}
	if u == nil {
		return apperr.NotFound(msgUserNotFound)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)) != nil {
		return apperr.Unauthorized("Old password is incorrect")
	}
	if len(newPassword) < 8 {
		return apperr.BadRequest("Password must be at least 8 characters long")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return apperr.Database(msgDatabase, err)
	}
	if _, err := s.users.Update(ctx, userID, map[string]any{"password_hash": string(hash)}); err != nil {
		return apperr.Database(msgDatabase, err)
	}
	return nil
}

func (s *Service) issueToken(u *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperr.Database("Failed to issue token", err)
	}
	return signed, nil
}
