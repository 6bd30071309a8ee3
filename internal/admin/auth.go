package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const sessionCookie = "admin_session"

var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is compared against when the email is unknown so both
// failure paths cost one bcrypt verification.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// SessionManager issues and verifies the signed session cookie the
// panel authenticates with. The signing secret comes from the
// environment; construction fails without one.
type SessionManager struct {
	secret []byte
	maxAge time.Duration
	users  repositories.UserRepository
}

type sessionClaims struct {
	UserID uint            `json:"uid"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func NewSessionManager(secret string, maxAge time.Duration, users repositories.UserRepository) (*SessionManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("admin session secret is required")
	}
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &SessionManager{
		secret: []byte(secret),
		maxAge: maxAge,
		users:  users,
	}, nil
}

// Login checks the credential and returns a signed session token.
func (sm *SessionManager) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := sm.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Equalize timing between unknown email and bad password.
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := sessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sm.maxAge)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sm.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session: %w", err)
	}
	return token, user, nil
}

// Verify parses and validates a session token.
func (sm *SessionManager) Verify(token string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return sm.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok {
		return nil, fmt.Errorf("invalid session claims")
	}
	return claims, nil
}

// MaxAge is the cookie lifetime in seconds.
func (sm *SessionManager) MaxAge() int {
	return int(sm.maxAge / time.Second)
}

// SetCookie writes the session cookie on the response.
func (sm *SessionManager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, sm.MaxAge(), "/", "", false, true)
}

// ClearCookie expires the session cookie.
func (sm *SessionManager) ClearCookie(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

// RequireAuth rejects requests without a valid session cookie.
func (sm *SessionManager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: "Authentication required",
			})
			return
		}

		claims, err := sm.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: "Session expired or invalid",
			})
			return
		}

		c.Set("admin_user_id", claims.UserID)
		c.Set("admin_email", claims.Email)
		c.Set("admin_role", string(claims.Role))
		c.Next()
	}
}

// HashPassword produces the bcrypt hash stored on User records.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
