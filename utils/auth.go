// utils/auth.go
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrAuthRequired means the request carries no live identity.
var ErrAuthRequired = errors.New("authentication required")

// TokenCookie is the cookie the session token is also delivered in.
const TokenCookie = "token"

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "userId"
	ContextEmail  = "email"
)

// GenerateJWTSecret returns a random signing key for development runs
// without JWT_SECRET. Tokens signed with it die with the process.
func GenerateJWTSecret() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateRandomString returns n URL-safe random characters.
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("failed to read random bytes")
	}
	return base64.RawURLEncoding.EncodeToString(b)[:n]
}

// HashToken is used for reset tokens, which are stored only as a digest.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer struct {
	Secret []byte
	Expiry time.Duration
}

func NewTokenIssuer(secret string, expiryHours int) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &TokenIssuer{Secret: []byte(secret), Expiry: time.Duration(expiryHours) * time.Hour}, nil
}

// Generate JWT token
func (i *TokenIssuer) GenerateToken(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   now.Add(i.Expiry).Unix(),
		"iat":   now.Unix(),
	})
	return token.SignedString(i.Secret)
}

// ParseToken verifies the signature and expiry and returns the claims.
func (i *TokenIssuer) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrAuthRequired
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrAuthRequired
	}
	if sub, _ := claims["sub"].(string); sub == "" {
		return nil, ErrAuthRequired
	}
	return claims, nil
}

// MaxAgeSeconds is the cookie lifetime matching the token expiry.
func (i *TokenIssuer) MaxAgeSeconds() int {
	return int(i.Expiry / time.Second)
}

// Auth middleware
func AuthMiddleware(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			RespondAuthRequired(c)
			return
		}

		claims, err := issuer.ParseToken(tokenString)
		if err != nil {
			RespondAuthRequired(c)
			return
		}

		c.Set(ContextUserID, claims["sub"])
		c.Set(ContextEmail, claims["email"])
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	tokenString := c.GetHeader("Authorization")
	if len(tokenString) > 7 && strings.EqualFold(tokenString[0:6], "BEARER") {
		return strings.TrimSpace(tokenString[7:])
	}
	if tokenString != "" {
		return tokenString
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

// CurrentUserID returns the identity AuthMiddleware put on the context.
func CurrentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, ErrAuthRequired
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, ErrAuthRequired
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrAuthRequired
	}
	return id, nil
}

// RespondAuthRequired aborts with 401 and points the client at the sign-in page.
func RespondAuthRequired(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"title":    "Authentication required",
		"error":    "You must be logged in to continue.",
		"redirect": "/auth",
	})
}
