package identity

import (
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Provider is the identity boundary. Bulk onboarding registers credentials
// through it; login exchanges them for a signed token.
type Provider interface {
	Register(email, password string) error
	Authenticate(email, password string) (string, error)
	Validate(tokenString string) (*Claims, error)
}

// Claims are the JWT claims issued on login
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// LocalProvider stores bcrypt credentials in Postgres and issues HS256 tokens
type LocalProvider struct {
	db        *gorm.DB
	jwtSecret string
	tokenTTL  time.Duration
}

// NewLocalProvider creates a LocalProvider
func NewLocalProvider(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *LocalProvider {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &LocalProvider{db: db, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a credential for the email. Registration is
// admin-initiated, so the email is marked confirmed immediately.
// A duplicate email is rejected with ErrEmailRegistered.
func (p *LocalProvider) Register(email, password string) error {
	var count int64
	if err := p.db.Model(&models.IdentityCredential{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("check existing credential: %w", err)
	}
	if count > 0 {
		return apperrors.ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	cred := models.IdentityCredential{
		Email:          email,
		PasswordHash:   string(hash),
		EmailConfirmed: true,
	}
	if err := p.db.Create(&cred).Error; err != nil {
		return fmt.Errorf("create credential: %w", err)
	}
	return nil
}

// Authenticate verifies the password and returns a signed JWT
func (p *LocalProvider) Authenticate(email, password string) (string, error) {
	var cred models.IdentityCredential
	if err := p.db.Where("email = ?", email).First(&cred).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("load credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return p.generateToken(cred.ID, cred.Email)
}

func (p *LocalProvider) generateToken(id uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "hackathon-portal-backend",
			Subject:   id.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(p.jwtSecret))
}

// Validate validates and parses a JWT token
func (p *LocalProvider) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
