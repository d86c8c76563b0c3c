package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "tumaini-tours"

// InterfaceJWTService mints and verifies admin session tokens.
type InterfaceJWTService interface {
	GenerateToken(admin *models.Admin) (string, time.Time, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
	Authorize(ctx context.Context, tokenString string) (*models.AdminIdentity, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// LoginResult is a freshly minted session.
type LoginResult struct {
	Token     string                `json:"-"`
	ExpiresAt time.Time             `json:"expiresAt"`
	Admin     *models.AdminIdentity `json:"admin"`
}

// JWTClaims are the claims carried by a session token.
type JWTClaims struct {
	AdminID uint   `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService signs HS256 tokens with the configured secret.
type JWTService struct {
	secretKey []byte
	issuer    string
	expiry    time.Duration
	admins    InterfaceAdminService
	now       func() time.Time
}

// NewJWTService creates a JWT service backed by the admin store.
func NewJWTService(cfg *config.Config, admins InterfaceAdminService) InterfaceJWTService {
	expiry := cfg.JWTExpiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &JWTService{
		secretKey: []byte(cfg.JWTSecretKey),
		issuer:    tokenIssuer,
		expiry:    expiry,
		admins:    admins,
		now:       time.Now,
	}
}

// 1. GenerateToken mints a token for the admin.
func (s *JWTService) GenerateToken(admin *models.Admin) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.expiry)

	claims := &JWTClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", admin.ID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// 2. ValidateToken checks signature, algorithm, issuer and time claims.
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	if tokenString == "" {
		return nil, errors.New("empty token")
	}

	claims := &JWTClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if claims.AdminID == 0 {
		return nil, errors.New("token has no admin id")
	}
	return claims, nil
}

// 3. Authorize resolves a token to the admin it was issued to. Every failure,
// including an admin deleted after the token was minted, is ErrUnauthorized.
func (s *JWTService) Authorize(ctx context.Context, tokenString string) (*models.AdminIdentity, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		Logger.Warning("rejected session token: %v", err)
		return nil, ErrUnauthorized
	}

	admin, err := s.admins.GetAdminByID(ctx, claims.AdminID)
	if err != nil {
		Logger.Warning("session token for admin %d: %v", claims.AdminID, err)
		return nil, ErrUnauthorized
	}
	return admin.Identity(), nil
}

// 4. Login checks the credentials and mints a session. Unknown email and wrong
// password take the same path and return the same error.
func (s *JWTService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrAdminNotFound) {
			Logger.Error("login lookup for %q: %v", email, err)
		}
		s.admins.CheckPassword(password, dummyHash())
		return nil, ErrUnauthorized
	}

	if !s.admins.CheckPassword(password, admin.Password) {
		return nil, ErrUnauthorized
	}

	token, expiresAt, err := s.GenerateToken(admin)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     admin.Identity(),
	}, nil
}

var (
	dummyHashOnce  sync.Once
	dummyHashValue string
)

// dummyHash keeps the unknown-email path as slow as a real password check.
func dummyHash() string {
	dummyHashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("tumaini-placeholder"), bcrypt.DefaultCost)
		if err == nil {
			dummyHashValue = string(h)
		}
	})
	return dummyHashValue
}
