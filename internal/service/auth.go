package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront-api/internal/apperror"
	"storefront-api/internal/checkout"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

const bcryptCost = 10

// Claims is the signed claim set carried by the session token.
type Claims struct {
	ID       string     `json:"id"`
	Email    string     `json:"email"`
	FullName string     `json:"fullName"`
	Role     model.Role `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, fullName, email, password string) (string, *model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	VerifyToken(tokenString string) (*Claims, error)
	EnsureAdmin(ctx context.Context, fullName, email, password string) error
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	secret   []byte
	expiry   time.Duration
}

func NewAuthService(userRepo repository.UserRepository, secret string, expiry time.Duration) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		secret:   []byte(secret),
		expiry:   expiry,
	}
}

func validateRegistration(fullName, email, password string) error {
	errs := map[string]string{}
	if len(strings.TrimSpace(fullName)) < 2 {
		errs["fullName"] = "full name must be at least 2 characters"
	}
	if !checkout.ValidEmail(email) {
		errs["email"] = "invalid email format"
	}
	if len(password) < 6 {
		errs["password"] = "password must be at least 6 characters"
	}
	return apperror.FieldErrors(errs)
}

func (s *authServiceImpl) Register(ctx context.Context, fullName, email, password string) (string, *model.User, error) {
	if err := validateRegistration(fullName, email, password); err != nil {
		return "", nil, err
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return "", nil, apperror.ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           "user-" + uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleCustomer,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("store user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperror.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperror.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authServiceImpl) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

func (s *authServiceImpl) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.ErrTokenExpired
		}
		return nil, apperror.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperror.ErrInvalidToken
	}

	return claims, nil
}

// EnsureAdmin seeds the configured admin account if it does not exist yet.
func (s *authServiceImpl) EnsureAdmin(ctx context.Context, fullName, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return s.userRepo.Create(ctx, &model.User{
		ID:           "user-" + uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	})
}
