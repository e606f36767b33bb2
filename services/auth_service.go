package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/upmon-simple/dto"
	"github.com/upmon-simple/models"
	"github.com/upmon-simple/repositories"
	"golang.org/x/crypto/bcrypt"
)

var userRepo = repositories.NewUserRepository()

// Register creates a new user account
func Register(req dto.RegisterRequest) (*models.User, error) {
	// Check if email already exists
	taken, err := userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		IsActive: true,
	}

	created, err := userRepo.Create(user)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Login authenticates a user and returns a bearer token
func Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	// An unknown email and a wrong password report the same error
	user, err := userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// GetUser retrieves a user by ID
func GetUser(id uint) (*models.User, error) {
	user, err := userRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID uint, email string) (string, error) {
	// Get secret key from environment
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", errors.New("JWT_SECRET not set in environment")
	}

	// Token expires in 24 hours
	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken validates a JWT token and returns its claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
