package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	userrepo "github.com/muhammadheryan/storefront/repository/user"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest, guestCartToken string) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

// CartMerger folds the guest cart into the user's cart once the user is known.
type CartMerger interface {
	MergeGuestCart(ctx context.Context, userID uint64, guestToken string) error
}

type UserAppImpl struct {
	config     *config.Config
	userRepo   userrepo.UserRepository
	redisRepo  redisrepo.Repository
	cartMerger CartMerger
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, cartMerger CartMerger) UserApp {
	return &UserAppImpl{
		config:     config,
		userRepo:   userRepo,
		redisRepo:  redisRepo,
		cartMerger: cartMerger,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	req.Email = normalizeEmail(req.Email)

	// Check if user exists by email or phone
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Register] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Create user entity
	userEntity := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
	}

	// Save to database
	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		Name:  userEntity.Name,
		Email: userEntity.Email,
	}, nil
}

// Login authenticates the user and then merges the guest cart behind guestCartToken into the user's
// cart. A failed merge is logged and does not fail the login.
func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest, guestCartToken string) (*model.LoginResponse, error) {
	// Find user by email or phone
	filter := &model.UserFilter{}
	if strings.ContainsRune(req.Identifier, '@') {
		filter.Email = normalizeEmail(req.Identifier)
	} else {
		filter.Phone = strings.TrimSpace(req.Identifier)
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	// Generate JWT token
	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	merged := false
	if guestCartToken != "" && s.cartMerger != nil {
		if err := s.cartMerger.MergeGuestCart(ctx, user.ID, guestCartToken); err != nil {
			logger.Error("[Login] err MergeGuestCart", zap.Uint64("user_id", user.ID), zap.String("error", err.Error()))
		} else {
			merged = true
		}
	}

	return &model.LoginResponse{
		Name:       user.Name,
		Email:      user.Email,
		Token:      token,
		CartMerged: merged,
	}, nil
}

// Logout drops the session behind the token so it can no longer be used.
func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return 0, err
	}

	// Extract userID from Subject
	userIDStr := claims.Subject
	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	// Check Redis session key
	redisUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return 0, fmt.Errorf("session lookup: %w", err)
	}
	if redisUserID == 0 {
		return 0, fmt.Errorf("session expired or logged out")
	}

	// Compare Redis userID with claims.Subject
	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// normalizeEmail makes lookups case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
