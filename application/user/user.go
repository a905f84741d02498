package user

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/buyer-leads/cmd/config"
	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
	redisrepo "github.com/muhammadheryan/buyer-leads/repository/redis"
	userrepo "github.com/muhammadheryan/buyer-leads/repository/user"
	"github.com/muhammadheryan/buyer-leads/utils/errors"
	"github.com/muhammadheryan/buyer-leads/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenID string) error
	ValidateToken(ctx context.Context, tokenString string) (*model.Actor, string, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

// claims extends the registered claims with the user's role.
type claims struct {
	Role constant.Role `json:"role"`
	jwt.RegisteredClaims
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	token, jti, err := s.generateJWT(user)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	actor := model.Actor{ID: user.ID, Role: user.Role}
	err = s.redisRepo.SetSession(ctx, jti, actor, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, tokenID string) error {
	if err := s.redisRepo.DeleteSession(ctx, tokenID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// ValidateToken returns the actor bound to a live session and the token id.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Actor, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, "", fmt.Errorf("invalid token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, "", fmt.Errorf("invalid claims")
	}

	// Extract JTI (Token ID)
	jti := c.ID
	if jti == "" {
		return nil, "", fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	session, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return nil, "", fmt.Errorf("session lookup: %w", err)
	}
	if session == nil {
		return nil, "", fmt.Errorf("invalid or expired session")
	}

	if session.ID != c.Subject {
		return nil, "", fmt.Errorf("token does not match user session")
	}

	return session, jti, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(user *model.UserEntity) (string, string, error) {
	now := time.Now()
	c := claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, c.ID, nil
}
