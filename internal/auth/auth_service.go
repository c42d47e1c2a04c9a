package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "go-laundry/internal/auth/errors"
	"go-laundry/internal/role"
	"go-laundry/internal/user"
	usererrors "go-laundry/internal/user/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL          = 15 * time.Minute
	refreshTokenTTL         = 7 * 24 * time.Hour
	refreshTokenRememberTTL = 30 * 24 * time.Hour

	landingPathStaff    = "/admin/dashboard"
	landingPathCustomer = "/services"

	minPasswordLength = 6
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, username, password string, remember bool) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	users  user.Repository
	roles  role.Repository
	logger *zap.Logger
}

func NewService(users user.Repository, roles role.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, roles: roles, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return AuthResponse{}, autherrors.ErrPasswordMismatch
	}
	if len(req.Password) < minPasswordLength {
		return AuthResponse{}, autherrors.ErrPasswordTooShort
	}

	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return AuthResponse{}, usererrors.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthResponse{}, err
	}
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return AuthResponse{}, usererrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return AuthResponse{}, err
	}

	customerRole, err := s.roles.FindByName(ctx, role.Customer)
	if err != nil {
		s.logger.Error("customer role missing, seed not run?", zap.Error(err))
		return AuthResponse{}, err
	}

	u := &user.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
		RoleID:   customerRole.ID,
		Role:     customerRole,
	}

	if err := s.users.Create(ctx, u); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return AuthResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("user registered", zap.String("username", u.Username))
	return mapToResponse(u), nil
}

func (s *service) Login(ctx context.Context, username, password string, remember bool) (string, string, AuthResponse, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	refreshTTL := refreshTokenTTL
	if remember {
		refreshTTL = refreshTokenRememberTTL
	}

	accessToken, err := s.generateToken(u, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(u, refreshTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("username", u.Username),
		zap.Bool("remember", remember),
	)

	return accessToken, refreshToken, mapToResponse(u), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	if _, err := uuid.Parse(userIDStr); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	u, err := s.users.FindByID(ctx, userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	newAccessToken, err := s.generateToken(u, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	newRefreshToken, err := s.generateToken(u, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, mapToResponse(u), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToResponse(u)
	return &resp, nil
}

// reusable token generator
func (s *service) generateToken(u *user.User, expiry time.Duration) (string, error) {
	roleName := string(role.Customer)
	if u.IsStaff() {
		roleName = string(role.Staff)
	}

	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"role":    roleName,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToResponse(u *user.User) AuthResponse {
	resp := AuthResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        string(role.Customer),
		LandingPath: landingPathCustomer,
	}
	if u.IsStaff() {
		resp.Role = string(role.Staff)
		resp.LandingPath = landingPathStaff
	}
	return resp
}
