package user

import (
	"context"

	"go-laundry/internal/role"
	"go-laundry/internal/shared/contextutil"
	usererrors "go-laundry/internal/user/errors"

	"go.uber.org/zap"
)

type Service interface {
	ListCustomers(ctx context.Context, actor role.Actor) ([]CustomerResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListCustomers(ctx context.Context, actor role.Actor) ([]CustomerResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if !actor.IsStaff() {
		return nil, usererrors.ErrStaffOnly
	}

	users, err := s.repo.FindAllByRole(ctx, role.Customer)
	if err != nil {
		l.Error("list customers failed", zap.Error(err))
		return nil, err
	}

	resp := make([]CustomerResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func mapToResponse(u User) CustomerResponse {
	return CustomerResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
