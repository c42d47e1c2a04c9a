package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"go-laundry/internal/catalog"
	dashboarderrors "go-laundry/internal/dashboard/errors"
	"go-laundry/internal/order"
	"go-laundry/internal/role"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	statsCacheKey = "dashboard:stats"
	// Stats aggregate the whole orders table, so they are cached briefly
	// rather than recomputed per page load.
	statsCacheTTL = 60 * time.Second

	recentServicesLimit = 5
)

type Service interface {
	Stats(ctx context.Context, actor role.Actor) (StatsResponse, error)
}

type service struct {
	repo     Repository
	services catalog.Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(repo Repository, services catalog.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, services: services, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Stats(ctx context.Context, actor role.Actor) (StatsResponse, error) {
	if !actor.IsStaff() {
		return StatsResponse{}, dashboarderrors.ErrStaffOnly
	}

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var resp StatsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(statsCacheKey, func() (interface{}, error) {
		resp, err := s.collect(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, statsCacheKey, jsonData, statsCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		s.logger.Error("collect dashboard stats failed", zap.Error(err))
		return StatsResponse{}, err
	}

	return v.(StatsResponse), nil
}

func (s *service) collect(ctx context.Context) (StatsResponse, error) {
	var resp StatsResponse
	var err error

	if resp.TotalServices, err = s.repo.CountServices(ctx); err != nil {
		return StatsResponse{}, err
	}
	if resp.ActiveServices, err = s.repo.CountActiveServices(ctx); err != nil {
		return StatsResponse{}, err
	}
	if resp.TotalUsers, err = s.repo.CountUsers(ctx); err != nil {
		return StatsResponse{}, err
	}
	if resp.TotalOrders, err = s.repo.CountOrders(ctx); err != nil {
		return StatsResponse{}, err
	}
	if resp.TotalRevenue, err = s.repo.SumOrderRevenue(ctx); err != nil {
		return StatsResponse{}, err
	}

	if resp.PendingOrders, err = s.repo.CountOrders(ctx, order.StatusPending); err != nil {
		return StatsResponse{}, err
	}
	if resp.PendingRevenue, err = s.repo.SumOrderRevenue(ctx, order.StatusPending); err != nil {
		return StatsResponse{}, err
	}
	if resp.ProcessingOrders, err = s.repo.CountOrders(ctx, order.StatusProcessing); err != nil {
		return StatsResponse{}, err
	}
	if resp.ProcessingRevenue, err = s.repo.SumOrderRevenue(ctx, order.StatusProcessing); err != nil {
		return StatsResponse{}, err
	}

	// "Completed" groups orders past the processing stage.
	completed := []order.Status{order.StatusReady, order.StatusDelivered}
	if resp.CompletedOrders, err = s.repo.CountOrders(ctx, completed...); err != nil {
		return StatsResponse{}, err
	}
	if resp.CompletedRevenue, err = s.repo.SumOrderRevenue(ctx, completed...); err != nil {
		return StatsResponse{}, err
	}

	recent, err := s.services.FindRecent(ctx, recentServicesLimit)
	if err != nil {
		return StatsResponse{}, err
	}
	resp.RecentServices = make([]catalog.ServiceResponse, len(recent))
	for i, svc := range recent {
		resp.RecentServices[i] = catalog.ToResponse(svc)
	}

	return resp, nil
}
