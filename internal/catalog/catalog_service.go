package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	catalogerrors "go-laundry/internal/catalog/errors"
	"go-laundry/internal/role"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	activeServicesCacheKey = "services:active"
	activeServicesCacheTTL = 30 * time.Minute
)

type Service interface {
	Create(ctx context.Context, actor role.Actor, req CreateServiceRequest) (ServiceResponse, error)
	Update(ctx context.Context, actor role.Actor, id string, req UpdateServiceRequest) (ServiceResponse, error)
	Delete(ctx context.Context, actor role.Actor, id string) error
	GetByID(ctx context.Context, id string) (ServiceResponse, error)
	ListActive(ctx context.Context) ([]ServiceResponse, error)
	ListAll(ctx context.Context, actor role.Actor) ([]ServiceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, actor role.Actor, req CreateServiceRequest) (ServiceResponse, error) {
	if !actor.IsStaff() {
		return ServiceResponse{}, catalogerrors.ErrStaffOnly
	}
	if req.Price.IsNegative() {
		return ServiceResponse{}, catalogerrors.ErrNegativePrice
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create service begin tx failed", zap.Error(err))
		return ServiceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entry := &LaundryService{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
		Duration:    req.Duration,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := qtx.Create(ctx, entry); err != nil {
		s.logger.Error("create service persist failed", zap.Error(err))
		return ServiceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create service commit failed", zap.Error(err))
		return ServiceResponse{}, err
	}

	s.invalidateActiveCache(ctx)
	s.logger.Info("service created",
		zap.String("service_id", entry.ID.String()),
		zap.String("name", entry.Name),
	)

	return mapToResponse(*entry), nil
}

func (s *service) Update(ctx context.Context, actor role.Actor, id string, req UpdateServiceRequest) (ServiceResponse, error) {
	if !actor.IsStaff() {
		return ServiceResponse{}, catalogerrors.ErrStaffOnly
	}
	if _, err := uuid.Parse(id); err != nil {
		return ServiceResponse{}, catalogerrors.ErrInvalidServiceID
	}
	if req.Price.IsNegative() {
		return ServiceResponse{}, catalogerrors.ErrNegativePrice
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update service begin tx failed", zap.Error(err))
		return ServiceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entry, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ServiceResponse{}, catalogerrors.ErrServiceNotFound
		}
		return ServiceResponse{}, err
	}

	// Full-field overwrite, no partial merge.
	entry.Name = req.Name
	entry.Description = req.Description
	entry.Price = req.Price
	entry.Unit = req.Unit
	entry.Duration = req.Duration
	entry.ImageURL = req.ImageURL
	entry.IsActive = req.IsActive

	if err := qtx.Update(ctx, entry); err != nil {
		s.logger.Error("update service persist failed",
			zap.String("service_id", id),
			zap.Error(err),
		)
		return ServiceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update service commit failed", zap.Error(err))
		return ServiceResponse{}, err
	}

	s.invalidateActiveCache(ctx)
	s.logger.Info("service updated", zap.String("service_id", id))

	return mapToResponse(*entry), nil
}

func (s *service) Delete(ctx context.Context, actor role.Actor, id string) error {
	if !actor.IsStaff() {
		return catalogerrors.ErrStaffOnly
	}
	if _, err := uuid.Parse(id); err != nil {
		return catalogerrors.ErrInvalidServiceID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalogerrors.ErrServiceNotFound
		}
		return err
	}

	// Deleting a service still referenced by orders would leave dangling
	// rows, so it is refused instead.
	refs, err := qtx.CountReferencingOrders(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return catalogerrors.ErrServiceInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete service failed",
			zap.String("service_id", id),
			zap.Error(err),
		)
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateActiveCache(ctx)
	s.logger.Info("service deleted", zap.String("service_id", id))
	return nil
}

func (s *service) GetByID(ctx context.Context, id string) (ServiceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ServiceResponse{}, catalogerrors.ErrInvalidServiceID
	}

	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ServiceResponse{}, catalogerrors.ErrServiceNotFound
		}
		return ServiceResponse{}, err
	}
	return mapToResponse(*entry), nil
}

func (s *service) ListActive(ctx context.Context) ([]ServiceResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, activeServicesCacheKey).Result()
		if err == nil {
			var resp []ServiceResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(activeServicesCacheKey, func() (interface{}, error) {
		services, err := s.repo.FindAllActive(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(services)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, activeServicesCacheKey, jsonData, activeServicesCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]ServiceResponse), nil
}

func (s *service) ListAll(ctx context.Context, actor role.Actor) ([]ServiceResponse, error) {
	if !actor.IsStaff() {
		return nil, catalogerrors.ErrStaffOnly
	}

	services, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(services), nil
}

func (s *service) invalidateActiveCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, activeServicesCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate active services cache", zap.Error(err))
	}
}

// ToResponse converts a stored service into its API shape. Exported so
// other read models (reporting) can reuse the same representation.
func ToResponse(s LaundryService) ServiceResponse {
	return mapToResponse(s)
}

func mapToResponse(s LaundryService) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Unit:        s.Unit,
		Duration:    s.Duration,
		ImageURL:    s.ImageURL,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapToListResponse(services []LaundryService) []ServiceResponse {
	resp := make([]ServiceResponse, len(services))
	for i, s := range services {
		resp[i] = mapToResponse(s)
	}
	return resp
}
