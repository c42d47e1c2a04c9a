package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	catalogerrors "go-laundry/internal/catalog/errors"
	"go-laundry/internal/role"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn                 func(ctx context.Context, s *LaundryService) error
	findByIDFn               func(ctx context.Context, id string) (*LaundryService, error)
	findAllFn                func(ctx context.Context) ([]LaundryService, error)
	findAllActiveFn          func(ctx context.Context) ([]LaundryService, error)
	findRecentFn             func(ctx context.Context, limit int) ([]LaundryService, error)
	updateFn                 func(ctx context.Context, s *LaundryService) error
	deleteFn                 func(ctx context.Context, id string) error
	countReferencingOrdersFn func(ctx context.Context, serviceID string) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, s *LaundryService) error { return f.createFn(ctx, s) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*LaundryService, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]LaundryService, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindAllActive(ctx context.Context) ([]LaundryService, error) {
	return f.findAllActiveFn(ctx)
}
func (f *fakeRepo) FindRecent(ctx context.Context, limit int) ([]LaundryService, error) {
	return f.findRecentFn(ctx, limit)
}
func (f *fakeRepo) Update(ctx context.Context, s *LaundryService) error { return f.updateFn(ctx, s) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error         { return f.deleteFn(ctx, id) }
func (f *fakeRepo) CountReferencingOrders(ctx context.Context, serviceID string) (int64, error) {
	return f.countReferencingOrdersFn(ctx, serviceID)
}

func staffActor() role.Actor    { return role.Actor{ID: uuid.New(), Role: role.Staff} }
func customerActor() role.Actor { return role.Actor{ID: uuid.New(), Role: role.Customer} }

func validCreateServiceRequest() CreateServiceRequest {
	return CreateServiceRequest{
		Name:        "Cuci Kering Reguler",
		Description: "Layanan cuci dan kering standar",
		Price:       decimal.NewFromInt(5000),
		Unit:        "per kg",
		Duration:    "2-3 hari",
	}
}

func TestCatalogService_Create(t *testing.T) {
	t.Run("staff creates service and cache is invalidated", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		rdb, redisMock := redismock.NewClientMock()

		var saved LaundryService
		repo := &fakeRepo{
			createFn: func(ctx context.Context, s *LaundryService) error { saved = *s; return nil },
		}
		svc := NewService(db, repo, rdb)

		mock.ExpectBegin()
		mock.ExpectCommit()
		redisMock.ExpectDel(activeServicesCacheKey).SetVal(1)

		resp, err := svc.Create(context.Background(), staffActor(), validCreateServiceRequest())

		assert.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.True(t, saved.IsActive)
		assert.Equal(t, "5000", resp.Price.String())
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("customer forbidden", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		svc := NewService(db, &fakeRepo{}, nil)
		_, err := svc.Create(context.Background(), customerActor(), validCreateServiceRequest())
		assert.ErrorIs(t, err, catalogerrors.ErrStaffOnly)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		req := validCreateServiceRequest()
		req.Price = decimal.NewFromInt(-100)

		svc := NewService(db, &fakeRepo{}, nil)
		_, err := svc.Create(context.Background(), staffActor(), req)
		assert.ErrorIs(t, err, catalogerrors.ErrNegativePrice)
	})
}

func TestCatalogService_Update(t *testing.T) {
	t.Run("full overwrite including deactivation", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		id := uuid.New()
		existing := &LaundryService{
			ID:       id,
			Name:     "Cuci Kering Reguler",
			Price:    decimal.NewFromInt(5000),
			IsActive: true,
		}
		var saved LaundryService
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, sid string) (*LaundryService, error) { return existing, nil },
			updateFn:   func(ctx context.Context, s *LaundryService) error { saved = *s; return nil },
		}
		svc := NewService(db, repo, nil)

		req := UpdateServiceRequest{
			Name:        "Cuci Kering Express",
			Description: "Layanan kilat",
			Price:       decimal.NewFromInt(8000),
			Unit:        "per kg",
			IsActive:    false,
		}

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Update(context.Background(), staffActor(), id.String(), req)

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.False(t, saved.IsActive)
		assert.Equal(t, "Cuci Kering Express", saved.Name)
		assert.Equal(t, "8000", saved.Price.String())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*LaundryService, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := NewService(db, repo, nil)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Update(context.Background(), staffActor(), uuid.New().String(), UpdateServiceRequest{Name: "x", Description: "y", Unit: "per kg"})
		assert.ErrorIs(t, err, catalogerrors.ErrServiceNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		svc := NewService(db, &fakeRepo{}, nil)
		_, err := svc.Update(context.Background(), staffActor(), "nope", UpdateServiceRequest{})
		assert.ErrorIs(t, err, catalogerrors.ErrInvalidServiceID)
	})
}

func TestCatalogService_Delete(t *testing.T) {
	id := uuid.New()
	existing := &LaundryService{ID: id, Name: "Cuci Sepatu", Price: decimal.NewFromInt(25000)}

	t.Run("refused while orders reference it", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeRepo{
			findByIDFn:               func(ctx context.Context, sid string) (*LaundryService, error) { return existing, nil },
			countReferencingOrdersFn: func(ctx context.Context, sid string) (int64, error) { return 3, nil },
		}
		svc := NewService(db, repo, nil)

		mock.ExpectBegin()
		mock.ExpectRollback()
		err := svc.Delete(context.Background(), staffActor(), id.String())
		assert.ErrorIs(t, err, catalogerrors.ErrServiceInUse)
	})

	t.Run("unreferenced service is deleted", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		rdb, redisMock := redismock.NewClientMock()

		deleted := ""
		repo := &fakeRepo{
			findByIDFn:               func(ctx context.Context, sid string) (*LaundryService, error) { return existing, nil },
			countReferencingOrdersFn: func(ctx context.Context, sid string) (int64, error) { return 0, nil },
			deleteFn:                 func(ctx context.Context, sid string) error { deleted = sid; return nil },
		}
		svc := NewService(db, repo, rdb)

		mock.ExpectBegin()
		mock.ExpectCommit()
		redisMock.ExpectDel(activeServicesCacheKey).SetVal(1)

		err := svc.Delete(context.Background(), staffActor(), id.String())
		assert.NoError(t, err)
		assert.Equal(t, id.String(), deleted)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestCatalogService_ListActive(t *testing.T) {
	active := []LaundryService{
		{ID: uuid.New(), Name: "Cuci Kering Reguler", Price: decimal.NewFromInt(5000), IsActive: true, CreatedAt: time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Name: "Setrika Saja", Price: decimal.NewFromInt(3000), IsActive: true, CreatedAt: time.Date(2026, 1, 9, 8, 0, 0, 0, time.UTC)},
	}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()
		rdb, redisMock := redismock.NewClientMock()

		cached := mapToListResponse(active)
		jsonData, _ := json.Marshal(cached)
		redisMock.ExpectGet(activeServicesCacheKey).SetVal(string(jsonData))

		repo := &fakeRepo{
			findAllActiveFn: func(ctx context.Context) ([]LaundryService, error) {
				t.Fatal("repository should not be hit on cache hit")
				return nil, nil
			},
		}
		svc := NewService(db, repo, rdb)

		resp, err := svc.ListActive(context.Background())
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Cuci Kering Reguler", resp[0].Name)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()
		rdb, redisMock := redismock.NewClientMock()

		expected := mapToListResponse(active)
		jsonData, _ := json.Marshal(expected)

		redisMock.ExpectGet(activeServicesCacheKey).RedisNil()
		redisMock.ExpectSet(activeServicesCacheKey, jsonData, activeServicesCacheTTL).SetVal("OK")

		repo := &fakeRepo{
			findAllActiveFn: func(ctx context.Context) ([]LaundryService, error) { return active, nil },
		}
		svc := NewService(db, repo, rdb)

		resp, err := svc.ListActive(context.Background())
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("works without redis", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeRepo{
			findAllActiveFn: func(ctx context.Context) ([]LaundryService, error) { return active, nil },
		}
		svc := NewService(db, repo, nil)

		resp, err := svc.ListActive(context.Background())
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})
}

func TestCatalogService_ListAll_StaffOnly(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]LaundryService, error) {
			return []LaundryService{{ID: uuid.New(), IsActive: false}}, nil
		},
	}
	svc := NewService(db, repo, nil)

	resp, err := svc.ListAll(context.Background(), staffActor())
	assert.NoError(t, err)
	assert.Len(t, resp, 1)

	_, err = svc.ListAll(context.Background(), customerActor())
	assert.ErrorIs(t, err, catalogerrors.ErrStaffOnly)
}

func TestCatalogService_GetByID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, sid string) (*LaundryService, error) {
			return &LaundryService{ID: id, Name: "Dry Clean Jas", Price: decimal.NewFromInt(35000)}, nil
		},
	}
	svc := NewService(db, repo, nil)

	resp, err := svc.GetByID(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, "Dry Clean Jas", resp.Name)

	_, err = svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, catalogerrors.ErrInvalidServiceID)
}
