package user

import (
	"context"
	"errors"
	"testing"

	"go-laundry/internal/role"
	usererrors "go-laundry/internal/user/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	findAllByRoleFn func(ctx context.Context, name role.Name) ([]User, error)
}

func (f *fakeRepo) Create(ctx context.Context, u *User) error { return nil }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*User, error) {
	return nil, nil
}
func (f *fakeRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	return nil, nil
}
func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return nil, nil
}
func (f *fakeRepo) FindAllByRole(ctx context.Context, name role.Name) ([]User, error) {
	return f.findAllByRoleFn(ctx, name)
}
func (f *fakeRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func TestUserService_ListCustomers(t *testing.T) {
	repo := &fakeRepo{
		findAllByRoleFn: func(ctx context.Context, name role.Name) ([]User, error) {
			assert.Equal(t, role.Customer, name)
			return []User{
				{ID: uuid.New(), Username: "umi", FullName: "Umi Santoso"},
				{ID: uuid.New(), Username: "budi", FullName: "Budi Santoso"},
			}, nil
		},
	}

	svc := NewService(repo)
	staff := role.Actor{ID: uuid.New(), Role: role.Staff}

	resp, err := svc.ListCustomers(context.Background(), staff)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "umi", resp[0].Username)
}

func TestUserService_ListCustomers_CustomerForbidden(t *testing.T) {
	svc := NewService(&fakeRepo{})
	customer := role.Actor{ID: uuid.New(), Role: role.Customer}

	_, err := svc.ListCustomers(context.Background(), customer)
	assert.ErrorIs(t, err, usererrors.ErrStaffOnly)
}

func TestUserService_ListCustomers_RepoError(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &fakeRepo{
		findAllByRoleFn: func(ctx context.Context, name role.Name) ([]User, error) {
			return nil, repoErr
		},
	}

	svc := NewService(repo)
	staff := role.Actor{ID: uuid.New(), Role: role.Staff}

	_, err := svc.ListCustomers(context.Background(), staff)
	assert.ErrorIs(t, err, repoErr)
}
