package auth

import (
	"context"
	"testing"

	autherrors "go-laundry/internal/auth/errors"
	"go-laundry/internal/role"
	"go-laundry/internal/user"
	usererrors "go-laundry/internal/user/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	createFn         func(ctx context.Context, u *user.User) error
	findByIDFn       func(ctx context.Context, id string) (*user.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*user.User, error)
	findByEmailFn    func(ctx context.Context, email string) (*user.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return f.createFn(ctx, u) }
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return f.findByUsernameFn(ctx, username)
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeUserRepo) FindAllByRole(ctx context.Context, name role.Name) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type fakeRoleRepo struct {
	findByNameFn func(ctx context.Context, name role.Name) (*role.Role, error)
}

func (f *fakeRoleRepo) FindByName(ctx context.Context, name role.Name) (*role.Role, error) {
	return f.findByNameFn(ctx, name)
}
func (f *fakeRoleRepo) Count(ctx context.Context) (int64, error)       { return 0, nil }
func (f *fakeRoleRepo) Create(ctx context.Context, r *role.Role) error { return nil }

func notFoundUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func customerRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		findByNameFn: func(ctx context.Context, name role.Name) (*role.Role, error) {
			return &role.Role{ID: uuid.New(), Name: name}, nil
		},
	}
}

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username:        "umi",
		Email:           "umi@email.com",
		Password:        "umi12345",
		ConfirmPassword: "umi12345",
		FullName:        "Umi Santoso",
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("success assigns customer role and hashes password", func(t *testing.T) {
		users := notFoundUserRepo()
		var saved user.User
		users.createFn = func(ctx context.Context, u *user.User) error { saved = *u; return nil }

		svc := NewService(users, customerRoleRepo())
		resp, err := svc.Register(context.Background(), validRegisterRequest())

		assert.NoError(t, err)
		assert.Equal(t, "umi", resp.Username)
		assert.Equal(t, string(role.Customer), resp.Role)
		assert.Equal(t, landingPathCustomer, resp.LandingPath)
		assert.NotEqual(t, "umi12345", saved.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("umi12345")))
	})

	t.Run("password mismatch", func(t *testing.T) {
		svc := NewService(notFoundUserRepo(), customerRoleRepo())
		req := validRegisterRequest()
		req.ConfirmPassword = "different"
		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, autherrors.ErrPasswordMismatch)
	})

	t.Run("password too short", func(t *testing.T) {
		svc := NewService(notFoundUserRepo(), customerRoleRepo())
		req := validRegisterRequest()
		req.Password = "abc"
		req.ConfirmPassword = "abc"
		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, autherrors.ErrPasswordTooShort)
	})

	t.Run("username taken", func(t *testing.T) {
		users := notFoundUserRepo()
		users.findByUsernameFn = func(ctx context.Context, username string) (*user.User, error) {
			return &user.User{ID: uuid.New(), Username: username}, nil
		}
		svc := NewService(users, customerRoleRepo())
		_, err := svc.Register(context.Background(), validRegisterRequest())
		assert.ErrorIs(t, err, usererrors.ErrUsernameTaken)
	})

	t.Run("email taken", func(t *testing.T) {
		users := notFoundUserRepo()
		users.findByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{ID: uuid.New(), Email: email}, nil
		}
		svc := NewService(users, customerRoleRepo())
		_, err := svc.Register(context.Background(), validRegisterRequest())
		assert.ErrorIs(t, err, usererrors.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("umi12345"), bcrypt.DefaultCost)
	staffRole := &role.Role{ID: uuid.New(), Name: role.Staff}
	u := &user.User{
		ID:       uuid.New(),
		Username: "karyawan",
		Password: string(hashed),
		Role:     staffRole,
	}

	users := &fakeUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
			if username == "karyawan" {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(users, customerRoleRepo())

	t.Run("success returns tokens and staff landing path", func(t *testing.T) {
		access, refresh, resp, err := svc.Login(context.Background(), "karyawan", "umi12345", false)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, string(role.Staff), resp.Role)
		assert.Equal(t, landingPathStaff, resp.LandingPath)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "karyawan", "wrong", false)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "ghost", "umi12345", false)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	customerRole := &role.Role{ID: uuid.New(), Name: role.Customer}
	u := &user.User{ID: uuid.New(), Username: "umi", Role: customerRole}
	hashed, _ := bcrypt.GenerateFromPassword([]byte("umi12345"), bcrypt.DefaultCost)
	u.Password = string(hashed)

	users := &fakeUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*user.User, error) { return u, nil },
		findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
			assert.Equal(t, u.ID.String(), id)
			return u, nil
		},
	}

	svc := NewService(users, customerRoleRepo())

	_, refresh, _, err := svc.Login(context.Background(), "umi", "umi12345", false)
	assert.NoError(t, err)

	t.Run("valid refresh rotates both tokens", func(t *testing.T) {
		access, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, u.ID.String(), resp.ID)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, _, _, err := svc.RefreshToken(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	customerRole := &role.Role{ID: uuid.New(), Name: role.Customer}
	u := &user.User{ID: uuid.New(), Username: "umi", Role: customerRole}

	users := &fakeUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
			if id == u.ID.String() {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(users, customerRoleRepo())

	resp, err := svc.GetMe(context.Background(), u.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, "umi", resp.Username)

	_, err = svc.GetMe(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)

	_, err = svc.GetMe(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}
