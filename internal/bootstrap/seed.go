package bootstrap

import (
	"context"
	"errors"

	"go-laundry/internal/catalog"
	"go-laundry/internal/role"
	"go-laundry/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	username string
	email    string
	password string
	fullName string
	phone    string
	role     role.Name
}

type seedService struct {
	name        string
	description string
	price       string
	unit        string
	duration    string
	imageURL    string
}

var seedUsers = []seedUser{
	{"karyawan", "karyawan@miyalaundry.com", "karyawan123", "Karyawan Laundry", "081234567890", role.Staff},
	{"umi", "umi@email.com", "umi123", "Umi Santoso", "081234567891", role.Customer},
	{"budi", "budi@email.com", "budi123", "Budi Santoso", "081234567892", role.Customer},
	{"siti", "siti@email.com", "siti123", "Siti Aminah", "081234567893", role.Customer},
	{"ahmad", "ahmad@email.com", "ahmad123", "Ahmad Rahman", "081234567894", role.Customer},
	{"maya", "maya@email.com", "maya123", "Maya Sari", "081234567895", role.Customer},
}

var seedServices = []seedService{
	{
		"Cuci Kering Reguler",
		"Layanan cuci dan kering standar untuk pakaian sehari-hari.",
		"5000.00", "per kg", "2-3 hari",
		"https://images.unsplash.com/photo-1582735689369-4fe89db7114c?w=800",
	},
	{
		"Cuci Kering Express",
		"Layanan cuci dan kering kilat untuk kebutuhan mendesak.",
		"8000.00", "per kg", "1 hari",
		"https://images.unsplash.com/photo-1517677208171-0bc6725a3e60?w=800",
	},
	{
		"Cuci Setrika Premium",
		"Paket lengkap cuci, kering, dan setrika rapi untuk pakaian kerja dan acara formal.",
		"7000.00", "per kg", "3-4 hari",
		"https://images.unsplash.com/photo-1610557892470-55d9e80c0bce?w=800",
	},
	{
		"Setrika Saja",
		"Layanan khusus setrika untuk pakaian yang sudah bersih.",
		"3000.00", "per kg", "1-2 hari",
		"https://images.unsplash.com/photo-1489274495757-95c7c837b101?w=800",
	},
	{
		"Cuci Sepatu",
		"Perawatan khusus untuk sepatu dengan metode deep cleaning.",
		"25000.00", "per pasang", "3-5 hari",
		"https://images.unsplash.com/photo-1460353581641-37baddab0fa2?w=800",
	},
	{
		"Cuci Karpet",
		"Pembersihan karpet menyeluruh dengan peralatan profesional.",
		"15000.00", "per meter", "5-7 hari",
		"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800",
	},
	{
		"Dry Clean Jas",
		"Dry cleaning khusus untuk jas, blazer, dan pakaian formal.",
		"35000.00", "per potong", "5-7 hari",
		"https://images.unsplash.com/photo-1594938291221-94f18cbb5660?w=800",
	},
	{
		"Cuci Selimut",
		"Pencucian selimut dan bed cover dengan mesin berkapasitas besar.",
		"30000.00", "per item", "4-5 hari",
		"https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=800",
	},
}

// Seed inserts the baseline roles, demo accounts, and starter catalog.
// Every insert is existence-checked, so running it repeatedly is safe.
func Seed(ctx context.Context, db *gorm.DB, logger ...*zap.Logger) error {
	l := zap.L().Named("bootstrap.seed")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bootstrap.seed")
	}

	if err := seedRoles(ctx, db); err != nil {
		return err
	}
	if err := seedDemoUsers(ctx, db); err != nil {
		return err
	}
	if err := seedCatalog(ctx, db); err != nil {
		return err
	}

	l.Info("seed data ensured")
	return nil
}

func seedRoles(ctx context.Context, db *gorm.DB) error {
	repo := role.NewRepository(db)

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	roles := []role.Role{
		{ID: uuid.New(), Name: role.Staff, Description: "Karyawan dengan akses penuh untuk mengelola sistem"},
		{ID: uuid.New(), Name: role.Customer, Description: "Customer dengan akses terbatas untuk pemesanan"},
	}
	for i := range roles {
		if err := repo.Create(ctx, &roles[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedDemoUsers(ctx context.Context, db *gorm.DB) error {
	users := user.NewRepository(db)
	roles := role.NewRepository(db)

	for _, su := range seedUsers {
		_, err := users.FindByUsername(ctx, su.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		r, err := roles.FindByName(ctx, su.role)
		if err != nil {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		u := user.User{
			ID:       uuid.New(),
			Username: su.username,
			Email:    su.email,
			Password: string(hashed),
			FullName: su.fullName,
			Phone:    su.phone,
			RoleID:   r.ID,
		}
		if err := users.Create(ctx, &u); err != nil {
			return err
		}
	}
	return nil
}

func seedCatalog(ctx context.Context, db *gorm.DB) error {
	repo := catalog.NewRepository(db)

	existing, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, ss := range seedServices {
		price, err := decimal.NewFromString(ss.price)
		if err != nil {
			return err
		}

		svc := catalog.LaundryService{
			ID:          uuid.New(),
			Name:        ss.name,
			Description: ss.description,
			Price:       price,
			Unit:        ss.unit,
			Duration:    ss.duration,
			ImageURL:    ss.imageURL,
			IsActive:    true,
		}
		if err := repo.Create(ctx, &svc); err != nil {
			return err
		}
	}
	return nil
}
