package user

import (
	"time"

	"go-laundry/internal/role"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username string    `gorm:"column:username;type:varchar(80);not null;uniqueIndex:uq_users_username"`
	Email    string    `gorm:"column:email;type:varchar(120);not null;uniqueIndex:uq_users_email"`
	Password string    `gorm:"column:password;type:varchar(255);not null"`
	FullName string    `gorm:"column:full_name;type:varchar(100);not null"`
	Phone    string    `gorm:"column:phone;type:varchar(20)"`
	Address  string    `gorm:"column:address;type:text"`

	RoleID uuid.UUID  `gorm:"column:role_id;type:uuid;not null"`
	Role   *role.Role `gorm:"foreignKey:RoleID;references:ID"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// IsStaff requires the Role association to be preloaded.
func (u *User) IsStaff() bool {
	return u.Role != nil && u.Role.Name == role.Staff
}
