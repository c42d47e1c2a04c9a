package role

import (
	"time"

	"github.com/google/uuid"
)

// Name is a closed enumeration. The trust decision (staff vs customer)
// hangs on these constants, never on free text from the database.
type Name string

const (
	Staff    Name = "Karyawan"
	Customer Name = "Customer"
)

func (n Name) Valid() bool {
	return n == Staff || n == Customer
}

// Role is reference data: seeded once at bootstrap, never deleted. The row
// only carries display metadata; authorization reads the typed Name.
type Role struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        Name      `gorm:"column:name;type:varchar(50);not null;uniqueIndex"`
	Description string    `gorm:"column:description;type:varchar(200)"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Role) TableName() string {
	return "roles"
}
