package users

import "time"

const (
	RoleAdmin      = "admin"
	RolePractician = "practician"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	FirstName    string  `gorm:"column:first_name;not null"`
	LastName     string  `gorm:"column:last_name;not null"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"type:varchar(20);not null;default:'practician'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
