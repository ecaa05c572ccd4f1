package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Role      Role      `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	Verified  bool      `gorm:"default:false" json:"verified"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Address   string    `json:"address"`
	Image     string    `json:"image"` // profile image, /uploads/<name>.<ext>
	CreatedAt time.Time `json:"created_at"`
}
