package model

import "time"

type Role string

const (
	RoleBuyer   Role = "buyer"
	RoleCreator Role = "creator"
)

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Name         string `gorm:"type:varchar(255);not null"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'buyer'"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
