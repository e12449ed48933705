package models

import (
	"time"

	"gorm.io/gorm"
)

type Staff struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:255" json:"fullName"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Phone    string `gorm:"size:50" json:"phone"`
	Position string `gorm:"size:100" json:"position"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Role struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"size:100;uniqueIndex" json:"name"`
	Description string           `gorm:"size:255" json:"description"`
	Permissions []RolePermission `gorm:"foreignKey:RoleID" json:"permissions"`
	Members     []Staff          `gorm:"many2many:role_members;joinForeignKey:RoleID;JoinReferences:StaffID" json:"members"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type RolePermission struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoleID     uint   `gorm:"not null;index:idx_role_permission,unique" json:"roleId"`
	Permission string `gorm:"size:150;not null;index:idx_role_permission,unique" json:"permission"`
}

type RoleMember struct {
	RoleID  uint `gorm:"primaryKey" json:"roleId"`
	StaffID uint `gorm:"primaryKey" json:"staffId"`
}
