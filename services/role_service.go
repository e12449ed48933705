package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"moonlight-backend/models"
)

var ErrRoleNotFound = errors.New("role_not_found")

type RoleService struct {
	DB *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{DB: db}
}

func (s *RoleService) GetAll() ([]models.Role, error) {
	var roles []models.Role
	if err := s.DB.Preload("Permissions").Preload("Members").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve roles: %w", err)
	}
	return roles, nil
}

// SetPermissions replaces a role's permission set.
func (s *RoleService) SetPermissions(roleID uint, permissions []string) (models.Role, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.First(&role, roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		if len(permissions) == 0 {
			return nil
		}

		perms := make([]models.RolePermission, 0, len(permissions))
		for _, p := range permissions {
			perms = append(perms, models.RolePermission{RoleID: roleID, Permission: p})
		}
		return tx.Create(&perms).Error
	})
	if txErr != nil {
		return models.Role{}, txErr
	}

	var role models.Role
	if err := s.DB.Preload("Permissions").First(&role, roleID).Error; err != nil {
		return models.Role{}, err
	}
	return role, nil
}
