package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"moonlight-backend/models"
)

var ErrCustomerNotFound = errors.New("customer_not_found")

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (s *CustomerService) Create(customer models.Customer) (models.Customer, error) {
	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	if customer.FullName == "" {
		return models.Customer{}, errors.New("full name is required")
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		return models.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// FindOrCreateByEmail resolves the customer record for a guest self-booking.
func (s *CustomerService) FindOrCreateByEmail(fullName, email, phone string) (models.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return s.Create(models.Customer{FullName: fullName, Phone: phone})
	}

	var existing models.Customer
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Customer{}, fmt.Errorf("failed to look up customer: %w", err)
	}
	return s.Create(models.Customer{FullName: fullName, Email: email, Phone: phone})
}

func (s *CustomerService) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Order("full_name ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) GetByID(id uint) (models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer, ErrCustomerNotFound
		}
		return customer, fmt.Errorf("failed to retrieve customer: %w", err)
	}
	return customer, nil
}
