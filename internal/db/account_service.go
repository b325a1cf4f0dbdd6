package db

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/dagraham/timemate/internal/models"
)

// CreateAccount creates a new account with a unique name.
func (s *Store) CreateAccount(name string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("account name must not be empty")
	}

	var existing models.Account
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("account '%s' already exists", name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account := models.Account{Name: name}
	if err := s.db.Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// ResolveAccount resolves an account by numeric id or by name, creating the
// account when a name is given that does not exist yet.
func (s *Store) ResolveAccount(nameOrID string) (*models.Account, error) {
	nameOrID = strings.TrimSpace(nameOrID)

	if id, err := strconv.ParseUint(nameOrID, 10, 32); err == nil {
		var account models.Account
		if err := s.db.First(&account, uint(id)).Error; err != nil {
			return nil, &NotFoundError{Kind: "account", ID: uint(id)}
		}
		return &account, nil
	}

	var account models.Account
	err := s.db.Where("name = ?", nameOrID).First(&account).Error
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.CreateAccount(nameOrID)
}

// GetAccount retrieves an account by id.
func (s *Store) GetAccount(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, id).Error; err != nil {
		return nil, &NotFoundError{Kind: "account", ID: id}
	}
	return &account, nil
}

// ListAccounts returns all accounts ordered by name.
func (s *Store) ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Order("name ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
