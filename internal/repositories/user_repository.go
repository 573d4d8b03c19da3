package repositories

import "butik/internal/models"

// UserRepository defines the interface for user and address data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// GetAddressByUser returns the user's single address, if any.
	GetAddressByUser(userID string) (*models.Address, error)
	SaveAddress(address *models.Address) error
}
