package repo

import "github.com/rogerio-castellano/employee-portal/internal/models"

// ProductRepository defines the read operations for the product catalog.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
}
