package repo

import "github.com/rogerio-castellano/employee-portal/internal/models"

type AccountRepository interface {
	FindByCredentials(username, password string) (models.Account, error)
}
