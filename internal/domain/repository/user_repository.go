package repository

import "github.com/tu-usuario/tracksmart-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// El dashboard opera con una sola cuenta de dueño sembrada al arranque,
// pero el contrato no lo asume.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
