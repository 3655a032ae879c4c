package memory

import (
	"strings"
	"sync"

	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
)

// UserRepository implementa repository.UserRepository en memoria. El email se
// compara sin distinguir mayúsculas.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User)}
}

// Create inserta el usuario. Un email repetido es domain.ErrDuplicate.
func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrDuplicate
		}
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

// FindByID busca por identificador.
func (r *UserRepository) FindByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *u
	return &out, nil
}

// FindByEmail busca por email, sin distinguir mayúsculas.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}
