// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria protegidas por RWMutex. Es el backend por defecto del dashboard:
// el estado vive lo que vive el proceso.
package memory

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/domain/entity"
	"github.com/tu-usuario/tracksmart-api/internal/domain/signal"
)

// Store implementa repository.EntityStore. Toda mutación de productos pasa por
// recompute, que vuelve a derivar la campana de notificaciones bajo el mismo
// lock: así el estado derivado nunca queda desfasado del estado base.
type Store struct {
	mu            sync.RWMutex
	products      []entity.Product
	transactions  []entity.Transaction
	notifications []entity.Notification

	// now es inyectable para fijar el reloj en tests.
	now func() time.Time
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// recompute deriva la campana a partir del estado actual. Llamar con mu tomado
// en escritura.
func (s *Store) recompute() {
	s.notifications = signal.DeriveNotifications(s.products, s.notifications, s.now())
}

// AddProduct valida e inserta el producto al frente del listado.
func (s *Store) AddProduct(product entity.Product) (entity.Product, error) {
	if product.ID == "" || product.Name == "" {
		return entity.Product{}, domain.ErrInvalidInput
	}
	if product.Stock < 0 || product.Price.IsNegative() {
		return entity.Product{}, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == product.ID {
			return entity.Product{}, domain.ErrDuplicate
		}
	}
	now := s.now()
	product.CreatedAt = now
	product.UpdatedAt = now
	s.products = append([]entity.Product{product}, s.products...)
	s.recompute()
	return product, nil
}

// GetProduct devuelve una copia del producto o domain.ErrNotFound.
func (s *Store) GetProduct(id string) (entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Product{}, domain.ErrNotFound
}

// ListProducts devuelve una copia del listado en orden de inserción.
func (s *Store) ListProducts() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// SetPrice fija el precio vigente. Un precio negativo es entrada inválida.
func (s *Store) SetPrice(id string, price decimal.Decimal) (entity.Product, error) {
	if price.IsNegative() {
		return entity.Product{}, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		s.products[i].Price = price
		s.products[i].UpdatedAt = s.now()
		s.recompute()
		return s.products[i], nil
	}
	return entity.Product{}, domain.ErrNotFound
}

// RemoveProduct elimina el producto del listado. Sus transacciones históricas
// se conservan: la serie de ingresos tolera referencias colgantes.
func (s *Store) RemoveProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		s.products = append(s.products[:i], s.products[i+1:]...)
		s.recompute()
		return nil
	}
	return domain.ErrNotFound
}

// AppendTransactions agrega ventas al historial sin exigir que el producto
// referenciado exista.
func (s *Store) AppendTransactions(transactions []entity.Transaction) error {
	for _, tx := range transactions {
		if tx.Quantity < 0 || tx.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append(s.transactions, transactions...)
	return nil
}

// ListTransactions devuelve una copia del historial completo.
func (s *Store) ListTransactions() []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// ImportBatch aplica productos nuevos y transacciones en una sola sección
// crítica, con una única recomputación al final.
func (s *Store) ImportBatch(products []entity.Product, transactions []entity.Transaction) error {
	for _, p := range products {
		if p.ID == "" || p.Stock < 0 || p.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	for _, tx := range transactions {
		if tx.Quantity < 0 || tx.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, p := range products {
		if s.hasProductLocked(p.ID) {
			return domain.ErrDuplicate
		}
		p.CreatedAt = now
		p.UpdatedAt = now
		s.products = append([]entity.Product{p}, s.products...)
	}
	s.transactions = append(s.transactions, transactions...)
	s.recompute()
	return nil
}

func (s *Store) hasProductLocked(id string) bool {
	for _, p := range s.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Notifications devuelve una copia de la campana vigente.
func (s *Store) Notifications() []entity.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// MarkAllNotificationsRead marca todo como leído y devuelve la lista
// resultante. El flag sobrevive recomputaciones posteriores.
func (s *Store) MarkAllNotificationsRead() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = signal.MarkAllRead(s.notifications)
	out := make([]entity.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// AlertFeeds deriva las listas de la vista de alertas del estado actual.
func (s *Store) AlertFeeds() signal.AlertFeeds {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return signal.DeriveAlertFeeds(s.products)
}
