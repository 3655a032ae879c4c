package entity

import "time"

// Roles de usuario. La aplicación es mono-tienda: existe una sola cuenta
// de dueño sembrada desde configuración al arrancar.
const RoleOwner = "owner"

// User cuenta del dueño de la tienda.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string
	CreatedAt    time.Time
}
