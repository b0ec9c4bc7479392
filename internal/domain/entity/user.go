package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleStaff   = "Staff"
)

// Estados de usuario.
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
	UserStatusPending  = "Pending"
)

// Roles y UserStatuses catálogos fijos para los filtros y formularios.
var (
	Roles        = []string{RoleAdmin, RoleManager, RoleStaff}
	UserStatuses = []string{UserStatusActive, UserStatusInactive, UserStatusPending}
)

// User representa un miembro del roster administrado desde el panel.
// ID y CreatedAt se asignan una sola vez al crear y son inmutables.
// Los tags JSON definen el formato del slot persistido admin_users.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`   // Admin, Manager, Staff
	Status    string    `json:"status"` // Active, Inactive, Pending
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}
