package dto

import "time"

// CreateUserRequest entrada del formulario de alta de usuario.
type CreateUserRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,oneof=Admin Manager Staff"`
	Status string `json:"status" validate:"required,oneof=Active Inactive Pending"`
	Avatar string `json:"avatar"`
}

// UpdateUserRequest entrada del formulario de edición (merge; nil no toca el campo).
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Role   *string `json:"role" validate:"omitempty,oneof=Admin Manager Staff"`
	Status *string `json:"status" validate:"omitempty,oneof=Active Inactive Pending"`
	Avatar *string `json:"avatar"`
}

// UserFilter criterios de listado: búsqueda por texto (name/email) y filtro
// exacto por rol ("" o "all" = todos).
type UserFilter struct {
	Search string `query:"search"`
	Role   string `query:"role"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserListResponse listado filtrado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}
