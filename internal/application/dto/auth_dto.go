package dto

// LoginRequest credenciales del formulario de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sesión emitido tras un login exitoso.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// SessionResponse proyección durable de la sesión (para restaurar tras recarga).
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}
