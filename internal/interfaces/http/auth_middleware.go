package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/admin-console-api/internal/application/dto"
	"github.com/jhoicas/admin-console-api/pkg/jwt"
)

// Locals key para el email autenticado en Fiber.
const LocalAuthEmail = "auth_email"

// AuthMiddleware valida el Bearer Token JWT y deja el email en c.Locals.
// Todas las rutas salvo login/session y health pasan por aquí: una petición
// anónima a una ruta protegida recibe 401 (el cliente redirige al login).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalAuthEmail, email)
		return c.Next()
	}
}

// GetAuthEmail devuelve el email del contexto (después del middleware de auth).
func GetAuthEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalAuthEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
