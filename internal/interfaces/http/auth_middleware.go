package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-dashboard/pkg/jwt"
)

// LocalSessionEmail key en c.Locals con el email de la sesión.
const LocalSessionEmail = "session_email"

// SessionMiddleware lee el Bearer Token si existe y guarda el email en c.Locals.
// Nunca rechaza la petición: el login es de cortesía y no protege rutas.
func SessionMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Next()
		}
		if email, err := jwt.Parse(jwtSecret, tokenString); err == nil {
			c.Locals(LocalSessionEmail, email)
		}
		return c.Next()
	}
}

// GetSessionEmail devuelve el email de la sesión ("" si no hay token válido).
func GetSessionEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
