package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-oagis/internal/application/dto"
)

// HeaderUserLogin cabecera opcional con la identidad que ejecuta las operaciones.
const HeaderUserLogin = "X-User-Login"

// LocalUserLoginID key de c.Locals para la identidad solicitada.
const LocalUserLoginID = "user_login_id"

const maxUserLoginLen = 255

// UserLoginMiddleware lee X-User-Login y la deja en c.Locals. Sin cabecera el servicio
// usa la identidad por defecto del tipo de documento.
func UserLoginMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(HeaderUserLogin))
		if id == "" {
			return c.Next()
		}
		if len(id) > maxUserLoginLen || strings.ContainsAny(id, " \t\r\n") {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "INVALID_USER_LOGIN",
				Message: HeaderUserLogin + " inválido",
			})
		}
		c.Locals(LocalUserLoginID, id)
		return c.Next()
	}
}

// GetUserLoginID devuelve la identidad solicitada (después de UserLoginMiddleware).
func GetUserLoginID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserLoginID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
