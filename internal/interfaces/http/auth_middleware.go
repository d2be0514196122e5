package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/pkg/jwt"
)

// Locals key para o ator autenticado em Fiber.
const LocalActor = "actor"

// AuthMiddleware valida o Bearer Token JWT e coloca o Actor em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalActor, authz.Actor{
			UserID:     claims.UserID,
			Role:       claims.Role,
			Department: claims.Department,
			ClientID:   claims.ClientID,
		})
		return c.Next()
	}
}

// GetActor devolve o Actor do contexto (depois do middleware de auth).
func GetActor(c *fiber.Ctx) authz.Actor {
	v := c.Locals(LocalActor)
	if v == nil {
		return authz.Actor{}
	}
	a, _ := v.(authz.Actor)
	return a
}

// RequirePermission devolve um middleware Fiber que verifica na tabela de
// capacidades se o par (role, departamento) do ator cobre a operação. Deve
// usar-se DEPOIS de AuthMiddleware.
func RequirePermission(op string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "ator não encontrado no token",
			})
		}
		if !authz.Allowed(actor, op) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "a operação '" + op + "' não está autorizada para este perfil",
			})
		}
		return c.Next()
	}
}

// RequireAnyPermission autoriza quando o ator cobre pelo menos uma das
// operações. Usado nas rotas partilhadas entre pessoal e clientes, onde o
// caso de uso distingue depois o que cada um pode fazer.
func RequireAnyPermission(ops ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "ator não encontrado no token",
			})
		}
		for _, op := range ops {
			if authz.Allowed(actor, op) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "operação não autorizada para este perfil",
		})
	}
}
