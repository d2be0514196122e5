package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/domain/entity"
	apphttp "github.com/megaar/comercial-api/internal/interfaces/http"
	pkgjwt "github.com/megaar/comercial-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testClientID  = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "comercial-api-test"
	testExpMin    = 60
)

// buildTestApp constrói uma aplicação Fiber mínima com:
//   - AuthMiddleware para validar o JWT e carregar o ator nos locals
//   - RequirePermission para autorizar a operação contra a tabela de capacidades
//   - Um handler dummy que devolve 200 se passar os middlewares
func buildTestApp(op string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar erros internos nos tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(op),
		func(c *fiber.Ctx) error {
			actor := apphttp.GetActor(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": actor.Role,
			})
		},
	)
	return app
}

// tokenFor gera um JWT com o perfil indicado.
func tokenFor(t *testing.T, role, department, clientID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, department, clientID, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar-se um token JWT válido")
	return "Bearer " + tok
}

// doRequest lança um pedido GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: O perfil do ator cobre a operação → deve passar (HTTP 200).
func TestRequirePermission_AdminAcedeOperacaoInterna(t *testing.T) {
	app := buildTestApp(authz.OpManageEmployees)
	resp := doRequest(t, app, tokenFor(t, entity.RoleAdmin, entity.DepartmentNone, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin deve poder aceder a operação interna")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "a resposta deve incluir ok:true")
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

// Caso 1b: Funcionário de stock cobre a operação do seu fluxo → HTTP 200.
func TestRequirePermission_StockRececionaEncomendas(t *testing.T) {
	app := buildTestApp(authz.OpReceiveStock)
	resp := doRequest(t, app, tokenFor(t, entity.RoleEmployee, entity.DepartmentStock, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"funcionário de stock deve poder rececionar encomendas")
}

// Caso 2: O perfil não cobre a operação → HTTP 403 Forbidden.
func TestRequirePermission_VendasBloqueadoEmCompras(t *testing.T) {
	app := buildTestApp(authz.OpManagePurchases)
	resp := doRequest(t, app, tokenFor(t, entity.RoleEmployee, entity.DepartmentSales, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"funcionário de vendas não deve gerir encomendas a fornecedores")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"a resposta de erro deve incluir o código FORBIDDEN")
}

// Caso 2b: Cliente bloqueado numa operação de pessoal → HTTP 403.
func TestRequirePermission_ClienteBloqueadoEmGestao(t *testing.T) {
	app := buildTestApp(authz.OpManageClients)
	resp := doRequest(t, app, tokenFor(t, entity.RoleClient, entity.DepartmentNone, testClientID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Sem header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequirePermission_SemAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(authz.OpViewCatalog)
	resp := doRequest(t, app, "") // sem header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 4: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequirePermission_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(authz.OpViewCatalog)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 5: Token assinado com outro secret → HTTP 401.
func TestRequirePermission_SecretErrado_Retorna401(t *testing.T) {
	app := buildTestApp(authz.OpViewCatalog)
	tok, err := pkgjwt.Generate("outro-secret-completamente-distinto",
		testUserID, entity.RoleAdmin, entity.DepartmentNone, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAnyPermission — rotas partilhadas entre pessoal e clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAnyPermission_PessoalEClientePassam(t *testing.T) {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAnyPermission(authz.OpAdvanceInquiry, authz.OpDeclareInterest),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	staff := doRequest(t, app, tokenFor(t, entity.RoleEmployee, entity.DepartmentSales, ""))
	defer staff.Body.Close()
	assert.Equal(t, http.StatusOK, staff.StatusCode,
		"vendas cobre a transição de pessoal")

	cliente := doRequest(t, app, tokenFor(t, entity.RoleClient, entity.DepartmentNone, testClientID))
	defer cliente.Body.Close()
	assert.Equal(t, http.StatusOK, cliente.StatusCode,
		"cliente cobre a declaração de interesse")

	stock := doRequest(t, app, tokenFor(t, entity.RoleEmployee, entity.DepartmentStock, ""))
	defer stock.Body.Close()
	assert.Equal(t, http.StatusForbidden, stock.StatusCode,
		"stock não cobre nenhuma das duas operações")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extração do ator do token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraiActor(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		actor := apphttp.GetActor(c)
		return c.JSON(fiber.Map{
			"user_id":    actor.UserID,
			"role":       actor.Role,
			"department": actor.Department,
			"client_id":  actor.ClientID,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleClient, entity.DepartmentNone, testClientID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, entity.RoleClient, body["role"])
	assert.Equal(t, testClientID, body["client_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridade do generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID,
		entity.RoleEmployee, entity.DepartmentStock, "", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, entity.RoleEmployee, claims.Role)
	assert.Equal(t, entity.DepartmentStock, claims.Department)
	assert.Empty(t, claims.ClientID)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token com expiração -1 minuto (já expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID,
		entity.RoleAdmin, entity.DepartmentNone, "", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado deve devolver erro")
}
