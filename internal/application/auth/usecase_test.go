package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megaar/comercial-api/internal/application/auth"
	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
	"github.com/megaar/comercial-api/internal/infrastructure/memstore"
	pkgjwt "github.com/megaar/comercial-api/pkg/jwt"
)

const testSecret = "segredo-de-teste"

func newAuthUC(t *testing.T) (*auth.AuthUseCase, repository.Repositories) {
	t.Helper()
	store := memstore.New(memstore.NewDocument())
	uc := auth.NewAuthUseCase(memstore.NewTxRunner(store), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "comercial-api-test",
	})
	return uc, memstore.NewRepositories(store)
}

var registo = dto.RegisterRequest{
	Name:     "Hotel Atlântico",
	NIF:      "500100200",
	Address:  "Av. Marginal 1, Cascais",
	Email:    "compras@atlantico.pt",
	Password: "segredo1",
}

// O registo cria a ficha de cliente e o utilizador associado num só passo, e
// o novo cliente entra autenticado.
func TestRegister_CriaClienteEUtilizador(t *testing.T) {
	uc, repos := newAuthUC(t)

	out, err := uc.Register(context.Background(), registo)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleClient, out.User.Role)
	require.NotEmpty(t, out.User.ClientID)

	client, err := repos.Clients().GetByID(out.User.ClientID)
	require.NoError(t, err)
	require.NotNil(t, client, "a ficha de cliente é criada com o registo")
	assert.Equal(t, "500100200", client.NIF)

	user, err := repos.Users().GetByEmail("compras@atlantico.pt")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, "segredo1", user.PasswordHash, "a password nunca é guardada em claro")

	// o token transporta a identidade completa do ator
	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleClient, claims.Role)
	assert.Equal(t, client.ID, claims.ClientID)
}

func TestRegister_EmailRepetido(t *testing.T) {
	uc, _ := newAuthUC(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, registo)
	require.NoError(t, err)

	_, err = uc.Register(ctx, registo)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredenciaisValidasEInvalidas(t *testing.T) {
	uc, _ := newAuthUC(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, registo)
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: registo.Email, Password: registo.Password})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: registo.Email, Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ninguem@x.pt", Password: "tanto-faz"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// As credenciais semente autenticam no primeiro arranque.
func TestLogin_UtilizadoresSemente(t *testing.T) {
	doc, err := memstore.SeedDocument()
	require.NoError(t, err)
	store := memstore.New(doc)
	uc := auth.NewAuthUseCase(memstore.NewTxRunner(store), auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "comercial-api-test",
	})

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    memstore.SeedAdminEmail,
		Password: memstore.SeedAdminPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}
