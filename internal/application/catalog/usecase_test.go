package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/application/catalog"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
	"github.com/megaar/comercial-api/internal/infrastructure/memstore"
)

var (
	staffActor  = authz.Actor{UserID: "u1", Role: entity.RoleAdmin}
	clientActor = authz.Actor{UserID: "uc1", Role: entity.RoleClient, ClientID: "c1"}
)

func newFixture(t *testing.T) (*catalog.UseCase, repository.Repositories) {
	t.Helper()
	doc := memstore.NewDocument()
	doc.Clients = []entity.Client{{ID: "c1", Name: "Hotel Atlântico"}}
	doc.Products = []entity.Product{
		{ID: "p1", Name: "Chiller 50kW", Price: decimal.NewFromInt(12000), Stock: 3},
		{ID: "p2", Name: "Rooftop 30kW", Price: decimal.NewFromInt(8000), Stock: 1},
		{ID: "p3", Name: "Split Mural", Price: decimal.NewFromInt(600), Stock: 9},
	}
	store := memstore.New(doc)
	return catalog.NewUseCase(memstore.NewTxRunner(store)), memstore.NewRepositories(store)
}

func TestVisibleFor_PessoalVeTudo(t *testing.T) {
	uc, _ := newFixture(t)
	out, err := uc.VisibleFor(context.Background(), staffActor)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

// Um cliente só vê os produtos cujo ofício atingiu pelo menos catalog_sent
// e que ainda não comprou.
func TestVisibleFor_ClienteVeSoParesQualificados(t *testing.T) {
	uc, repos := newFixture(t)

	require.NoError(t, repos.Inquiries().Create(&entity.Inquiry{
		ID: "OF-1", ClientID: "c1", ProductID: "p1", Status: entity.InquiryStatusCatalogSent,
	}))
	require.NoError(t, repos.Inquiries().Create(&entity.Inquiry{
		ID: "OF-2", ClientID: "c1", ProductID: "p2", Status: entity.InquiryStatusPending,
	}))

	out, err := uc.VisibleFor(context.Background(), clientActor)
	require.NoError(t, err)
	require.Len(t, out, 1, "só o par com catálogo enviado é visível")
	assert.Equal(t, "p1", out[0].ID)
}

// Depois da compra o produto sai do catálogo do cliente.
func TestVisibleFor_CompraRemoveDoCatalogo(t *testing.T) {
	uc, repos := newFixture(t)
	ctx := context.Background()

	require.NoError(t, repos.Inquiries().Create(&entity.Inquiry{
		ID: "OF-1", ClientID: "c1", ProductID: "p1", Status: entity.InquiryStatusInterested,
	}))

	out, err := uc.VisibleFor(ctx, clientActor)
	require.NoError(t, err)
	require.Len(t, out, 1)

	require.NoError(t, repos.SalesOrders().Create(&entity.SalesOrder{
		ID: "AQ-1", ClientID: "c1", ProductID: "p1", Quantity: 1,
		Status: entity.OrderStatusSatisfied, PaymentMethod: entity.PaymentMethodCash,
		PaymentStatus: entity.PaymentStatusPending,
	}))

	out, err = uc.VisibleFor(ctx, clientActor)
	require.NoError(t, err)
	assert.Empty(t, out, "o par comprado desaparece do catálogo")
}

// contadorSnapshot conta as gravações feitas no slot persistente.
type contadorSnapshot struct {
	doc   *memstore.Document
	saves int
}

func (c *contadorSnapshot) Load(_ context.Context) (*memstore.Document, error) {
	return c.doc, nil
}

func (c *contadorSnapshot) Save(_ context.Context, doc *memstore.Document) error {
	c.doc = doc
	c.saves++
	return nil
}

// Consultar o catálogo é leitura pura: não grava o snapshot.
func TestVisibleFor_NaoGravaSnapshot(t *testing.T) {
	doc := memstore.NewDocument()
	doc.Products = []entity.Product{{ID: "p1", Name: "Chiller 50kW", Stock: 3}}
	snap := &contadorSnapshot{doc: doc}

	store, err := memstore.Open(context.Background(), snap)
	require.NoError(t, err)
	uc := catalog.NewUseCase(memstore.NewTxRunner(store))

	out, err := uc.VisibleFor(context.Background(), staffActor)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Zero(t, snap.saves,
		"uma consulta ao catálogo não devia gravar o snapshot")
}
