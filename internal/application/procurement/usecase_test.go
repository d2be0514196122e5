package procurement_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/application/procurement"
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
	"github.com/megaar/comercial-api/internal/infrastructure/memstore"
)

func newFixture(t *testing.T) (*procurement.UseCase, repository.Repositories) {
	t.Helper()
	doc := memstore.NewDocument()
	doc.Users = []entity.User{
		{ID: "u3", Name: "Stock", Email: "s@x.pt", Role: entity.RoleEmployee, Department: entity.DepartmentStock},
	}
	doc.Products = []entity.Product{
		{ID: "p1", Name: "Split Mural 3.5kW", Price: decimal.NewFromInt(600), Stock: 2},
	}
	doc.Suppliers = []entity.Supplier{{ID: "s1", Name: "CoolTech Global"}}
	store := memstore.New(doc)
	return procurement.NewUseCase(memstore.NewTxRunner(store)), memstore.NewRepositories(store)
}

func TestCreateOrder_EncomendaManual(t *testing.T) {
	uc, _ := newFixture(t)

	out, err := uc.CreateOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: "s1", ProductID: "p1", Quantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusOrdered, out.Status)
	assert.Equal(t, "CoolTech Global", out.SupplierName)
	assert.Equal(t, "Split Mural 3.5kW", out.ProductName)
}

func TestCreateOrder_ReferenciasInvalidas(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	_, err := uc.CreateOrder(ctx, dto.CreatePurchaseOrderRequest{SupplierID: "s9", ProductID: "p1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CreateOrder(ctx, dto.CreatePurchaseOrderRequest{SupplierID: "s1", ProductID: "p9", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CreateOrder(ctx, dto.CreatePurchaseOrderRequest{SupplierID: "s1", ProductID: "p1", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// A receção credita o stock exatamente uma vez: a segunda chamada é um
// conflito e não volta a creditar.
func TestReceiveStock_CreditaUmaSoVez(t *testing.T) {
	uc, repos := newFixture(t)
	ctx := context.Background()

	po, err := uc.CreateOrder(ctx, dto.CreatePurchaseOrderRequest{
		SupplierID: "s1", ProductID: "p1", Quantity: 10,
	})
	require.NoError(t, err)

	out, err := uc.ReceiveStock(ctx, po.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusReceived, out.Status)

	p, err := repos.Products().GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 12, p.Stock, "o stock sobe pela quantidade encomendada")

	_, err = uc.ReceiveStock(ctx, po.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyReceived, "receção repetida é bloqueada")

	p, err = repos.Products().GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 12, p.Stock, "o crédito nunca é aplicado em duplicado")

	// a receção difunde um aviso de stock atualizado a todos
	feed, err := repos.Notifications().ListForUser("u3")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Stock Atualizado", feed[0].Title)
	assert.Equal(t, entity.BroadcastTarget, feed[0].UserID)
}

func TestReceiveStock_EncomendaInexistente(t *testing.T) {
	uc, _ := newFixture(t)
	_, err := uc.ReceiveStock(context.Background(), "PO-NADA")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_MaisRecentesPrimeiro(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	first, err := uc.CreateOrder(ctx, dto.CreatePurchaseOrderRequest{SupplierID: "s1", ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	second, err := uc.CreateOrder(ctx, dto.CreatePurchaseOrderRequest{SupplierID: "s1", ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	out, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, second.ID, out[0].ID)
	assert.Equal(t, first.ID, out[1].ID)
}
