package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

// fakeSnapshot guarda o documento em memória e conta as gravações.
type fakeSnapshot struct {
	doc   *Document
	saves int
	fail  bool
}

func (f *fakeSnapshot) Load(_ context.Context) (*Document, error) {
	if f.doc == nil {
		return nil, nil
	}
	return f.doc.Clone(), nil
}

func (f *fakeSnapshot) Save(_ context.Context, doc *Document) error {
	if f.fail {
		return errors.New("slot indisponível")
	}
	f.doc = doc.Clone()
	f.saves++
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida da Store
// ──────────────────────────────────────────────────────────────────────────────

// Com o slot vazio, Open instala e persiste o documento semente.
func TestOpen_SlotVazioInstalaSemente(t *testing.T) {
	snap := &fakeSnapshot{}
	s, err := Open(context.Background(), snap)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.saves, "a semente é gravada no slot")
	users, err := NewUserRepository(s).ListStaff()
	require.NoError(t, err)
	assert.Len(t, users, 3)
	sup, err := NewSupplierRepository(s).First()
	require.NoError(t, err)
	require.NotNil(t, sup)
	assert.Equal(t, "CoolTech Global", sup.Name)
}

// Com documento no slot, Open usa-o em vez da semente.
func TestOpen_SlotPreenchidoReusaDocumento(t *testing.T) {
	doc := NewDocument()
	doc.Clients = []entity.Client{{ID: "c1", Name: "Hotel Atlântico"}}
	snap := &fakeSnapshot{doc: doc}

	s, err := Open(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.saves)

	c, err := NewClientRepository(s).GetByID("c1")
	require.NoError(t, err)
	require.NotNil(t, c)
}

// Cada escrita confirmada volta a gravar o snapshot; um erro do snapshot
// aborta a escrita sem tocar no documento corrente.
func TestMutate_PersisteOuReverte(t *testing.T) {
	snap := &fakeSnapshot{}
	s, err := Open(context.Background(), snap)
	require.NoError(t, err)
	products := NewProductRepository(s)

	require.NoError(t, products.Create(&entity.Product{
		ID: "p1", Name: "Chiller", Price: decimal.NewFromInt(100), Stock: 5,
	}))
	assert.Equal(t, 2, snap.saves, "semente mais a criação do produto")

	snap.fail = true
	err = products.AdjustStock("p1", -1)
	require.Error(t, err)

	snap.fail = false
	p, err := products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock, "escrita falhada não deixa mutação parcial")
}

// Um erro a meio de uma transação descarta todas as alterações do clone.
func TestTxRunner_ErroDescartaTransacao(t *testing.T) {
	doc := NewDocument()
	doc.Products = []entity.Product{{ID: "p1", Name: "Chiller", Stock: 5}}
	s := New(doc)

	err := NewTxRunner(s).Run(context.Background(), func(r repository.Repositories) error {
		if err := r.Products().AdjustStock("p1", -3); err != nil {
			return err
		}
		if err := r.PurchaseOrders().Create(&entity.PurchaseOrder{ID: "PO-1", ProductID: "p1", Quantity: 8}); err != nil {
			return err
		}
		return domain.ErrConflict
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	p, err := NewProductRepository(s).GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock, "o decremento da transação falhada não é visível")
	pos, err := NewPurchaseOrderRepository(s).List()
	require.NoError(t, err)
	assert.Empty(t, pos, "a encomenda da transação falhada não é visível")
}

// View é leitura pura: não grava o snapshot nem sinaliza subscritores.
func TestTxRunner_ViewNaoPersisteNemSinaliza(t *testing.T) {
	snap := &fakeSnapshot{}
	s, err := Open(context.Background(), snap)
	require.NoError(t, err)
	savesAposSemente := snap.saves
	ch, cancel := s.Subscribe()
	defer cancel()

	err = NewTxRunner(s).View(context.Background(), func(r repository.Repositories) error {
		users, err := r.Users().ListStaff()
		if err != nil {
			return err
		}
		assert.Len(t, users, 3)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, savesAposSemente, snap.saves,
		"uma leitura pura não devia gravar o snapshot")
	select {
	case <-ch:
		t.Fatal("uma leitura pura não devia sinalizar os subscritores")
	default:
	}
}

// Cada escrita confirmada sinaliza os subscritores; sinais coalescem.
func TestSubscribe_SinalDepoisDeEscrita(t *testing.T) {
	s := New(NewDocument())
	ch, cancel := s.Subscribe()
	defer cancel()

	clients := NewClientRepository(s)
	require.NoError(t, clients.Create(&entity.Client{ID: "c1", Name: "Hotel"}))

	select {
	case <-ch:
	default:
		t.Fatal("escrita confirmada deve sinalizar o subscritor")
	}

	// duas escritas seguidas sem leitura coalescem num único sinal
	require.NoError(t, clients.Create(&entity.Client{ID: "c2", Name: "Clínica"}))
	require.NoError(t, clients.Create(&entity.Client{ID: "c3", Name: "Escritório"}))
	<-ch
	select {
	case <-ch:
		t.Fatal("sinais pendentes devem coalescer")
	default:
	}
}

// Reload substitui o estado em memória pelo documento do slot.
func TestReload_SubstituiEstado(t *testing.T) {
	snap := &fakeSnapshot{}
	s, err := Open(context.Background(), snap)
	require.NoError(t, err)

	other := NewDocument()
	other.Clients = []entity.Client{{ID: "c9", Name: "Novo Cliente"}}
	snap.doc = other

	require.NoError(t, s.Reload(context.Background()))
	c, err := NewClientRepository(s).GetByID("c9")
	require.NoError(t, err)
	require.NotNil(t, c, "o documento relido fica visível")
}

// ──────────────────────────────────────────────────────────────────────────────
// Semântica dos repositórios
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_AdjustStockNuncaNegativo(t *testing.T) {
	doc := NewDocument()
	doc.Products = []entity.Product{{ID: "p1", Name: "Split", Stock: 2}}
	products := NewProductRepository(New(doc))

	err := products.AdjustStock("p1", -3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	p, err := products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Stock)

	assert.ErrorIs(t, products.AdjustStock("p9", 1), domain.ErrNotFound)
}

func TestRepos_GetInexistenteDevolveNil(t *testing.T) {
	s := New(NewDocument())

	c, err := NewClientRepository(s).GetByID("c1")
	require.NoError(t, err)
	assert.Nil(t, c)

	u, err := NewUserRepository(s).GetByEmail("x@x.pt")
	require.NoError(t, err)
	assert.Nil(t, u)

	sup, err := NewSupplierRepository(s).First()
	require.NoError(t, err)
	assert.Nil(t, sup)
}

func TestSalesOrderRepo_ExistsForPair(t *testing.T) {
	s := New(NewDocument())
	orders := NewSalesOrderRepository(s)

	require.NoError(t, orders.Create(&entity.SalesOrder{ID: "AQ-1", ClientID: "c1", ProductID: "p1", Quantity: 1}))

	ok, err := orders.ExistsForPair("c1", "p1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = orders.ExistsForPair("c1", "p2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInquiryRepo_Gates(t *testing.T) {
	s := New(NewDocument())
	inquiries := NewInquiryRepository(s)

	require.NoError(t, inquiries.Create(&entity.Inquiry{
		ID: "OF-1", ClientID: "c1", ProductID: "p1", Status: entity.InquiryStatusCatalogSent,
	}))

	reached, err := inquiries.HasReachedCatalog("c1", "p1")
	require.NoError(t, err)
	assert.True(t, reached, "catalog_sent conta como catálogo atingido")

	interested, err := inquiries.HasInterested("c1", "p1")
	require.NoError(t, err)
	assert.False(t, interested, "catalog_sent ainda não é interesse")
}
