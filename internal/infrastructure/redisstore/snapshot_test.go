package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/infrastructure/memstore"
	"github.com/megaar/comercial-api/internal/infrastructure/redisstore"
)

const (
	testKey     = "comercial:documento"
	testChannel = "comercial:invalidacao"
)

func testSnapshot(t *testing.T) (*miniredis.Miniredis, *redisstore.Snapshot) {
	t.Helper()
	mr := miniredis.RunT(t)
	snap, err := redisstore.Connect(context.Background(), mr.Addr(), "", 0, testKey, testChannel)
	require.NoError(t, err)
	t.Cleanup(func() { _ = snap.Close() })
	return mr, snap
}

// ──────────────────────────────────────────────────────────────────────────────
// Slot de documento
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_SlotVazioDevolveNil(t *testing.T) {
	_, snap := testSnapshot(t)

	doc, err := snap.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestSaveLoad_DocumentoCompleto(t *testing.T) {
	_, snap := testSnapshot(t)
	ctx := context.Background()

	doc := memstore.NewDocument()
	doc.Clients = []entity.Client{{ID: "c1", Name: "Hotel Atlântico", Email: "compras@atlantico.pt"}}
	doc.Products = []entity.Product{{ID: "p1", Name: "Chiller 50kW", Stock: 4}}
	require.NoError(t, snap.Save(ctx, doc))

	got, err := snap.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Clients, 1)
	assert.Equal(t, "Hotel Atlântico", got.Clients[0].Name)
	require.Len(t, got.Products, 1)
	assert.Equal(t, 4, got.Products[0].Stock)
}

func TestLoad_DocumentoCorrompido(t *testing.T) {
	mr, snap := testSnapshot(t)
	require.NoError(t, mr.Set(testKey, "isto não é JSON"))

	_, err := snap.Load(context.Background())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invalidação
// ──────────────────────────────────────────────────────────────────────────────

// Cada Save publica uma mensagem sem payload no canal de invalidação.
func TestSave_PublicaInvalidacao(t *testing.T) {
	mr, snap := testSnapshot(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()
	sub := client.Subscribe(ctx, testChannel)
	defer func() { _ = sub.Close() }()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, snap.Save(ctx, memstore.NewDocument()))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, testChannel, msg.Channel)
		assert.Empty(t, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("a gravação deve publicar no canal de invalidação")
	}
}

// Listen termina com o erro do contexto quando este é cancelado.
func TestListen_TerminaComContextoCancelado(t *testing.T) {
	_, snap := testSnapshot(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- snap.Listen(ctx, func() {}) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Listen deve terminar quando o contexto é cancelado")
	}
}
