package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/application/dto"
	"github.com/megaar/comercial-api/internal/application/notification"
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
	"github.com/megaar/comercial-api/internal/infrastructure/memstore"
)

var (
	adminActor  = authz.Actor{UserID: "u1", Role: entity.RoleAdmin}
	salesActor  = authz.Actor{UserID: "u2", Role: entity.RoleEmployee, Department: entity.DepartmentSales}
	clientActor = authz.Actor{UserID: "uc1", Role: entity.RoleClient, ClientID: "c1"}
)

func newDispatcher(t *testing.T) (*notification.Dispatcher, repository.Repositories) {
	t.Helper()
	doc := memstore.NewDocument()
	doc.Users = []entity.User{
		{ID: "u1", Name: "Admin", Email: "a@x.pt", Role: entity.RoleAdmin},
		{ID: "u2", Name: "Vendas", Email: "v@x.pt", Role: entity.RoleEmployee, Department: entity.DepartmentSales},
		{ID: "uc1", Name: "Cliente", Email: "c@x.pt", Role: entity.RoleClient, ClientID: "c1"},
	}
	store := memstore.New(doc)
	repos := memstore.NewRepositories(store)
	return notification.NewDispatcher(repos.Notifications()), repos
}

// Um broadcast fica como registo único e aparece no feed de todos.
func TestSend_BroadcastVisivelATodos(t *testing.T) {
	d, _ := newDispatcher(t)

	require.NoError(t, d.Send(dto.NotifyRequest{
		Target: entity.BroadcastTarget, Title: "Inventário Anual", Message: "Armazém fechado sexta-feira.",
	}))

	for _, actor := range []authz.Actor{adminActor, salesActor, clientActor} {
		feed, err := d.FeedFor(actor)
		require.NoError(t, err)
		require.Len(t, feed, 1)
		assert.Equal(t, "Inventário Anual", feed[0].Title)
		assert.Equal(t, entity.NotificationInfo, feed[0].Type, "tipo omisso degrada para info")
	}
}

func TestFeedFor_DirigidaSoAoDestinatario(t *testing.T) {
	d, _ := newDispatcher(t)

	require.NoError(t, d.Send(dto.NotifyRequest{Target: "u2", Title: "Só Vendas", Type: entity.NotificationWarning}))

	feed, err := d.FeedFor(salesActor)
	require.NoError(t, err)
	assert.Len(t, feed, 1)

	feed, err = d.FeedFor(adminActor)
	require.NoError(t, err)
	assert.Empty(t, feed, "notificação dirigida não aparece no feed de outros")
}

func TestMarkRead_EContagem(t *testing.T) {
	d, _ := newDispatcher(t)

	require.NoError(t, d.Send(dto.NotifyRequest{Target: "u2", Title: "A"}))
	require.NoError(t, d.Send(dto.NotifyRequest{Target: "u2", Title: "B"}))
	require.NoError(t, d.Send(dto.NotifyRequest{Target: entity.BroadcastTarget, Title: "C"}))

	count, err := d.UnreadCount(salesActor)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	feed, err := d.FeedFor(salesActor)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "C", feed[0].Title, "mais recente primeiro")

	require.NoError(t, d.MarkRead(salesActor, feed[1].ID))
	count, err = d.UnreadCount(salesActor)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// fora do feed do ator a marcação falha
	err = d.MarkRead(adminActor, feed[1].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, d.MarkAllRead(salesActor))
	count, err = d.UnreadCount(salesActor)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

// O fan-out ao pessoal cria registos individuais, não um broadcast.
func TestFanOutStaff_RegistosIndividuais(t *testing.T) {
	d, repos := newDispatcher(t)

	require.NoError(t, notification.FanOutStaff(repos.Users(), repos.Notifications(),
		"Rutura de Stock", "Pedido AQ-1 gerou encomenda automática.", entity.NotificationWarning))

	feed, err := d.FeedFor(clientActor)
	require.NoError(t, err)
	assert.Empty(t, feed, "o fan-out ao pessoal não chega aos clientes")

	feed, err = d.FeedFor(salesActor)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "u2", feed[0].UserID)
}

// Sem utilizador associado ao cliente a notificação é um no-op.
func TestNotifyClientUser_SemUtilizadorNoOp(t *testing.T) {
	_, repos := newDispatcher(t)

	require.NoError(t, notification.NotifyClientUser(repos.Users(), repos.Notifications(),
		"c-sem-user", "Título", "Mensagem", entity.NotificationInfo))

	count, err := repos.Notifications().UnreadCount("uc1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
