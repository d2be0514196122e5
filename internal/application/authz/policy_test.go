package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/megaar/comercial-api/internal/application/authz"
	"github.com/megaar/comercial-api/internal/domain/entity"
)

func TestAllowed_TabelaDeCapacidades(t *testing.T) {
	admin := authz.Actor{UserID: "u1", Role: entity.RoleAdmin}
	management := authz.Actor{UserID: "u2", Role: entity.RoleEmployee, Department: entity.DepartmentManagement}
	sales := authz.Actor{UserID: "u3", Role: entity.RoleEmployee, Department: entity.DepartmentSales}
	stock := authz.Actor{UserID: "u4", Role: entity.RoleEmployee, Department: entity.DepartmentStock}
	client := authz.Actor{UserID: "u5", Role: entity.RoleClient, ClientID: "c1"}

	cases := []struct {
		name  string
		actor authz.Actor
		op    string
		want  bool
	}{
		{"admin gere funcionários", admin, authz.OpManageEmployees, true},
		{"admin recebe mercadoria", admin, authz.OpReceiveStock, true},
		{"gestão tem o conjunto completo", management, authz.OpManageEmployees, true},
		{"vendas emite notas", sales, authz.OpCreateSale, true},
		{"vendas converte ofícios", sales, authz.OpConvertInquiry, true},
		{"vendas não gere produtos", sales, authz.OpManageProducts, false},
		{"vendas não recebe mercadoria", sales, authz.OpReceiveStock, false},
		{"stock gere encomendas", stock, authz.OpManagePurchases, true},
		{"stock recebe mercadoria", stock, authz.OpReceiveStock, true},
		{"stock não emite notas", stock, authz.OpCreateSale, false},
		{"stock não gere clientes", stock, authz.OpManageClients, false},
		{"cliente abre ofícios", client, authz.OpCreateInquiry, true},
		{"cliente declara interesse", client, authz.OpDeclareInterest, true},
		{"cliente confirma receção", client, authz.OpConfirmReceipt, true},
		{"cliente não emite notas", client, authz.OpCreateSale, false},
		{"cliente não avança ofícios", client, authz.OpAdvanceInquiry, false},
		{"cliente não cobra pagamentos", client, authz.OpConfirmPayment, false},
		{"cliente não envia notificações", client, authz.OpSendNotification, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, authz.Allowed(tc.actor, tc.op))
		})
	}
}

func TestAllowed_PapelDesconhecido(t *testing.T) {
	ghost := authz.Actor{UserID: "u9", Role: "auditor"}
	assert.False(t, authz.Allowed(ghost, authz.OpViewDashboard),
		"papel fora da tabela não tem capacidades")
}

func TestIsStaff(t *testing.T) {
	assert.True(t, authz.Actor{Role: entity.RoleAdmin}.IsStaff())
	assert.True(t, authz.Actor{Role: entity.RoleEmployee}.IsStaff())
	assert.False(t, authz.Actor{Role: entity.RoleClient}.IsStaff())
}
