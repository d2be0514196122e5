// Package authz centraliza a autorização: uma tabela de capacidades que
// mapeia (papel, departamento) para o conjunto de operações permitidas,
// verificada uma vez na fronteira do serviço em vez de ser rederivada
// ecrã a ecrã.
package authz

import "github.com/megaar/comercial-api/internal/domain/entity"

// Actor identifica quem executa uma operação (extraído do token JWT).
type Actor struct {
	UserID     string
	Role       string
	Department string
	ClientID   string // preenchido apenas para role=client
}

// IsStaff indica se o ator é pessoal interno.
func (a Actor) IsStaff() bool {
	return a.Role == entity.RoleAdmin || a.Role == entity.RoleEmployee
}

// Operações do núcleo, na granularidade em que são autorizadas.
const (
	OpManageClients     = "clients:manage"
	OpManageProducts    = "products:manage"
	OpManageSuppliers   = "suppliers:manage"
	OpManageEmployees   = "employees:manage"
	OpCreateInquiry     = "inquiries:create"
	OpAdvanceInquiry    = "inquiries:advance" // transições de pessoal, incluindo rejeição
	OpDeclareInterest   = "inquiries:interest"
	OpConvertInquiry    = "inquiries:convert"
	OpCreateSale        = "sales:create"
	OpConfirmReceipt    = "sales:receipt"
	OpConfirmPayment    = "sales:payment"
	OpViewSales         = "sales:view"
	OpManagePurchases   = "purchases:manage"
	OpReceiveStock      = "purchases:receive"
	OpViewCatalog       = "catalog:view"
	OpViewDashboard     = "dashboard:view"
	OpViewNotifications = "notifications:view"
	OpSendNotification  = "notifications:send"
)

type roleDept struct {
	role string
	dept string
}

// anyDept casa com qualquer departamento do papel.
const anyDept = "*"

// capabilities é a tabela de política. Admins e gestão têm o conjunto
// completo de operações internas; vendas e stock ficam com as operações do
// seu fluxo; clientes só com as ações self-service sobre os próprios dados.
var capabilities = map[roleDept][]string{
	{entity.RoleAdmin, anyDept}:                        staffAll,
	{entity.RoleEmployee, entity.DepartmentManagement}: staffAll,
	{entity.RoleEmployee, entity.DepartmentSales}: {
		OpManageClients, OpCreateInquiry, OpAdvanceInquiry, OpConvertInquiry,
		OpCreateSale, OpConfirmPayment, OpViewSales,
		OpViewCatalog, OpViewDashboard, OpViewNotifications,
	},
	{entity.RoleEmployee, entity.DepartmentStock}: {
		OpManageProducts, OpManageSuppliers, OpManagePurchases, OpReceiveStock,
		OpViewSales, OpViewCatalog, OpViewDashboard, OpViewNotifications,
	},
	{entity.RoleClient, anyDept}: {
		OpCreateInquiry, OpDeclareInterest, OpConfirmReceipt,
		OpViewSales, OpViewCatalog, OpViewDashboard, OpViewNotifications,
	},
}

var staffAll = []string{
	OpManageClients, OpManageProducts, OpManageSuppliers, OpManageEmployees,
	OpCreateInquiry, OpAdvanceInquiry, OpConvertInquiry,
	OpCreateSale, OpConfirmPayment, OpViewSales,
	OpManagePurchases, OpReceiveStock,
	OpViewCatalog, OpViewDashboard, OpViewNotifications, OpSendNotification,
}

// Allowed verifica se o ator pode executar a operação.
func Allowed(a Actor, op string) bool {
	if ops, ok := capabilities[roleDept{a.Role, a.Department}]; ok && contains(ops, op) {
		return true
	}
	if ops, ok := capabilities[roleDept{a.Role, anyDept}]; ok && contains(ops, op) {
		return true
	}
	return false
}

func contains(ops []string, op string) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}
