package memstore

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/megaar/comercial-api/internal/domain/entity"
)

// Credenciais iniciais do pessoal interno. Instaladas apenas no primeiro
// arranque com o slot de snapshot vazio; devem ser trocadas em produção.
const (
	SeedAdminEmail    = "admin@mega-ar.pt"
	SeedAdminPassword = "admin123"
	SeedSalesEmail    = "vendas@mega-ar.pt"
	SeedSalesPassword = "vendas123"
	SeedStockEmail    = "stock@mega-ar.pt"
	SeedStockPassword = "stock123"
)

// SeedDocument constrói o documento inicial: três utilizadores internos e
// dois fornecedores. Clientes, produtos e fluxos de negócio começam vazios.
func SeedDocument() (*Document, error) {
	now := time.Now()

	hash := func(pw string) (string, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		return string(h), nil
	}

	adminHash, err := hash(SeedAdminPassword)
	if err != nil {
		return nil, err
	}
	salesHash, err := hash(SeedSalesPassword)
	if err != nil {
		return nil, err
	}
	stockHash, err := hash(SeedStockPassword)
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	doc.Users = []entity.User{
		{
			ID: "u1", Name: "Admin Master", Email: SeedAdminEmail,
			Role: entity.RoleAdmin, Department: entity.DepartmentNone,
			PasswordHash: adminHash, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "u2", Name: "João Vendas", Email: SeedSalesEmail,
			Role: entity.RoleEmployee, Department: entity.DepartmentSales,
			PasswordHash: salesHash, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "u3", Name: "Maria Stock", Email: SeedStockEmail,
			Role: entity.RoleEmployee, Department: entity.DepartmentStock,
			PasswordHash: stockHash, CreatedAt: now, UpdatedAt: now,
		},
	}
	doc.Suppliers = []entity.Supplier{
		{ID: "s1", Name: "CoolTech Global", Contact: "comercial@cooltech.com", Category: "Chillers", CreatedAt: now},
		{ID: "s2", Name: "HVAC Parts", Contact: "suporte@hvac.com", Category: "Componentes", CreatedAt: now},
	}
	return doc, nil
}
