// Package memstore implementa o armazém de documento único em memória:
// todas as entidades vivem num só documento serializável em JSON, lido e
// escrito atomicamente, com subscrição de alterações e snapshot opcional
// num slot chave-valor persistente.
package memstore

import "github.com/megaar/comercial-api/internal/domain/entity"

// Document é o documento único persistido, chaveado por coleção de entidades.
// É a unidade de leitura/escrita de todas as operações.
type Document struct {
	Users          []entity.User          `json:"users"`
	Clients        []entity.Client        `json:"clients"`
	Products       []entity.Product       `json:"products"`
	Suppliers      []entity.Supplier      `json:"suppliers"`
	Inquiries      []entity.Inquiry       `json:"inquiries"`
	SalesOrders    []entity.SalesOrder    `json:"salesOrders"`
	PurchaseOrders []entity.PurchaseOrder `json:"purchaseOrders"`
	Notifications  []entity.Notification  `json:"notifications"`
}

// NewDocument devolve um documento vazio com todas as coleções inicializadas.
func NewDocument() *Document {
	return &Document{
		Users:          []entity.User{},
		Clients:        []entity.Client{},
		Products:       []entity.Product{},
		Suppliers:      []entity.Supplier{},
		Inquiries:      []entity.Inquiry{},
		SalesOrders:    []entity.SalesOrder{},
		PurchaseOrders: []entity.PurchaseOrder{},
		Notifications:  []entity.Notification{},
	}
}

// Clone devolve uma cópia independente do documento. As entidades são tipos
// de valor, por isso copiar as slices chega para isolar escritas em curso.
func (d *Document) Clone() *Document {
	c := &Document{
		Users:          make([]entity.User, len(d.Users)),
		Clients:        make([]entity.Client, len(d.Clients)),
		Products:       make([]entity.Product, len(d.Products)),
		Suppliers:      make([]entity.Supplier, len(d.Suppliers)),
		Inquiries:      make([]entity.Inquiry, len(d.Inquiries)),
		SalesOrders:    make([]entity.SalesOrder, len(d.SalesOrders)),
		PurchaseOrders: make([]entity.PurchaseOrder, len(d.PurchaseOrders)),
		Notifications:  make([]entity.Notification, len(d.Notifications)),
	}
	copy(c.Users, d.Users)
	copy(c.Clients, d.Clients)
	copy(c.Products, d.Products)
	copy(c.Suppliers, d.Suppliers)
	copy(c.Inquiries, d.Inquiries)
	copy(c.SalesOrders, d.SalesOrders)
	copy(c.PurchaseOrders, d.PurchaseOrders)
	copy(c.Notifications, d.Notifications)
	return c
}
