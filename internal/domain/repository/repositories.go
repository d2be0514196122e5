package repository

// Repositories agrega todos os portos de persistência. É o que um TxRunner
// entrega a um caso de uso para mutações atómicas entre entidades.
type Repositories interface {
	Users() UserRepository
	Clients() ClientRepository
	Products() ProductRepository
	Suppliers() SupplierRepository
	Inquiries() InquiryRepository
	SalesOrders() SalesOrderRepository
	PurchaseOrders() PurchaseOrderRepository
	Notifications() NotificationRepository
}
