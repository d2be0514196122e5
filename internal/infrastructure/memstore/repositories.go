package memstore

import "github.com/megaar/comercial-api/internal/domain/repository"

// repos agrega os repositórios sobre um mesmo Source.
type repos struct {
	src Source
}

var _ repository.Repositories = (*repos)(nil)

// NewRepositories devolve o agregado de repositórios sobre o Source dado
// (a Store para uso direto, uma tx dentro de TxRunner.Run).
func NewRepositories(src Source) repository.Repositories {
	return &repos{src: src}
}

func (r *repos) Users() repository.UserRepository             { return NewUserRepository(r.src) }
func (r *repos) Clients() repository.ClientRepository         { return NewClientRepository(r.src) }
func (r *repos) Products() repository.ProductRepository       { return NewProductRepository(r.src) }
func (r *repos) Suppliers() repository.SupplierRepository     { return NewSupplierRepository(r.src) }
func (r *repos) Inquiries() repository.InquiryRepository      { return NewInquiryRepository(r.src) }
func (r *repos) SalesOrders() repository.SalesOrderRepository { return NewSalesOrderRepository(r.src) }
func (r *repos) PurchaseOrders() repository.PurchaseOrderRepository {
	return NewPurchaseOrderRepository(r.src)
}
func (r *repos) Notifications() repository.NotificationRepository {
	return NewNotificationRepository(r.src)
}
