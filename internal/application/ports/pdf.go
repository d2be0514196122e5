package ports

import "github.com/megaar/comercial-api/internal/domain/entity"

// OrderNotePDFGenerator gera o documento imprimível de uma nota de
// aquisição.
type OrderNotePDFGenerator interface {
	OrderNote(order *entity.SalesOrder, client *entity.Client, product *entity.Product) ([]byte, error)
}
