// Package ports define contratos partilhados entre casos de uso.
package ports

import (
	"context"

	"github.com/megaar/comercial-api/internal/domain/repository"
)

// TxRunner executa fn como uma escrita atómica sobre o documento partilhado:
// ou todas as mutações feitas através dos repositórios entregues ficam
// visíveis, ou nenhuma (fn devolve erro → rollback, sem mutação parcial).
//
// View executa fn como leitura pura sobre o documento corrente: sem clone,
// sem persistência e sem difusão. fn não deve mutar através dos
// repositórios entregues.
type TxRunner interface {
	Run(ctx context.Context, fn func(r repository.Repositories) error) error
	View(ctx context.Context, fn func(r repository.Repositories) error) error
}
