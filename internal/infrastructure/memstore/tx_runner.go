package memstore

import (
	"context"

	"github.com/megaar/comercial-api/internal/application/ports"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks como uma única escrita atómica do documento.
// fn trabalha sobre um clone através dos repositórios entregues; um erro
// descarta o clone (rollback) e o sucesso troca-o, persiste e difunde.
type TxRunner struct {
	s *Store
}

// NewTxRunner constrói o runner sobre a Store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run implementa ports.TxRunner.
func (r *TxRunner) Run(_ context.Context, fn func(repos repository.Repositories) error) error {
	return r.s.mutate(func(d *Document) error {
		return fn(NewRepositories(&tx{doc: d}))
	})
}

// View executa fn sob o read lock, diretamente sobre o documento corrente:
// sem clone, sem gravação do snapshot e sem difusão aos subscritores.
func (r *TxRunner) View(_ context.Context, fn func(repos repository.Repositories) error) error {
	return r.s.view(func(d *Document) error {
		return fn(NewRepositories(&tx{doc: d}))
	})
}

// tx é um Source já dentro da secção crítica: opera diretamente sobre o
// clone de trabalho, sem bloqueio nem persistência próprios.
type tx struct {
	doc *Document
}

var _ Source = (*tx)(nil)

func (t *tx) view(fn func(d *Document) error) error   { return fn(t.doc) }
func (t *tx) mutate(fn func(d *Document) error) error { return fn(t.doc) }
