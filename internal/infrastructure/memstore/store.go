package memstore

import (
	"context"
	"fmt"
	"sync"
)

// Snapshotter é o slot chave-valor persistente onde o documento completo é
// guardado como um único valor JSON. Load devolve (nil, nil) quando o slot
// está vazio.
type Snapshotter interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// Source dá acesso ao documento com a disciplina de bloqueio adequada:
// a Store fora de transação, uma tx dentro de TxRunner.Run. Os repositórios
// são construídos sobre um Source e funcionam igual nos dois casos.
type Source interface {
	view(fn func(d *Document) error) error
	mutate(fn func(d *Document) error) error
}

// Store é o dono único do documento partilhado. Escritor único: cada escrita
// é um read-modify-write síncrono sob o lock, clonando o documento de
// trabalho para que um erro a meio não deixe mutação parcial visível.
type Store struct {
	mu   sync.RWMutex
	doc  *Document
	snap Snapshotter // nil = só memória (testes)

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

var _ Source = (*Store)(nil)

// New constrói uma Store só em memória sobre o documento dado.
func New(doc *Document) *Store {
	if doc == nil {
		doc = NewDocument()
	}
	return &Store{doc: doc, subs: make(map[int]chan struct{})}
}

// Open carrega o documento do snapshot; com o slot vazio instala o documento
// semente e persiste-o. Toda a escrita posterior volta a gravar o snapshot.
func Open(ctx context.Context, snap Snapshotter) (*Store, error) {
	doc, err := snap.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("memstore: carregar snapshot: %w", err)
	}
	if doc == nil {
		doc, err = SeedDocument()
		if err != nil {
			return nil, fmt.Errorf("memstore: construir semente: %w", err)
		}
		if err := snap.Save(ctx, doc); err != nil {
			return nil, fmt.Errorf("memstore: instalar semente: %w", err)
		}
	}
	s := New(doc)
	s.snap = snap
	return s, nil
}

// view executa fn sob o read lock.
func (s *Store) view(fn func(d *Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.doc)
}

// mutate executa fn sobre um clone do documento; em caso de sucesso persiste
// o clone, troca-o pelo documento atual e difunde a alteração. Um erro de fn
// ou do snapshot deixa o documento corrente intacto.
func (s *Store) mutate(fn func(d *Document) error) error {
	s.mu.Lock()
	work := s.doc.Clone()
	if err := fn(work); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.persist(work); err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = work
	s.mu.Unlock()
	s.broadcast()
	return nil
}

func (s *Store) persist(doc *Document) error {
	if s.snap == nil {
		return nil
	}
	if err := s.snap.Save(context.Background(), doc); err != nil {
		return fmt.Errorf("memstore: gravar snapshot: %w", err)
	}
	return nil
}

// Subscribe regista um subscritor de alterações. O canal recebe um sinal sem
// payload após cada escrita confirmada; o leitor relê o que precisar. O
// cancel devolvido remove a subscrição.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch
	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
	return ch, cancel
}

// broadcast sinaliza todos os subscritores sem bloquear: um subscritor com
// sinal pendente não precisa de outro.
func (s *Store) broadcast() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Reload volta a ler o documento completo do snapshot, substituindo o estado
// em memória. Usado quando outro processo publica uma invalidação; o último
// escritor ganha (modelo de documento local, não base multi-cliente).
func (s *Store) Reload(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}
	doc, err := s.snap.Load(ctx)
	if err != nil {
		return fmt.Errorf("memstore: reler snapshot: %w", err)
	}
	if doc == nil {
		return nil
	}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	s.broadcast()
	return nil
}
