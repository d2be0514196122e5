// Package redisstore guarda o documento completo como um único valor JSON
// numa chave Redis e publica uma invalidação sem payload a cada escrita,
// para que outros processos releiam o documento inteiro.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/megaar/comercial-api/internal/infrastructure/memstore"
)

var _ memstore.Snapshotter = (*Snapshot)(nil)

// Snapshot é o slot chave-valor persistente do documento.
type Snapshot struct {
	client  *redis.Client
	key     string
	channel string
}

// New constrói o snapshot sobre um cliente Redis já ligado.
func New(client *redis.Client, key, channel string) *Snapshot {
	return &Snapshot{client: client, key: key, channel: channel}
}

// Connect cria o cliente Redis, valida a ligação com Ping e devolve o snapshot.
func Connect(ctx context.Context, addr, password string, db int, key, channel string) (*Snapshot, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redisstore: ligação a %s: %w", addr, err)
	}
	return New(client, key, channel), nil
}

// Load lê e desserializa o documento; (nil, nil) quando o slot está vazio.
func (s *Snapshot) Load(ctx context.Context) (*memstore.Document, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redisstore: ler %s: %w", s.key, err)
	}
	var doc memstore.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("redisstore: documento corrompido em %s: %w", s.key, err)
	}
	return &doc, nil
}

// Save serializa e grava o documento completo e publica a invalidação.
func (s *Snapshot) Save(ctx context.Context, doc *memstore.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("redisstore: serializar documento: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redisstore: gravar %s: %w", s.key, err)
	}
	// Mensagem sem payload: os leitores releem o documento completo.
	if err := s.client.Publish(ctx, s.channel, "").Err(); err != nil {
		return fmt.Errorf("redisstore: publicar invalidação: %w", err)
	}
	return nil
}

// Listen subscreve o canal de invalidação e chama onChange por cada
// mensagem, até o contexto ser cancelado. Bloqueante; correr numa goroutine.
func (s *Snapshot) Listen(ctx context.Context, onChange func()) error {
	sub := s.client.Subscribe(ctx, s.channel)
	defer func() { _ = sub.Close() }()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			onChange()
		}
	}
}

// Close fecha o cliente Redis subjacente.
func (s *Snapshot) Close() error {
	return s.client.Close()
}
