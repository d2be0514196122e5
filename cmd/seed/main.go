// Comando de manutenção: instala o documento semente no slot Redis,
// substituindo o que lá estiver. Usar para repor um ambiente de demonstração.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/megaar/comercial-api/internal/infrastructure/memstore"
	"github.com/megaar/comercial-api/internal/infrastructure/redisstore"
	"github.com/megaar/comercial-api/pkg/config"
	"github.com/megaar/comercial-api/pkg/logger"
)

func main() {
	force := flag.Bool("force", false, "substituir o documento existente")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if !cfg.Redis.Enabled() {
		log.Fatal().Msg("REDIS_ADDR não definido, nada para semear")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snap, err := redisstore.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Key, cfg.Redis.Channel)
	if err != nil {
		log.Fatal().Err(err).Msg("ligação ao Redis")
	}
	defer snap.Close()

	existing, err := snap.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("ler slot")
	}
	if existing != nil && !*force {
		log.Fatal().Msg("o slot já tem documento; use -force para substituir")
	}

	doc, err := memstore.SeedDocument()
	if err != nil {
		log.Fatal().Err(err).Msg("construir documento semente")
	}
	if err := snap.Save(ctx, doc); err != nil {
		log.Fatal().Err(err).Msg("gravar documento semente")
	}
	log.Info().
		Int("users", len(doc.Users)).
		Int("suppliers", len(doc.Suppliers)).
		Msg("documento semente instalado")
}
