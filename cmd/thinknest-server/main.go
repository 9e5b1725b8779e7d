package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"thinknest/internal/answer"
	"thinknest/internal/chunker"
	"thinknest/internal/config"
	"thinknest/internal/domain"
	"thinknest/internal/engine"
	"thinknest/internal/kb"
	"thinknest/internal/ranker"
	"thinknest/internal/scorer"
	"thinknest/internal/server"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/thinknest/config.yaml if not provided)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	eng := engine.New(chunker.New(cfg.Chunker.MaxChunkSize), ranker.New(scorer.New()), answer.New())
	store := kb.NewStore(cfg.KnowledgeBase.Path)
	if err := store.Load(); err != nil {
		log.Fatalf("failed to load knowledge base: %v", err)
	}
	if snapshot := store.Get(); snapshot != nil {
		log.Printf("knowledge base loaded: %s (%d chunks)", snapshot.Filename, len(snapshot.Chunks))
	}

	srv := server.New(eng, store, domain.ParseAnswerMode(cfg.Answer.DefaultMode))
	log.Printf("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
