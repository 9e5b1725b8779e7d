package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"thinknest/internal/answer"
	"thinknest/internal/chunker"
	"thinknest/internal/config"
	"thinknest/internal/domain"
	"thinknest/internal/engine"
	"thinknest/internal/kb"
	"thinknest/internal/ranker"
	"thinknest/internal/scorer"
	"thinknest/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var modeFlag string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/thinknest/config.yaml if not provided)")
	flag.StringVar(&modeFlag, "mode", "", "Answer mode: short or detailed (overrides config)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) > 1 {
		fmt.Println("Usage: thinknest [--config=config.yaml] [--mode=short|detailed] [document.txt]")
		os.Exit(1)
	}

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

	var snapshot *domain.KnowledgeBase
	if len(inputs) == 1 {
		data, err := os.ReadFile(inputs[0])
		if err != nil {
			log.Fatalf("failed to read document: %v", err)
		}
		snapshot = &domain.KnowledgeBase{
			Filename:   filepath.Base(inputs[0]),
			Content:    string(data),
			UploadDate: time.Now(),
			Chunks:     eng.Chunk(string(data)),
		}
		if err := store.Set(snapshot); err != nil {
			log.Fatalf("failed to persist knowledge base: %v", err)
		}
	} else {
		if err := store.Load(); err != nil {
			log.Fatalf("failed to load knowledge base: %v", err)
		}
		snapshot = store.Get()
		if snapshot == nil {
			fmt.Println("No knowledge base loaded. Pass a document: thinknest document.txt")
			os.Exit(1)
		}
	}

	mode := domain.ParseAnswerMode(cfg.Answer.DefaultMode)
	if modeFlag != "" {
		mode = domain.ParseAnswerMode(modeFlag)
	}

	m := tui.New(eng, snapshot, mode)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
