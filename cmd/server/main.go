package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"go-debate/internal/api"
	"go-debate/internal/config"
	"go-debate/internal/conversation"
	"go-debate/internal/debate"
	"go-debate/internal/llm"
	redisdb "go-debate/internal/redis"
)

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	ttl := time.Duration(cfg.Debate.TTLHours) * time.Hour
	var store conversation.Store
	if cfg.Redis.Enabled {
		rdb := redisdb.NewClient(cfg)
		store = conversation.NewRedisStore(rdb, ttl)
		log.Printf("[Main] Using redis conversation store (%s)", cfg.Redis.Addr)
	} else {
		mem := conversation.NewMemoryStore(ttl)
		sweeper := conversation.NewSweeper(mem, time.Duration(cfg.Debate.SweepMinutes)*time.Minute)
		go sweeper.Start()
		store = mem
		log.Printf("[Main] Using in-memory conversation store")
	}

	remote := llm.NewBreakerBackend(
		llm.NewOllamaBackend(cfg.Backend.URL, cfg.Backend.Model),
		cfg.Backend.Breaker.FailureThreshold,
		time.Duration(cfg.Backend.Breaker.CooldownSeconds)*time.Second,
	)
	chain := llm.NewChain(remote, llm.NewRuleBackend())

	engine := debate.NewEngine(store, chain,
		cfg.Backend.MaxTokens,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second,
	)

	r := api.SetupRouter(cfg, engine)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
