package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"theoverse/internal/app"
	"theoverse/internal/app/genesis"
	"theoverse/internal/arbiter"
	"theoverse/internal/config"
	"theoverse/internal/ports/discord"
	"theoverse/internal/store"
	"theoverse/internal/task"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	signingKey, err := cfg.SigningKey()
	if err != nil {
		log.Fatalf("Failed to decode signing key: %v", err)
	}

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	arbiterTimeout := time.Duration(cfg.ArbiterTimeoutSec) * time.Second
	genesisService := genesis.NewService(store.NewMemoryAcolyteStore(), nil)
	arenaService := app.NewService(store.NewMemoryGameStore())
	arbiterClient := arbiter.NewClient(cfg.ArbiterURL, &http.Client{Timeout: arbiterTimeout})
	tasks := task.NewRunner(log, arbiterTimeout)

	handler := discord.NewHandler(cfg.AppID, log, genesisService, arenaService, arbiterClient, session, tasks)

	router := mux.NewRouter()
	router.Use(loggingMiddleware(log))
	router.Handle("/interactions", discord.VerifySignature(signingKey, log)(handler)).Methods(http.MethodPost)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Infof("Listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func loggingMiddleware(log *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
		})
	}
}
