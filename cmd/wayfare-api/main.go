// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wayfare/internal/ai"
	"wayfare/internal/config"
	httptransport "wayfare/internal/http"
	"wayfare/internal/infra"
	"wayfare/internal/modules/account"
	"wayfare/internal/modules/assistant"
	"wayfare/internal/modules/profile"
	"wayfare/internal/modules/suggest"
	"wayfare/internal/modules/trip"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	var generator ai.Generator
	if cfg.AI.Available {
		generator = ai.NewGeminiClient(cfg.AI.GeminiKey, cfg.AI.GeminiBaseURL)
	} else {
		log.Print("main: no Gemini key configured; trip plans use the fallback generator")
	}
	plannerSvc := ai.NewService(generator)

	suggestSvc := suggest.NewService(suggest.NewCache(redisClient))

	tripSvc := trip.NewService(trip.NewStore(dbPool))
	profileSvc := profile.NewService(profile.NewStore(dbPool))

	issuer := account.NewTokenIssuer(cfg.Auth.JWTSecret)
	accountSvc := account.NewService(account.NewStore(dbPool), issuer)

	assistantSvc := assistant.NewService(assistant.NewStore(dbPool), assistantProvider(cfg))

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Planner:   plannerSvc,
		Suggest:   suggestSvc,
		Trips:     tripSvc,
		Profiles:  profileSvc,
		Account:   accountSvc,
		Assistant: assistantSvc,
		Issuer:    issuer,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("main: listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func assistantProvider(cfg config.Config) assistant.Provider {
	switch cfg.Assistant.Provider {
	case "openai":
		if cfg.Assistant.OpenAIKey == "" {
			log.Print("main: assistant provider openai selected but OPENAI_API_KEY is unset")
			return nil
		}
		return assistant.NewOpenAIProvider(cfg.Assistant.OpenAIKey)
	case "gemini":
		if cfg.AI.GeminiKey == "" {
			log.Print("main: assistant provider gemini selected but GEMINI_API_KEY is unset")
			return nil
		}
		return assistant.NewGeminiProvider(cfg.AI.GeminiKey)
	default:
		log.Printf("main: unknown assistant provider %q", cfg.Assistant.Provider)
		return nil
	}
}
