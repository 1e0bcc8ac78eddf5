package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/analyzer"
	"github.com/promptforge/promptforge/internal/classifier"
	"github.com/promptforge/promptforge/internal/generator"
	"github.com/promptforge/promptforge/internal/llm"
	"github.com/promptforge/promptforge/internal/storage"
)

// main is the composition root: it loads configuration, initializes all
// services, injects dependencies, and starts the server.
func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting prompt-forge", zap.String("version", Version), zap.String("commit", GitCommit))

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("could not connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	gen, err := newTextGenerator(cfg)
	if err != nil {
		logger.Fatal("could not create LLM client", zap.Error(err))
	}
	logger.Info("LLM client initialized",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.ModelID))

	store := storage.NewRedisStore(rdb, logger)
	handler := NewHandler(
		analyzer.New(gen, cfg.Sampling, logger),
		classifier.New(gen, cfg.Sampling, logger),
		generator.New(gen, cfg.Sampling, logger),
		gen,
		cfg.Sampling,
		store,
		logger,
	)

	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()
	v1 := engine.Group("/api/v1", currentUser())
	{
		v1.POST("/analyze", handler.HandleAnalyze)
		v1.POST("/generate", handler.HandleGenerate)
		v1.POST("/ai-analyze-generate", handler.HandleAIAnalyzeGenerate)
		v1.POST("/classify", handler.HandleClassify)

		v1.GET("/prompts", handler.HandleListPrompts)
		v1.POST("/prompts", handler.HandleSavePrompt)
		v1.POST("/prompts/quick", handler.HandleQuickSave)
		v1.DELETE("/prompts", handler.HandleDeletePrompt)

		v1.GET("/buckets", handler.HandleListBuckets)
		v1.POST("/buckets", handler.HandleCreateBucket)
		v1.PUT("/buckets", handler.HandleUpdateBucket)
		v1.DELETE("/buckets", handler.HandleDeleteBucket)

		v1.GET("/export", handler.HandleExport)

		v1.POST("/playground/test", handler.HandlePlaygroundTest)
		v1.GET("/prompt-answers", handler.HandleListAnswers)
		v1.POST("/prompt-answers", handler.HandleSaveAnswer)
		v1.DELETE("/prompt-answers", handler.HandleDeleteAnswer)
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: engine}
	runServerWithGracefulShutdown(srv, logger)
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("GIN_MODE") == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newTextGenerator creates the configured provider client.
func newTextGenerator(cfg *AppConfig) (llm.TextGenerator, error) {
	switch cfg.Provider {
	case "openai":
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.ModelID)
	default:
		return llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.ModelID)
	}
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server, logger *zap.Logger) {
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
