package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kulina-go/internal/config"
	"kulina-go/internal/infra/database"
	infraES "kulina-go/internal/infra/elasticsearch"
	infraKafka "kulina-go/internal/infra/kafka"
	"kulina-go/internal/repository"
	"kulina-go/internal/service"
	"kulina-go/pkg/logger"

	"go.uber.org/zap"
)

// 搜索索引同步 worker：消费菜谱变更事件，维护 Elasticsearch 的 recipes 索引
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	db := database.Get()
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewCartRepository(db)
	searchService := service.NewSearchService(recipeRepo, favoriteRepo, cartRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topics["recipe_events"]
	if topic == "" {
		logger.Fatal("Kafka topic recipe_events not configured")
	}
	groupID := "kulina-go-search-sync"

	logger.Info("Search sync worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	eventHandler := func(event *infraKafka.RecipeEvent) error {
		switch event.Action {
		case infraKafka.RecipeActionCreated, infraKafka.RecipeActionUpdated:
			return searchService.SyncRecipeToES(ctx, event.RecipeID)
		case infraKafka.RecipeActionDeleted:
			return searchService.DeleteRecipeFromES(ctx, event.RecipeID)
		default:
			logger.Warn("Unknown recipe event action",
				zap.String("action", event.Action),
				zap.Int64("recipe_id", event.RecipeID),
			)
			return nil
		}
	}

	infraKafka.StartRecipeEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, eventHandler)
}
