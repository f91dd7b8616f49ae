package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"kulina-go/internal/config"
	"kulina-go/pkg/logger"

	"go.uber.org/zap"
)

// RecipesIndexName 返回 recipes 索引名（可在配置中覆盖）
func RecipesIndexName() string {
	cfg := config.GetElasticsearch()
	if name := cfg.Index["recipes"]; name != "" {
		return name
	}
	return "recipes"
}

// GetRecipesIndexMapping 返回 recipes 索引的 mapping
func GetRecipesIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"author_id": {"type": "long"},
				"author_name": {"type": "keyword"},
				"name": {
					"type": "text",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 256}}
				},
				"text": {"type": "text"},
				"tags": {"type": "keyword"},
				"cooking_time": {"type": "integer"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// EnsureRecipesIndex 确保 recipes 索引存在，不存在则创建
func EnsureRecipesIndex(ctx context.Context) error {
	indexName := RecipesIndexName()

	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch recipes index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(GetRecipesIndexMapping()))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch recipes index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureRecipesIndex(ctx)
}
