package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kulina-go/internal/config"
	"kulina-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 菜谱事件动作
const (
	RecipeActionCreated = "created"
	RecipeActionUpdated = "updated"
	RecipeActionDeleted = "deleted"
)

// RecipeEvent 菜谱变更事件消息体，worker 据此维护搜索索引
type RecipeEvent struct {
	RecipeID int64  `json:"recipe_id"`
	Action   string `json:"action"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendRecipeEvent 发送菜谱变更事件
// 生产者未初始化时静默跳过，索引同步是尽力而为的旁路
func SendRecipeEvent(ctx context.Context, topic string, event *RecipeEvent) error {
	if producer == nil || topic == "" {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("recipe-%d", event.RecipeID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send recipe event: %w", err)
	}

	logger.Info("Recipe event sent",
		zap.Int64("recipe_id", event.RecipeID),
		zap.String("action", event.Action),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
