package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/diegoamaro-sudo/levaali/internal/pkg/config"
	"github.com/diegoamaro-sudo/levaali/pkg/logger"
	"github.com/diegoamaro-sudo/levaali/pkg/retrier"
	"github.com/diegoamaro-sudo/levaali/pkg/retrier/backoff_adapter"
)

// Параметры ретраев при первичном подключении к брокерам.
const (
	probeInitialInterval = 1 * time.Second
	probeMaxInterval     = 30 * time.Second
	probeMaxElapsed      = 2 * time.Minute
	probeRandomization   = 0.5
	probeMultiplier      = 2
)

// Consumer оборачивает sarama.ConsumerGroup: перед стартом проверяет
// доступность брокеров, а в Start перезапускает Consume после ребалансов.
type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func consumerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}

	sc := sarama.NewConfig()
	sc.Version = version
	// Читаем с самого старого оффсета: события заказов нельзя терять
	// при первом запуске группы.
	sc.Consumer.Offsets.Initial = sarama.OffsetOldest
	sc.Consumer.Offsets.AutoCommit.Enable = cfg.Sarama.ConsumerOffsetsAutocommit
	sc.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()

	return sc, nil
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string, groupID string, topics []string, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	sc, err := consumerConfig(cfg)
	if err != nil {
		return nil, err
	}

	group, err := sarama.NewConsumerGroup(brokers, groupID, sc)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	consumerLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", groupID),
		logger.NewField("topics", topics),
	)

	if err := probeBrokers(ctx, consumerLog, brokers, sc); err != nil {
		return nil, errors.Join(
			fmt.Errorf("kafka connection: %w", err),
			group.Close(),
		)
	}

	return &Consumer{
		log:     consumerLog,
		group:   group,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start блокирует до отмены контекста или фатальной ошибки группы.
// Consume возвращается без ошибки на каждом ребалансе, поэтому крутим цикл.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	for {
		if err := c.group.Consume(ctx, c.topics, c.handler); err != nil {
			c.log.With(
				logger.NewField("error", err),
			).Error("Error from consumer")
			return fmt.Errorf("consume: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("Context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

// probeBrokers дожидается, пока кластер начнёт отвечать на метаданные.
// В docker-compose брокер поднимается позже воркера, без ожидания
// consumer падал бы на старте.
func probeBrokers(ctx context.Context, log logger.Logger, brokers []string, sc *sarama.Config) error {
	r := backoff_adapter.New(retrier.Config{
		InitialInterval: probeInitialInterval,
		MaxInterval:     probeMaxInterval,
		MaxElapsedTime:  probeMaxElapsed,
		Randomization:   probeRandomization,
		Multiplier:      probeMultiplier,
		ShouldRetry:     nil, // до дедлайна ретраим любые ошибки
	})

	var attempt uint64
	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Kafka connection")

		client, err := sarama.NewClient(brokers, sc)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				log.Error("failed to close Kafka probe client",
					logger.NewField("error", closeErr),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Kafka connection failed after retries")
		return err
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Kafka connection established")
	return nil
}
