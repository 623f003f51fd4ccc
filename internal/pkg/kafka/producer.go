package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/diegoamaro-sudo/levaali/pkg/logger"
)

type Producer struct {
	log    logger.Logger
	client sarama.SyncProducer
}

func NewProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// SyncProducer требует Return.Successes, idempotent исключает дубли при ретраях брокера
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, versionStr string, brokers []string) (*Producer, error) {
	saramaConfig, err := NewProducerConfig(versionStr)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
	)

	err = probeBrokers(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return &Producer{
		log:    kafkaLog,
		client: client,
	}, nil
}

// Send публикует одно сообщение с ключом key в topic.
func (p *Producer) Send(topic, key string, value []byte) error {
	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.client.SendMessage(message)
	if err != nil {
		return fmt.Errorf("send message to %s: %w", topic, err)
	}

	p.log.With(
		logger.NewField("topic", topic),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Debug("Kafka message sent")

	return nil
}

func (p *Producer) Close() error {
	return p.client.Close()
}
