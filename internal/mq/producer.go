package mq

import (
	"context"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"sui-tx-explainer/pkg/logger"
)

const (
	defaultBatchSize  = 32 * 1024
	defaultLingerMs   = 5
	defaultPartitions = 1
)

type KafkaProducerOption struct {
	Brokers    string // Kafka broker 地址，多个用英文逗号分隔（如 "localhost:9092,localhost:9093"）
	BatchSize  int    // 批处理大小（单位字节），如 32768 = 32KB
	LingerMs   int    // 批处理最大延迟（毫秒），建议 5~20ms 之间
	Topic      string // 解释结果发布 topic
	Partitions int    // topic 分区数
}

// NewKafkaProducer 创建 Kafka 生产者，topic 不存在时自动创建
func NewKafkaProducer(cfg KafkaProducerOption) (*kafka.Producer, error) {
	adminClient, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Brokers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	meta, err := adminClient.GetMetadata(nil, true, 10000)
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata: %w", err)
	}

	// 单 broker 环境副本数只能为 1
	replicationFactor := 1
	if len(meta.Brokers) > 1 {
		replicationFactor = 2
	}
	logger.Infof("[mq] Kafka broker count = %d, using replication factor = %d", len(meta.Brokers), replicationFactor)

	if _, exists := meta.Topics[cfg.Topic]; !exists {
		partitions := cfg.Partitions
		if partitions <= 0 {
			partitions = defaultPartitions
		}
		results, err := adminClient.CreateTopics(ctx, []kafka.TopicSpecification{{
			Topic:             cfg.Topic,
			NumPartitions:     partitions,
			ReplicationFactor: replicationFactor,
		}})
		if err != nil {
			return nil, fmt.Errorf("failed to create topic: %w", err)
		}
		for _, result := range results {
			if result.Error.Code() != kafka.ErrNoError && result.Error.Code() != kafka.ErrTopicAlreadyExists {
				return nil, fmt.Errorf("failed to create topic %s: %w", result.Topic, result.Error)
			}
		}
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	lingerMs := cfg.LingerMs
	if lingerMs <= 0 {
		lingerMs = defaultLingerMs
	}

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Brokers,
		"client.id":         "sui-tx-explainer",

		// 可靠性保障
		"acks":               "all",
		"enable.idempotence": false,

		// 超时与重试
		"delivery.timeout.ms":      30000,
		"request.timeout.ms":       30000,
		"message.send.max.retries": 3,
		"retry.backoff.ms":         100,

		// 性能优化
		"batch.size":       batchSize,
		"linger.ms":        lingerMs,
		"compression.type": "lz4",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	return producer, nil
}
