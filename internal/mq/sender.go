package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"sui-tx-explainer/internal/logic/core"
)

// ExplanationSender 把解释结果以 JSON 发布到固定 topic，digest 作为消息 key
type ExplanationSender struct {
	producer *kafka.Producer
	topic    string
	timeout  time.Duration
}

const defaultSendTimeout = 5 * time.Second

func NewExplanationSender(producer *kafka.Producer, topic string, timeout time.Duration) *ExplanationSender {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &ExplanationSender{producer: producer, topic: topic, timeout: timeout}
}

// Send 发送单条解释结果并等待 ack，受外部 context 与单条超时双重控制
func (s *ExplanationSender) Send(ctx context.Context, expl *core.TransactionExplanation) error {
	value, err := json.Marshal(expl)
	if err != nil {
		return fmt.Errorf("marshal explanation: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = s.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &s.topic,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(expl.Digest),
		Value: value,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("produce error: %w", err)
	}

	select {
	case e, ok := <-deliveryChan:
		if !ok {
			return fmt.Errorf("delivery channel closed unexpectedly")
		}
		msg, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("invalid message type: %T", e)
		}
		if msg.TopicPartition.Error != nil {
			return msg.TopicPartition.Error
		}
		return nil
	case <-time.After(s.timeout):
		go safeDrain(deliveryChan)
		return fmt.Errorf("delivery timeout (>%v)", s.timeout)
	case <-ctx.Done():
		go safeDrain(deliveryChan)
		return fmt.Errorf("ctx cancelled: %w", ctx.Err())
	}
}

// safeDrain 确保 deliveryChan 被 drain，避免 Kafka 回调阻塞
func safeDrain(ch <-chan kafka.Event) {
	defer func() {
		_ = recover()
	}()
	<-ch
}
