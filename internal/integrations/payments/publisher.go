package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/segmentio/kafka-go"
)

// Publisher отправляет события о необходимости оплаты в Kafka
type Publisher struct {
	writer MessageWriter
	topic  string
	log    Logger
}

// NewKafkaWriter создает writer для списка брокеров через запятую
func NewKafkaWriter(brokers string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(splitBrokers(brokers)...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// NewPublisher создает новый экземпляр публикатора
func NewPublisher(writer MessageWriter, topic string, log Logger) *Publisher {
	return &Publisher{
		writer: writer,
		topic:  topic,
		log:    log,
	}
}

// NotifyPaymentRequired публикует событие. Ключ сообщения - ID занятия,
// поэтому все события одного занятия попадают в одну партицию.
func (p *Publisher) NotifyPaymentRequired(ctx context.Context, req PaymentRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: encode payload: %v", ErrPublish, err)
	}

	key := strconv.FormatInt(req.OccurrenceID, 10)
	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte("occurrence-" + key)},
			{Key: "event_type", Value: []byte(EventPaymentRequired)},
			{Key: "tenant_id", Value: []byte(strconv.FormatInt(req.TenantID, 10))},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.log.Info("Published %s for occurrence_id=%d", EventPaymentRequired, req.OccurrenceID)
	return nil
}

// Close закрывает writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func splitBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
