package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

const defaultRetryDelay = 200 * time.Millisecond

// EventHandler обрабатывает одно событие корзины.
type EventHandler func(ctx context.Context, event *CartEvent) error

// Consumer читает события корзин из consumer group.
type Consumer struct {
	group      sarama.ConsumerGroup
	topics     []string
	handler    EventHandler
	logger     *log.Entry
	maxRetries int
	retryDelay time.Duration
	wg         sync.WaitGroup
}

// NewConsumer подключается к consumer group groupID.
// После maxRetries неудачных повторов сообщение пропускается.
func NewConsumer(brokers []string, groupID string, topics []string, handler EventHandler, maxRetries int) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	config := sarama.NewConfig()
	config.ClientID = defaultClientID
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}
	return newConsumer(group, topics, handler, maxRetries, nil), nil
}

func newConsumer(group sarama.ConsumerGroup, topics []string, handler EventHandler, maxRetries int, logger *log.Entry) *Consumer {
	if logger == nil {
		logger = log.WithField("component", "kafka-consumer")
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Consumer{
		group:      group,
		topics:     topics,
		handler:    handler,
		logger:     logger,
		maxRetries: maxRetries,
		retryDelay: defaultRetryDelay,
	}
}

// Start запускает цикл чтения в фоне; остановка через отмену ctx и Stop.
func (c *Consumer) Start(ctx context.Context) {
	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		for {
			// Consume возвращается при каждом rebalance.
			if err := c.group.Consume(ctx, c.topics, c); err != nil {
				c.logger.WithError(err).Error("error from consumer")
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		defer c.wg.Done()
		for err := range c.group.Errors() {
			c.logger.WithError(err).Error("consumer error")
		}
	}()

	c.logger.WithField("topics", c.topics).Info("kafka consumer started")
}

// Stop закрывает consumer group и дожидается фоновых горутин.
func (c *Consumer) Stop() error {
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("failed to close kafka consumer: %w", err)
	}
	c.wg.Wait()
	c.logger.Info("kafka consumer stopped")
	return nil
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error { return nil }

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim отмечает сообщение обработанным и тогда, когда его не удалось разобрать
// или обработать после всех повторов.
func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}
			fields := log.Fields{
				"topic":     message.Topic,
				"partition": message.Partition,
				"offset":    message.Offset,
			}

			event, err := ParseCartEvent(message)
			if err != nil {
				c.logger.WithError(err).WithFields(fields).Warn("skipping malformed cart event")
			} else if err := c.handle(session.Context(), event); err != nil {
				c.logger.WithError(err).WithFields(fields).Error("cart event processing failed after all retries")
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (c *Consumer) handle(ctx context.Context, event *CartEvent) error {
	var err error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err = c.handler(ctx, event); err == nil {
			return nil
		}
		if attempt == c.maxRetries {
			break
		}
		c.logger.WithError(err).WithFields(log.Fields{
			"event_type": event.EventType,
			"attempt":    attempt + 1,
		}).Warn("cart event processing failed, will retry")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}
	return err
}

// ParseCartEvent разбирает CartEvent из сообщения.
func ParseCartEvent(message *sarama.ConsumerMessage) (*CartEvent, error) {
	var event CartEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart event: %w", err)
	}
	if event.EventType == "" {
		return nil, fmt.Errorf("cart event without event_type")
	}
	return &event, nil
}
