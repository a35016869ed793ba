package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockConsumerGroup struct {
	consumeFn func(context.Context, []string, sarama.ConsumerGroupHandler) error
	errorsCh  chan error
}

func (m *mockConsumerGroup) Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	if m.consumeFn != nil {
		return m.consumeFn(ctx, topics, handler)
	}
	return nil
}

func (m *mockConsumerGroup) Errors() <-chan error { return m.errorsCh }

func (m *mockConsumerGroup) Close() error {
	close(m.errorsCh)
	return nil
}

func (m *mockConsumerGroup) Pause(map[string][]int32)  {}
func (m *mockConsumerGroup) Resume(map[string][]int32) {}
func (m *mockConsumerGroup) PauseAll()                 {}
func (m *mockConsumerGroup) ResumeAll()                {}

type mockSession struct {
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (m *mockSession) Claims() map[string][]int32               { return nil }
func (m *mockSession) MemberID() string                         { return "member" }
func (m *mockSession) GenerationID() int32                      { return 1 }
func (m *mockSession) MarkOffset(string, int32, int64, string)  {}
func (m *mockSession) Commit()                                  {}
func (m *mockSession) ResetOffset(string, int32, int64, string) {}
func (m *mockSession) Context() context.Context                 { return m.ctx }
func (m *mockSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marked = append(m.marked, msg.Offset)
}

type mockClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (m *mockClaim) Topic() string                            { return TopicCartEvents }
func (m *mockClaim) Partition() int32                         { return 0 }
func (m *mockClaim) InitialOffset() int64                     { return 0 }
func (m *mockClaim) HighWaterMarkOffset() int64               { return 0 }
func (m *mockClaim) Messages() <-chan *sarama.ConsumerMessage { return m.messages }

func cartMessage(t *testing.T, offset int64, event *CartEvent) *sarama.ConsumerMessage {
	t.Helper()
	value, err := json.Marshal(event)
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Topic: TopicCartEvents, Offset: offset, Key: []byte(event.Namespace), Value: value}
}

func TestConsumeClaim(t *testing.T) {
	var (
		mu       sync.Mutex
		received []EventType
		failures int
	)
	handler := func(_ context.Context, event *CartEvent) error {
		mu.Lock()
		defer mu.Unlock()
		if event.EventType == EventTypeCartCleared && failures < 1 {
			failures++
			return errors.New("temporary")
		}
		received = append(received, event.EventType)
		return nil
	}

	consumer := newConsumer(&mockConsumerGroup{errorsCh: make(chan error)}, []string{TopicCartEvents}, handler, 2, log.WithField("test", "consumer"))
	consumer.retryDelay = time.Millisecond

	claim := &mockClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- cartMessage(t, 1, NewCartEvent(EventTypeItemAdded, "ns", "1", 2, nil))
	claim.messages <- &sarama.ConsumerMessage{Topic: TopicCartEvents, Offset: 2, Value: []byte("{broken")}
	claim.messages <- cartMessage(t, 3, NewCartEvent(EventTypeCartCleared, "ns", "", 0, nil))
	close(claim.messages)

	session := &mockSession{ctx: context.Background()}
	require.NoError(t, consumer.ConsumeClaim(session, claim))

	assert.Equal(t, []int64{1, 2, 3}, session.marked)
	assert.Equal(t, []EventType{EventTypeItemAdded, EventTypeCartCleared}, received)
	assert.Equal(t, 1, failures)
}

func TestConsumerHandle_GivesUp(t *testing.T) {
	calls := 0
	consumer := newConsumer(&mockConsumerGroup{errorsCh: make(chan error)}, nil, func(context.Context, *CartEvent) error {
		calls++
		return errors.New("permanent")
	}, 2, nil)
	consumer.retryDelay = time.Millisecond

	err := consumer.handle(context.Background(), NewCartEvent(EventTypeItemRemoved, "ns", "1", 0, nil))
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestConsumerStartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	consumeCalls := 0
	group := &mockConsumerGroup{
		errorsCh: make(chan error, 1),
		consumeFn: func(context.Context, []string, sarama.ConsumerGroupHandler) error {
			consumeCalls++
			cancel()
			return nil
		},
	}
	group.errorsCh <- errors.New("background error")

	consumer := newConsumer(group, []string{TopicCartEvents}, func(context.Context, *CartEvent) error { return nil }, 0, nil)
	consumer.Start(ctx)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, consumer.Stop())
	assert.Equal(t, 1, consumeCalls)
}

func TestNewConsumer_NoBrokers(t *testing.T) {
	_, err := NewConsumer(nil, "group", []string{TopicCartEvents}, func(context.Context, *CartEvent) error { return nil }, 1)
	assert.Error(t, err)
}

func TestParseCartEvent(t *testing.T) {
	_, err := ParseCartEvent(&sarama.ConsumerMessage{Value: []byte(`{"namespace":"ns"}`)})
	assert.Error(t, err)

	event, err := ParseCartEvent(&sarama.ConsumerMessage{Value: []byte(`{"event_type":"cart.item_added","namespace":"ns","entity_id":"1","quantity":2}`)})
	require.NoError(t, err)
	assert.Equal(t, EventTypeItemAdded, event.EventType)
	assert.Equal(t, 2, event.Quantity)
}
