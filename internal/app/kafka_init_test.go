package app

import (
	"reflect"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestInitKafkaProducer_EmptyBrokers(t *testing.T) {
	logger := log.WithField("test", "kafka")

	for _, brokers := range []string{"", " , "} {
		producer, err := initKafkaProducer(brokers, logger)
		if err != nil {
			t.Errorf("expected no error for brokers %q, got %v", brokers, err)
		}
		if producer != nil {
			t.Errorf("expected nil producer for brokers %q", brokers)
		}
	}
}

func TestInitKafkaProducer_InvalidBrokers(t *testing.T) {
	logger := log.WithField("test", "kafka")

	producer, err := initKafkaProducer("invalid-broker:9999", logger)
	if err == nil {
		t.Error("expected error for invalid brokers")
	}
	if producer != nil {
		t.Error("expected nil producer on error")
	}
}

func TestSplitBrokers(t *testing.T) {
	got := splitBrokers("broker1:9092, broker2:9092,,broker3:9092 ")
	want := []string{"broker1:9092", "broker2:9092", "broker3:9092"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCloseKafkaProducer_NilProducer(t *testing.T) {
	// Не должно паниковать
	closeKafkaProducer(nil, log.WithField("test", "kafka"))
}
