// Команда cart-events читает топик cart.events и пишет каждое изменение корзины в лог.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cart/internal/messaging/kafka"
)

type config struct {
	brokers    []string
	group      string
	maxRetries int
	jsonLogs   bool
}

func parseConfig(args []string, getenv func(string) string) (config, error) {
	var (
		cfg     config
		brokers string
	)
	flags := flag.NewFlagSet("cart-events", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&brokers, "brokers", getenv("KAFKA_BROKERS"), "comma separated kafka brokers (fallback: KAFKA_BROKERS)")
	flags.StringVar(&cfg.group, "group", "cart-events-tail", "consumer group id")
	flags.IntVar(&cfg.maxRetries, "max-retries", 3, "handler retries per message")
	flags.BoolVar(&cfg.jsonLogs, "json", false, "emit JSON logs")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	for _, broker := range strings.Split(brokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.brokers = append(cfg.brokers, broker)
		}
	}
	if len(cfg.brokers) == 0 {
		return cfg, errors.New("kafka brokers are required (-brokers or KAFKA_BROKERS)")
	}
	if strings.TrimSpace(cfg.group) == "" {
		return cfg, errors.New("group is required")
	}
	return cfg, nil
}

// logEvent возвращает обработчик, который пишет событие одной строкой лога.
func logEvent(logger *log.Entry) kafka.EventHandler {
	return func(_ context.Context, event *kafka.CartEvent) error {
		fields := log.Fields{
			"namespace": event.Namespace,
			"at":        event.Timestamp,
		}
		if event.EntityID != "" {
			fields["entity_id"] = event.EntityID
		}
		if event.Quantity != 0 {
			fields["quantity"] = event.Quantity
		}
		for key, value := range event.Metadata {
			fields["meta."+key] = value
		}
		logger.WithFields(fields).Info(string(event.EventType))
		return nil
	}
}

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	if cfg.jsonLogs {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	logger := log.WithField("component", "cart-events")

	consumer, err := kafka.NewConsumer(cfg.brokers, cfg.group, []string{kafka.TopicCartEvents}, logEvent(logger), cfg.maxRetries)
	if err != nil {
		logger.WithError(err).Fatal("failed to start consumer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.Start(ctx)
	<-ctx.Done()
	if err := consumer.Stop(); err != nil {
		logger.WithError(err).Error("failed to stop consumer")
	}
}
