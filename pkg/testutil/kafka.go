package testutil

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
)

const kafkaImage = "confluentinc/confluent-local:7.6.1"

// KafkaContainer is a single-node broker for the event publisher and the
// submission outcome consumer.
type KafkaContainer struct {
	Container *kafka.KafkaContainer
	Brokers   []string
}

// NewKafkaContainer starts a broker, creates topics with one partition each,
// and terminates the container when the test ends.
func NewKafkaContainer(ctx context.Context, t *testing.T, topics ...string) *KafkaContainer {
	t.Helper()

	container, err := kafka.Run(ctx, kafkaImage, kafka.WithClusterID("insight-pricing-it"))
	if err != nil {
		t.Fatalf("start kafka container: %v", err)
	}
	kc := &KafkaContainer{Container: container}
	t.Cleanup(func() { kc.terminate(t) })

	kc.Brokers, err = container.Brokers(ctx)
	if err != nil {
		t.Fatalf("kafka brokers: %v", err)
	}
	if len(topics) > 0 {
		kc.createTopics(ctx, t, topics)
	}
	return kc
}

// ReadOne returns the next message on topic from the earliest offset.
func (kc *KafkaContainer) ReadOne(ctx context.Context, t *testing.T, topic string) kafkago.Message {
	t.Helper()

	reader := kafkago.NewReader(kafkago.ReaderConfig{Brokers: kc.Brokers, Topic: topic, StartOffset: kafkago.FirstOffset})
	defer reader.Close()

	msg, err := reader.ReadMessage(ctx)
	if err != nil {
		t.Fatalf("read from %s: %v", topic, err)
	}
	return msg
}

func (kc *KafkaContainer) createTopics(ctx context.Context, t *testing.T, topics []string) {
	t.Helper()

	conn, err := kafkago.DialContext(ctx, "tcp", kc.Brokers[0])
	if err != nil {
		t.Fatalf("dial kafka: %v", err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		t.Fatalf("kafka controller: %v", err)
	}
	ctrl, err := kafkago.DialContext(ctx, "tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		t.Fatalf("dial kafka controller: %v", err)
	}
	defer ctrl.Close()

	configs := make([]kafkago.TopicConfig, 0, len(topics))
	for _, topic := range topics {
		configs = append(configs, kafkago.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	}
	if err := ctrl.CreateTopics(configs...); err != nil {
		t.Fatalf("create topics %v: %v", topics, err)
	}
}

func (kc *KafkaContainer) terminate(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := kc.Container.Terminate(ctx); err != nil {
		t.Logf("warning: failed to terminate kafka container: %v", err)
	}
}
