//go:build integration

package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/event"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/kafka"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/testutil"
)

func TestKafkaEventPublisher_Broker(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	const topic = "insight-pricing-events-it"
	kc := testutil.NewKafkaContainer(ctx, t, topic)

	producer, err := kafka.NewProducer(kafka.Config{Brokers: kc.Brokers})
	require.NoError(t, err)
	defer producer.Close()

	pub := NewKafkaEventPublisher(producer, topic, discardLogger())
	require.NoError(t, pub.Publish(ctx, sampleEvents()...))

	msg := kc.ReadOne(ctx, t, topic)
	assert.Equal(t, "sub-1", string(msg.Key))

	var found bool
	for _, h := range msg.Headers {
		if h.Key == "event-type" {
			found = true
			assert.Equal(t, event.TypeSubmissionRequested, string(h.Value))
		}
	}
	assert.True(t, found, "event-type header missing")
}
