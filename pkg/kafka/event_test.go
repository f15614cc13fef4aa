package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_Fields(t *testing.T) {
	type ProductData struct {
		ProductID int64  `json:"product_id"`
		Name      string `json:"name"`
	}

	data := ProductData{ProductID: 1, Name: "Premium Headphones"}
	event, err := NewEvent("storefront.product.created", "1", "product", "storefront", data)
	require.NoError(t, err)

	assert.NotEmpty(t, event.EventID, "EventID should be a non-empty UUID")
	assert.Equal(t, "storefront.product.created", event.EventType)
	assert.Equal(t, "1", event.AggregateID)
	assert.Equal(t, "product", event.AggregateType)
	assert.Equal(t, "storefront", event.Source)
	assert.Equal(t, 1, event.Version)
	assert.WithinDuration(t, time.Now().UTC(), event.Timestamp, 2*time.Second)
	assert.NotNil(t, event.Data)

	var roundTripped ProductData
	require.NoError(t, event.UnmarshalData(&roundTripped))
	assert.Equal(t, data, roundTripped)
}

func TestNewEvent_InvalidData(t *testing.T) {
	// Channels are not serializable to JSON.
	_, err := NewEvent("test.event", "agg-1", "test", "storefront", make(chan int))
	require.Error(t, err)
}

func TestEvent_WithCorrelationID(t *testing.T) {
	event, err := NewEvent("storefront.review.created", "7", "review", "storefront", map[string]int{"rating": 5})
	require.NoError(t, err)

	same := event.WithCorrelationID("corr-abc")
	assert.Same(t, event, same)
	assert.Equal(t, "corr-abc", event.CorrelationID)
}

func TestEvent_Marshal(t *testing.T) {
	event, err := NewEvent("storefront.product.created", "3", "product", "storefront", map[string]string{"name": "Bluetooth Speaker"})
	require.NoError(t, err)
	event.WithCorrelationID("corr-123")

	raw, err := event.Marshal()
	require.NoError(t, err)

	var restored Event
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.Equal(t, event.EventID, restored.EventID)
	assert.Equal(t, event.EventType, restored.EventType)
	assert.Equal(t, event.AggregateID, restored.AggregateID)
	assert.Equal(t, event.CorrelationID, restored.CorrelationID)
	assert.JSONEq(t, string(event.Data), string(restored.Data))
}

func TestEvent_CorrelationIDOmittedWhenEmpty(t *testing.T) {
	event, err := NewEvent("storefront.product.created", "3", "product", "storefront", nil)
	require.NoError(t, err)

	raw, err := event.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "correlation_id")
}
