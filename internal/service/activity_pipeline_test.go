package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"idea-garden-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingLogger struct {
	mu      sync.Mutex
	entries []capturedEntry
}

type capturedEntry struct {
	module  string
	message string
	details map[string]interface{}
}

func (l *capturingLogger) record(module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, capturedEntry{module, message, details})
}

func (l *capturingLogger) Debug(module, message string, details map[string]interface{}) {
	l.record(module, message, details)
}
func (l *capturingLogger) Info(module, message string, details map[string]interface{}) {
	l.record(module, message, details)
}
func (l *capturingLogger) Warn(module, message string, details map[string]interface{}) {
	l.record(module, message, details)
}
func (l *capturingLogger) Error(module, message string, details map[string]interface{}) {
	l.record(module, message, details)
}
func (l *capturingLogger) Sync() error { return nil }

func (l *capturingLogger) snapshot() []capturedEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]capturedEntry(nil), l.entries...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestActivityPipelinePublishToAuditLog(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	auditLog := &capturingLogger{}
	consumer := NewConsumerService(pubSub, "IDEA_ACTIVITY", auditLog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(pubSub, "IDEA_ACTIVITY")
	event := events.NewIdeaCreatedEvent("octocat", "2025-04-01-solar", "Solar")
	require.NoError(t, publisher.PublishIdeaActivity(context.Background(), event))

	waitFor(t, func() bool { return len(auditLog.snapshot()) == 1 })

	entry := auditLog.snapshot()[0]
	assert.Equal(t, "activity", entry.module)
	assert.Equal(t, events.EventIdeaCreated, entry.message)

	data, ok := entry.details["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "octocat", data["login"])
	assert.Equal(t, "2025-04-01-solar", data["idea_id"])
	assert.NotEmpty(t, entry.details["occurred_at"])
}

func TestActivityPipelineSkipsMalformedMessages(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	auditLog := &capturingLogger{}
	consumer := NewConsumerService(pubSub, "IDEA_ACTIVITY", auditLog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	bad := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	require.NoError(t, pubSub.Publish("IDEA_ACTIVITY", bad))

	good := NewPublisherService(pubSub, "IDEA_ACTIVITY")
	require.NoError(t, good.PublishIdeaActivity(context.Background(), events.NewIdeaUpdatedEvent("octocat", "2025-04-01-solar", []string{"status"})))

	// The malformed message is acked and dropped; the valid one still lands.
	waitFor(t, func() bool { return len(auditLog.snapshot()) == 1 })
	assert.Equal(t, events.EventIdeaUpdated, auditLog.snapshot()[0].message)
}
