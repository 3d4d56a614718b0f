package email

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mu   sync.Mutex
	sent []message
	err  error
}

func (m *mockSender) Send(recipientEmail, displayName, subject, templateName, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, message{recipientEmail, displayName, subject, templateName, link})
	return m.err
}

func (m *mockSender) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func TestDispatcherDelivers(t *testing.T) {
	sender := &mockSender{}
	d := NewDispatcher(sender, 8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	err := d.Send("a@x.com", "Test", "Subject", "reg_confirm", "http://link")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return sender.sentCount() == 1
	}, time.Second, 5*time.Millisecond)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.Equal(t, "a@x.com", sender.sent[0].recipient)
	assert.Equal(t, "reg_confirm", sender.sent[0].templateName)
}

func TestDispatcherSwallowsDeliveryErrors(t *testing.T) {
	sender := &mockSender{err: errors.New("smtp down")}
	d := NewDispatcher(sender, 8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Enqueue must not surface the delivery error.
	err := d.Send("a@x.com", "Test", "Subject", "reg_confirm", "http://link")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return sender.sentCount() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDispatcherFullQueueDoesNotBlock(t *testing.T) {
	sender := &mockSender{}
	d := NewDispatcher(sender, 1)
	// Worker not started: the queue fills up and further sends must return
	// immediately instead of blocking the request path.

	require.NoError(t, d.Send("a@x.com", "Test", "S", "reg_confirm", "l"))

	done := make(chan struct{})
	go func() {
		_ = d.Send("b@x.com", "Test", "S", "reg_confirm", "l")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on a full queue")
	}
}

func TestIsCorrect(t *testing.T) {
	assert.NoError(t, IsCorrect("a@x.com"))
	assert.Error(t, IsCorrect("not-an-email"))
	assert.Error(t, IsCorrect(""))
}
