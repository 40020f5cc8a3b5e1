package alertsim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	alerts  chan string
	cleared chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{
		alerts:  make(chan string, 8),
		cleared: make(chan struct{}, 8),
	}
}

func (n *recordingNotifier) Alert(message string) { n.alerts <- message }
func (n *recordingNotifier) Clear()               { n.cleared <- struct{}{} }

func TestNextDelayStaysWithinBounds(t *testing.T) {
	sim := New(Config{MinDelay: 15 * time.Second, MaxDelay: 30 * time.Second}, newRecordingNotifier(), 42, nil)

	for i := 0; i < 1000; i++ {
		d := sim.NextDelay()
		assert.GreaterOrEqual(t, d, 15*time.Second)
		assert.LessOrEqual(t, d, 30*time.Second)
	}
}

func TestPickDrawsFromConfiguredAlerts(t *testing.T) {
	sim := New(Config{MinDelay: time.Second, MaxDelay: time.Second}, newRecordingNotifier(), 7, nil)

	for i := 0; i < 100; i++ {
		assert.Contains(t, DefaultAlerts, sim.Pick())
	}
}

func TestRunFiresAndReschedulesAfterAck(t *testing.T) {
	notifier := newRecordingNotifier()
	sim := New(Config{MinDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}, notifier, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- sim.Run(ctx) }()

	// 第一次触发
	var first string
	select {
	case first = <-notifier.alerts:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first alert")
	}
	assert.Contains(t, DefaultAlerts, first)

	// 确认后应停止提示并重新排期
	sim.Acknowledge()
	select {
	case <-notifier.cleared:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for clear")
	}

	select {
	case <-notifier.alerts:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for rescheduled alert")
	}

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("simulator did not stop on cancel")
	}
}

func TestDefaultsApplied(t *testing.T) {
	sim := New(Config{}, newRecordingNotifier(), 1, nil)

	assert.Equal(t, 15*time.Second, sim.cfg.MinDelay)
	assert.Equal(t, 30*time.Second, sim.cfg.MaxDelay)
	assert.Equal(t, DefaultAlerts, sim.cfg.Alerts)
}
