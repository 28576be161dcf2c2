// Package publish delivers per-generation notifications from the realtime
// runtime to renderers and other observers.
package publish

import (
	"context"
	"sync"
	"time"
)

// GenerationEvent describes one tick of the runtime.
type GenerationEvent struct {
	Tick       uint64        `json:"tick" yaml:"tick"`
	Generation uint64        `json:"generation" yaml:"generation"`
	Population int           `json:"population" yaml:"population"`
	Paused     bool          `json:"paused" yaml:"paused"`
	Elapsed    time.Duration `json:"elapsed" yaml:"elapsed"`
	Err        error         `json:"-" yaml:"-"`
}

// Publisher receives generation events.
type Publisher interface {
	Publish(ctx context.Context, event GenerationEvent) error
	Close() error
}

// ChannelPublisher forwards events to a Go channel.
// Publish never blocks; events are dropped when the channel is full.
type ChannelPublisher struct {
	mu     sync.Mutex
	ch     chan<- GenerationEvent
	closed bool
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- GenerationEvent) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event GenerationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	select {
	case p.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // drop
	}
}

// Close closes the output channel. Later publishes are ignored.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
	return nil
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, GenerationEvent) error { return nil }
func (Nop) Close() error                                   { return nil }
