package event

import (
	"context"
	"sync"
)

// MemoryPublisher collects events in memory. It is used in tests and as the
// publisher when Kafka is disabled in configuration.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []*Event
}

// NewMemoryPublisher creates an empty MemoryPublisher
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

// Publish emits a single event
func (p *MemoryPublisher) Publish(_ context.Context, evt *Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

// Events returns a snapshot of the published events
func (p *MemoryPublisher) Events() []*Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Event, len(p.events))
	copy(out, p.events)
	return out
}

// Close is a no-op
func (p *MemoryPublisher) Close() {}
