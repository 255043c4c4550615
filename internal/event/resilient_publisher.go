package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

const retryQueueSize = 256

type retryItem struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps a Bus. Failed publishes are retried in the background
// with exponential backoff and written to a dead-letter file once exhausted.
// Event delivery never blocks catch resolution.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	wg       sync.WaitGroup
	stopOnce sync.Once
	stop     chan struct{}
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(inner Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, retryQueueSize),
		stop:       make(chan struct{}),
	}
	p.wg.Add(1)
	go p.worker()
	return p, nil
}

// Publish attempts delivery once; failures are queued for retry and not reported to the caller
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	err := p.inner.Publish(ctx, evt)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, LogFieldEventType, evt.Type, LogFieldError, err)
	select {
	case p.queue <- retryItem{event: evt, attempt: 1, lastErr: err}:
	default:
		p.writeDeadLetter(retryItem{event: evt, attempt: 1, lastErr: err})
	}
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stop:
			return
		case item := <-p.queue:
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	for item.attempt <= p.maxRetries {
		select {
		case <-p.stop:
			p.writeDeadLetter(item)
			return
		case <-time.After(CalculateRetryDelay(p.retryDelay, item.attempt)):
		}

		err := p.inner.Publish(context.Background(), item.event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded, LogFieldEventType, item.event.Type, LogFieldAttempt, item.attempt)
			return
		}
		logger.Warn(LogMsgEventRetryFailed, LogFieldEventType, item.event.Type, LogFieldAttempt, item.attempt, LogFieldError, err)
		item.lastErr = err
		item.attempt++
	}
	p.writeDeadLetter(item)
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	if err := p.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterFailed, LogFieldEventType, item.event.Type, LogFieldError, err)
	}
}

// Shutdown stops the retry worker and dead-letters anything still queued
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stop) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	for {
		select {
		case item := <-p.queue:
			logger.Warn(LogMsgEventDroppedShutdown, LogFieldEventType, item.event.Type)
			p.writeDeadLetter(item)
		default:
			return p.deadLetter.Close()
		}
	}
}
