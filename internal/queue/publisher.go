// Package queue contains the fire-and-forget publisher that mirrors
// successful admin mutations onto the admin.activity queue.  Publishing
// never affects the outcome of the mutation itself: failures are logged
// and dropped, and a publisher built with an empty URL is a no-op.
package queue

import (
    "context"
    "encoding/json"
    "log"
    "sync"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

const activityQueueName = "admin.activity"

// Publisher maintains a lazy AMQP connection to the broker.  The
// connection is dialed on first use and re-dialed after a failure on the
// next publish; there is no retry loop for an individual event.
type Publisher struct {
    url string

    mu   sync.Mutex
    conn *amqp.Connection
    ch   *amqp.Channel
}

// NewPublisher returns a publisher for the given broker URL.  An empty
// URL disables publishing entirely.
func NewPublisher(url string) *Publisher {
    return &Publisher{url: url}
}

// Publish sends one activity event.  Errors are logged, never returned:
// the caller's mutation already succeeded and must not be unwound over a
// broker hiccup.
func (p *Publisher) Publish(ctx context.Context, ev ActivityEvent) {
    if p == nil || p.url == "" {
        return
    }
    if ev.At == "" {
        ev.At = time.Now().UTC().Format(time.RFC3339)
    }
    body, err := json.Marshal(ev)
    if err != nil {
        log.Printf("activity-publisher: encode event failed: %v", err)
        return
    }
    if err := p.send(ctx, body); err != nil {
        log.Printf("activity-publisher: publish failed: %v", err)
        p.reset()
    }
}

// Close tears down the broker connection.
func (p *Publisher) Close() {
    if p == nil {
        return
    }
    p.reset()
}

func (p *Publisher) send(ctx context.Context, body []byte) error {
    p.mu.Lock()
    defer p.mu.Unlock()
    if err := p.ensureChannel(); err != nil {
        return err
    }
    return p.ch.PublishWithContext(ctx, "", activityQueueName, false, false, amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Body:         body,
    })
}

// ensureChannel dials the broker and declares the durable queue when no
// live channel is held.  Caller holds the mutex.
func (p *Publisher) ensureChannel() error {
    if p.ch != nil {
        return nil
    }
    conn, err := amqp.Dial(p.url)
    if err != nil {
        return err
    }
    ch, err := conn.Channel()
    if err != nil {
        _ = conn.Close()
        return err
    }
    if _, err := ch.QueueDeclare(activityQueueName, true, false, false, false, nil); err != nil {
        _ = ch.Close()
        _ = conn.Close()
        return err
    }
    p.conn = conn
    p.ch = ch
    return nil
}

func (p *Publisher) reset() {
    p.mu.Lock()
    defer p.mu.Unlock()
    if p.ch != nil {
        _ = p.ch.Close()
        p.ch = nil
    }
    if p.conn != nil {
        _ = p.conn.Close()
        p.conn = nil
    }
}
