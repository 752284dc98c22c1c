package dispatch

import "sync"

// QueueConn is a Conn backed by a bounded outbox. A transport drains
// Outbox until Done is closed.
type QueueConn struct {
	id   string
	out  chan Message
	done chan struct{}
	once sync.Once
}

// NewQueueConn creates a connection with room for size pending messages
func NewQueueConn(id string, size int) *QueueConn {
	return &QueueConn{
		id:   id,
		out:  make(chan Message, size),
		done: make(chan struct{}),
	}
}

func (c *QueueConn) ID() string {
	return c.id
}

// Send queues a message without blocking
func (c *QueueConn) Send(msg Message) error {
	select {
	case <-c.done:
		return ErrConnClosed
	default:
	}

	select {
	case c.out <- msg:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Close marks the connection finished. It is safe to call more than once.
func (c *QueueConn) Close() {
	c.once.Do(func() {
		close(c.done)
	})
}

func (c *QueueConn) Outbox() <-chan Message {
	return c.out
}

func (c *QueueConn) Done() <-chan struct{} {
	return c.done
}
