package messaging

import (
	"sync"

	"go.uber.org/zap"

	"medibook/models"
	"medibook/utils"
)

// Handler receives messages published on a conversation.
type Handler func(models.ChatMessage)

// Channel is an in-process message channel with explicit subscribe and
// unsubscribe. Delivery is at-least-once fan-out to every registered
// handler; there is no acknowledgement protocol. Callers must invoke the
// returned unsubscribe function on teardown or the handler leaks.
type Channel struct {
	mu          sync.RWMutex
	subscribers map[string]map[int64]Handler
	nextID      int64
}

func NewChannel() *Channel {
	return &Channel{subscribers: make(map[string]map[int64]Handler)}
}

// Subscribe registers a handler for a conversation and returns its
// deregistration function.
func (c *Channel) Subscribe(conversationID string, handler Handler) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subscribers[conversationID] == nil {
		c.subscribers[conversationID] = make(map[int64]Handler)
	}
	id := c.nextID
	c.nextID++
	c.subscribers[conversationID][id] = handler

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers[conversationID], id)
		if len(c.subscribers[conversationID]) == 0 {
			delete(c.subscribers, conversationID)
		}
	}
}

// Publish fans a message out to every handler on its conversation. Handlers
// run synchronously on the caller's goroutine; a panicking handler is
// isolated so the remaining handlers still receive the message.
func (c *Channel) Publish(msg models.ChatMessage) {
	c.mu.RLock()
	handlers := make([]Handler, 0, len(c.subscribers[msg.ConversationID]))
	for _, handler := range c.subscribers[msg.ConversationID] {
		handlers = append(handlers, handler)
	}
	c.mu.RUnlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					utils.GetLogger().Error("messaging: handler panicked",
						zap.String("conversationID", msg.ConversationID), zap.Any("recover", r))
				}
			}()
			handler(msg)
		}()
	}
}

// SubscriberCount reports active handlers on a conversation.
func (c *Channel) SubscriberCount(conversationID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subscribers[conversationID])
}
