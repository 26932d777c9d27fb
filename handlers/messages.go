package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"medibook/models"
	"medibook/services/messaging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The browser client is served from a separate origin in development.
		return true
	},
}

// MessagesHandler bridges websocket clients onto the in-process message
// channel for a conversation.
type MessagesHandler struct {
	channel *messaging.Channel
	logger  *zap.Logger
}

func NewMessagesHandler(channel *messaging.Channel, logger *zap.Logger) *MessagesHandler {
	return &MessagesHandler{channel: channel, logger: logger}
}

// ServeConversation upgrades the connection, subscribes it to the
// conversation and pumps messages both ways until the peer disconnects.
// The subscription is always deregistered on teardown.
func (h *MessagesHandler) ServeConversation(c *gin.Context) {
	conversationID := c.Param("conversationID")
	senderID := c.GetString("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed",
			zap.String("conversationID", conversationID), zap.Error(err))
		return
	}
	defer conn.Close()

	// Gorilla permits one concurrent writer; fan-out callbacks and control
	// frames share this lock.
	var writeMu sync.Mutex
	unsubscribe := h.channel.Subscribe(conversationID, func(msg models.ChatMessage) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Warn("websocket write failed",
				zap.String("conversationID", conversationID), zap.Error(err))
		}
	})
	defer unsubscribe()

	for {
		var msg models.ChatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed",
					zap.String("conversationID", conversationID), zap.Error(err))
			}
			return
		}
		msg.ConversationID = conversationID
		if senderID != "" {
			msg.SenderID = senderID
		}
		msg.SentAt = time.Now()
		h.channel.Publish(msg)
	}
}
