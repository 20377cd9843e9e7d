package ws

import (
	"net/http"

	"caseshare_backend/internal/logger"
	"caseshare_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin is checked by the auth middleware's token
	},
}

// Handler upgrades authenticated HTTP requests to websocket connections
// and binds them to the room of the authenticated user.
type Handler struct {
	hub    *Hub
	router *Router
}

func NewHandler(hub *Hub, router *Router) *Handler {
	return &Handler{hub: hub, router: router}
}

// ServeWS is mounted behind the auth middleware; the room is taken from
// the verified token, not from the client payload.
func (h *Handler) ServeWS(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err.Error())
		return
	}

	client := newClient(userID, conn, h.hub, h.router)
	h.hub.Register(client)

	go client.writePump()
	go client.readPump()

	client.Emit(Event{Event: EventConnect})
	logger.Info("websocket client connected", "user_id", userID)
}
