package handlers

import (
	"log/slog"
	"net/http"

	"github.com/acm-club/esports-backend/notifications"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the frontend origin once it is deployed.
		return true
	},
}

type WebSocketHandler struct {
	hub *notifications.Hub
}

func NewWebSocketHandler(hub *notifications.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeNotifications handles GET /ws/notifications/{id}: it upgrades the
// connection and subscribes it to the member's private event stream.
func (h *WebSocketHandler) ServeNotifications(w http.ResponseWriter, r *http.Request) {
	memberID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		slog.Error("failed to upgrade websocket connection",
			slog.Int("member_id", memberID),
			slog.Any("error", err),
		)
		return
	}

	client := &notifications.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: notifications.MemberRoom(memberID),
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
