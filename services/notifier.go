package services

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// Notification event names.
const (
	EventNewMatch = "new-match"
	EventSOSAlert = "sos-alert"
)

// Notifier delivers an event to one user. Delivery is best effort: callers
// fire and forget, reliability belongs to the implementation.
type Notifier interface {
	Notify(userID, event string, payload interface{})
}

// SocketNotifier broadcasts to the Socket.IO room the user joined with
// their own id.
type SocketNotifier struct {
	Server *socketio.Server
}

func (n *SocketNotifier) Notify(userID, event string, payload interface{}) {
	if n.Server == nil {
		return
	}
	if ok := n.Server.BroadcastToRoom("/", userID, event, payload); !ok {
		log.Printf("No open socket for user %s, dropping %s event", userID, event)
	}
}
