package websocket

import (
	"log"
	"sync"

	"github.com/medconnecter/med_connecter/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Push = make(chan *models.Notification)

// RunHub fans notifications out to the recipient's open connection, if
// any. Notifications are persisted before they reach this channel, so a
// missed push is recoverable from the notifications endpoint.
func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case notification := <-Push:
			clientsMu.RLock()
			conn, ok := clients[notification.UserID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(notification); err != nil {
				log.Printf("Error pushing notification to client %s: %v", notification.UserID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, notification.UserID)
				clientsMu.Unlock()
			}
		}
	}
}
