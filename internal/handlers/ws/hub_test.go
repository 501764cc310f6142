package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gfdmit/board-service/internal/repository"
)

func dialHub(t *testing.T, hub *Hub, boardID int64) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Subscribe(w, r, boardID)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// The ack guarantees the hub has registered us before we return.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read ack: %v", err)
	}
	var ack Event
	if err := json.Unmarshal(message, &ack); err != nil || ack.Event != EventSubscribed {
		t.Fatalf("want subscribed ack, got %s", message)
	}

	return conn
}

func TestHub_BroadcastReachesBoardSubscribers(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, 1)

	post := &repository.Post{ID: 5, BoardID: 1, Title: "hello"}
	hub.Broadcast(1, Event{Event: EventPostCreated, Post: post})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var got Event
	if err := json.Unmarshal(message, &got); err != nil {
		t.Fatalf("unmarshal %s: %v", message, err)
	}
	if got.Event != EventPostCreated {
		t.Errorf("want event %s, got %s", EventPostCreated, got.Event)
	}
	if got.Post == nil || got.Post.ID != 5 {
		t.Errorf("want post 5, got %+v", got.Post)
	}
}

func TestHub_BroadcastSkipsOtherBoards(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, 2)

	hub.Broadcast(1, Event{Event: EventPostCreated, Post: &repository.Post{ID: 9, BoardID: 1}})

	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("want no message for another board's subscriber")
	}
}
