package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type postResponse struct {
	ID        int64  `json:"id"`
	BoardID   int64  `json:"board_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func TestCreatePost_Success(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/boards", `{"title":"general"}`)

	rec := do(t, router, http.MethodPost, "/posts", `{"board_id":1,"title":"hello","content":"first post"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var post postResponse
	decode(t, rec.Body.Bytes(), &post)
	if post.ID != 1 || post.BoardID != 1 || post.Title != "hello" {
		t.Errorf("unexpected post: %+v", post)
	}
}

// checks that a post referencing a missing board is the caller's fault:
// 400 with code INVALID_BOARD, not a 404
func TestCreatePost_UnknownBoard(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/posts", `{"board_id":7,"title":"hello","content":"first"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d body=%s", rec.Code, rec.Body.String())
	}

	var body errorResponse
	decode(t, rec.Body.Bytes(), &body)
	if body.Code != "INVALID_BOARD" {
		t.Errorf("want errorCode INVALID_BOARD, got %q", body.Code)
	}
	if body.StatusCode != http.StatusBadRequest {
		t.Errorf("want statusCode 400 in body, got %d", body.StatusCode)
	}
}

func TestCreatePost_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/boards", `{"title":"general"}`)

	rec := do(t, router, http.MethodPost, "/posts", `{"board_id":1,"title":"no content"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

// checks the board posts listing and the board_id query filter
func TestListPosts_Filter(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/boards", `{"title":"general"}`)
	do(t, router, http.MethodPost, "/boards", `{"title":"meta"}`)
	do(t, router, http.MethodPost, "/posts", `{"board_id":1,"title":"g1","content":"c"}`)
	do(t, router, http.MethodPost, "/posts", `{"board_id":2,"title":"m1","content":"c"}`)
	do(t, router, http.MethodPost, "/posts", `{"board_id":1,"title":"g2","content":"c"}`)

	var posts []postResponse

	rec := do(t, router, http.MethodGet, "/posts", "")
	decode(t, rec.Body.Bytes(), &posts)
	if len(posts) != 3 {
		t.Fatalf("want 3 posts, got %d", len(posts))
	}

	rec = do(t, router, http.MethodGet, "/posts?board_id=1", "")
	decode(t, rec.Body.Bytes(), &posts)
	if len(posts) != 2 || posts[0].Title != "g1" || posts[1].Title != "g2" {
		t.Fatalf("want [g1 g2], got %+v", posts)
	}

	rec = do(t, router, http.MethodGet, "/boards/1/posts", "")
	decode(t, rec.Body.Bytes(), &posts)
	if len(posts) != 2 {
		t.Fatalf("want 2 posts via board listing, got %d", len(posts))
	}

	if rec := do(t, router, http.MethodGet, "/posts?board_id=abc", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400 for bad filter, got %d", rec.Code)
	}
}

// checks that deleting a board leaves its posts fully readable
func TestDeleteBoard_PostsSurvive(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/boards", `{"title":"general"}`)
	do(t, router, http.MethodPost, "/posts", `{"board_id":1,"title":"hello","content":"first"}`)

	if rec := do(t, router, http.MethodDelete, "/boards/1", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete board: want 204, got %d", rec.Code)
	}

	rec := do(t, router, http.MethodGet, "/posts/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want post readable after board delete, got %d body=%s", rec.Code, rec.Body.String())
	}

	var posts []postResponse
	rec = do(t, router, http.MethodGet, "/boards/1/posts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200 listing posts of deleted board, got %d", rec.Code)
	}
	decode(t, rec.Body.Bytes(), &posts)
	if len(posts) != 1 {
		t.Fatalf("want 1 post listed, got %d", len(posts))
	}

	// New posts on the deleted board are rejected.
	if rec := do(t, router, http.MethodPost, "/posts", `{"board_id":1,"title":"x","content":"y"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400 creating post on deleted board, got %d", rec.Code)
	}
}

func TestUpdatePost_PartialAndNotFound(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/boards", `{"title":"general"}`)
	do(t, router, http.MethodPost, "/posts", `{"board_id":1,"title":"hello","content":"first"}`)

	rec := do(t, router, http.MethodPut, "/posts/1", `{"content":"edited"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var post postResponse
	decode(t, rec.Body.Bytes(), &post)
	if post.Title != "hello" || post.Content != "edited" {
		t.Errorf("want only content changed, got %+v", post)
	}

	if rec := do(t, router, http.MethodPut, "/posts/9", `{"content":"x"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}

func TestDeletePost_Lifecycle(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/boards", `{"title":"general"}`)
	do(t, router, http.MethodPost, "/posts", `{"board_id":1,"title":"hello","content":"first"}`)

	if rec := do(t, router, http.MethodDelete, "/posts/1", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d", rec.Code)
	}
	if rec := do(t, router, http.MethodGet, "/posts/1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("want 404 after delete, got %d", rec.Code)
	}
	if rec := do(t, router, http.MethodDelete, "/posts/1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("want 404 on repeat delete, got %d", rec.Code)
	}

	// The id is not reused by the next create.
	rec := do(t, router, http.MethodPost, "/posts", `{"board_id":1,"title":"next","content":"c"}`)
	var post postResponse
	decode(t, rec.Body.Bytes(), &post)
	if post.ID != 2 {
		t.Errorf("want id 2, got %d", post.ID)
	}
}

// checks that post mutations reach websocket subscribers of the board
func TestPostEvents_ReachSubscribers(t *testing.T) {
	router := newTestRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	post(t, srv.URL+"/boards", `{"title":"general"}`)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?board_id=1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// First frame is the subscription ack; consuming it guarantees the hub
	// has registered this connection.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("read ack: %v", err)
	}

	post(t, srv.URL+"/posts", `{"board_id":1,"title":"hello","content":"first"}`)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read event: %v", err)
	}

	var ev struct {
		Event string       `json:"event"`
		Post  postResponse `json:"post"`
	}
	if err := json.Unmarshal(message, &ev); err != nil {
		t.Fatalf("decode event %s: %v", message, err)
	}
	if ev.Event != "post_created" || ev.Post.Title != "hello" {
		t.Errorf("unexpected event: %+v", ev)
	}
}

// checks that subscribing to a missing board is refused before the upgrade
func TestSubscribe_UnknownBoard(t *testing.T) {
	router := newTestRouter(t)

	if rec := do(t, router, http.MethodGet, "/ws?board_id=9", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
	if rec := do(t, router, http.MethodGet, "/ws?board_id=abc", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func post(t *testing.T, url, body string) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST %s: want 201, got %d", url, resp.StatusCode)
	}
}
