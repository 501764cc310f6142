package repository

import "time"

type Board struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

type Post struct {
	ID        int64      `json:"id"`
	BoardID   int64      `json:"board_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// BoardUpdate and PostUpdate carry partial updates: a nil field means "leave
// unchanged". JSON null decodes to nil, so absent and null behave the same.
type BoardUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type PostUpdate struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
