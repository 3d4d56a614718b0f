package domain

import "time"

type ArticleId = int64

type Article struct {
	Id        ArticleId  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	AuthorId  *UserId    `json:"author_id,omitempty"` // nil after author deletion
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ArticleView is the listing/read representation: author resolved to a
// display name and content rendered to sanitized html.
type ArticleView struct {
	Id         ArticleId  `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Html       string     `json:"html"`
	AuthorName string     `json:"author_name"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type ArticleCreate struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required"`
}

type ArticleUpdate struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content,omitempty"`
}
