package domain

import "time"

type CommentId = int64

type Comment struct {
	Id        CommentId `json:"id"`
	Content   string    `json:"content"`
	ArticleId ArticleId `json:"article_id"`
	AuthorId  *UserId   `json:"author_id,omitempty"` // nil after author deletion
	CreatedAt time.Time `json:"created_at"`
}

type CommentView struct {
	Id         CommentId `json:"id"`
	Content    string    `json:"content"`
	Html       string    `json:"html"`
	ArticleId  ArticleId `json:"article_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type CommentCreate struct {
	Content   string    `json:"content" validate:"required"`
	ArticleId ArticleId `json:"article_id" validate:"required"`
}
