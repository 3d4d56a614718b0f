package service

import (
	"github.com/scorp5438/articles-app/internal/domain"
	"github.com/scorp5438/articles-app/internal/policy"
)

type CommentService interface {
	Create(actor domain.User, data domain.CommentCreate) (domain.CommentId, error)
	ListByArticle(articleId domain.ArticleId) ([]domain.CommentView, error)
	Delete(actor domain.User, id domain.CommentId) error
}

type Comments struct {
	storage  CommentStorage
	renderer Renderer
}

type CommentStorage interface {
	SaveComment(comment domain.Comment) (domain.CommentId, error)
	Comment(id domain.CommentId) (domain.Comment, error)
	CommentsByArticle(articleId domain.ArticleId) ([]domain.Comment, error)
	DeleteComment(id domain.CommentId) error
	Article(id domain.ArticleId) (domain.Article, error)
	UserById(id domain.UserId) (domain.User, error)
}

func NewComments(storage CommentStorage, renderer Renderer) *Comments {
	return &Comments{storage, renderer}
}

// Create requires an active actor and an existing target article.
func (s *Comments) Create(actor domain.User, data domain.CommentCreate) (domain.CommentId, error) {
	if err := policy.RequireActive(actor); err != nil {
		return 0, err
	}
	if _, err := s.storage.Article(data.ArticleId); err != nil {
		return 0, err
	}

	comment := domain.Comment{
		Content:   data.Content,
		ArticleId: data.ArticleId,
		AuthorId:  &actor.Id,
	}
	return s.storage.SaveComment(comment)
}

func (s *Comments) ListByArticle(articleId domain.ArticleId) ([]domain.CommentView, error) {
	if _, err := s.storage.Article(articleId); err != nil {
		return nil, err
	}

	comments, err := s.storage.CommentsByArticle(articleId)
	if err != nil {
		return nil, err
	}

	names := newAuthorNames(s.storage.UserById)
	views := make([]domain.CommentView, len(comments))
	for i, comment := range comments {
		views[i] = domain.CommentView{
			Id:         comment.Id,
			Content:    comment.Content,
			Html:       s.renderer.Render(comment.Content),
			ArticleId:  comment.ArticleId,
			AuthorName: names.resolve(comment.AuthorId),
			CreatedAt:  comment.CreatedAt,
		}
	}
	return views, nil
}

// Delete lets the owner or staff remove a comment; existence is reported
// before the permission check.
func (s *Comments) Delete(actor domain.User, id domain.CommentId) error {
	comment, err := s.storage.Comment(id)
	if err != nil {
		return err
	}
	if err := policy.CanModify(actor, comment.AuthorId); err != nil {
		return err
	}

	return s.storage.DeleteComment(id)
}
