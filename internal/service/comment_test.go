package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorp5438/articles-app/internal/domain"
	internal_errors "github.com/scorp5438/articles-app/internal/errors"
)

type MockCommentStorage struct {
	SaveCommentFunc       func(comment domain.Comment) (domain.CommentId, error)
	CommentFunc           func(id domain.CommentId) (domain.Comment, error)
	CommentsByArticleFunc func(articleId domain.ArticleId) ([]domain.Comment, error)
	DeleteCommentFunc     func(id domain.CommentId) error
	ArticleFunc           func(id domain.ArticleId) (domain.Article, error)
	UserByIdFunc          func(id domain.UserId) (domain.User, error)
}

func (m *MockCommentStorage) SaveComment(comment domain.Comment) (domain.CommentId, error) {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(comment)
	}
	return 1, nil
}

func (m *MockCommentStorage) Comment(id domain.CommentId) (domain.Comment, error) {
	if m.CommentFunc != nil {
		return m.CommentFunc(id)
	}
	authorId := domain.UserId(1)
	return domain.Comment{Id: id, Content: "comment", ArticleId: 1, AuthorId: &authorId}, nil
}

func (m *MockCommentStorage) CommentsByArticle(articleId domain.ArticleId) ([]domain.Comment, error) {
	if m.CommentsByArticleFunc != nil {
		return m.CommentsByArticleFunc(articleId)
	}
	return nil, nil
}

func (m *MockCommentStorage) DeleteComment(id domain.CommentId) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) Article(id domain.ArticleId) (domain.Article, error) {
	if m.ArticleFunc != nil {
		return m.ArticleFunc(id)
	}
	return domain.Article{Id: id, Title: "title"}, nil
}

func (m *MockCommentStorage) UserById(id domain.UserId) (domain.User, error) {
	if m.UserByIdFunc != nil {
		return m.UserByIdFunc(id)
	}
	return domain.User{Id: id, FullName: "Author Name"}, nil
}

func TestCommentCreate(t *testing.T) {
	data := domain.CommentCreate{Content: "comment", ArticleId: 1}

	t.Run("active user comments on an existing article", func(t *testing.T) {
		storage := &MockCommentStorage{}
		var saved domain.Comment
		storage.SaveCommentFunc = func(comment domain.Comment) (domain.CommentId, error) {
			saved = comment
			return 7, nil
		}
		service := NewComments(storage, &MockRenderer{})

		id, err := service.Create(activeUser, data)

		require.NoError(t, err)
		assert.Equal(t, domain.CommentId(7), id)
		assert.Equal(t, domain.ArticleId(1), saved.ArticleId)
		require.NotNil(t, saved.AuthorId)
		assert.Equal(t, activeUser.Id, *saved.AuthorId)
	})

	t.Run("inactive user is rejected", func(t *testing.T) {
		service := NewComments(&MockCommentStorage{}, &MockRenderer{})

		_, err := service.Create(inactiveUser, data)

		require.Error(t, err)
		assert.Equal(t, 403, internal_errors.StatusCode(err))
		assert.Equal(t, "You need to confirm email", err.Error())
	})

	t.Run("missing article", func(t *testing.T) {
		storage := &MockCommentStorage{
			ArticleFunc: func(id domain.ArticleId) (domain.Article, error) {
				return domain.Article{}, internal_errors.NotFound("Article not found")
			},
		}
		service := NewComments(storage, &MockRenderer{})

		_, err := service.Create(activeUser, data)

		require.Error(t, err)
		assert.Equal(t, 404, internal_errors.StatusCode(err))
	})
}

func TestCommentListByArticle(t *testing.T) {
	t.Run("renders and resolves authors", func(t *testing.T) {
		authorId := domain.UserId(1)
		storage := &MockCommentStorage{
			CommentsByArticleFunc: func(articleId domain.ArticleId) ([]domain.Comment, error) {
				return []domain.Comment{
					{Id: 1, Content: "first", ArticleId: articleId, AuthorId: &authorId},
					{Id: 2, Content: "orphan", ArticleId: articleId, AuthorId: nil},
				}, nil
			},
		}
		service := NewComments(storage, &MockRenderer{})

		views, err := service.ListByArticle(1)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "<p>first</p>", views[0].Html)
		assert.Equal(t, "Author Name", views[0].AuthorName)
		assert.Equal(t, "deleted", views[1].AuthorName)
	})

	t.Run("missing article", func(t *testing.T) {
		storage := &MockCommentStorage{
			ArticleFunc: func(id domain.ArticleId) (domain.Article, error) {
				return domain.Article{}, internal_errors.NotFound("Article not found")
			},
		}
		service := NewComments(storage, &MockRenderer{})

		_, err := service.ListByArticle(99)

		require.Error(t, err)
		assert.Equal(t, 404, internal_errors.StatusCode(err))
	})
}

func TestCommentDelete(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		service := NewComments(&MockCommentStorage{}, &MockRenderer{})

		err := service.Delete(activeUser, 1)

		require.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		service := NewComments(&MockCommentStorage{}, &MockRenderer{})

		err := service.Delete(otherUser, 1)

		require.Error(t, err)
		assert.Equal(t, 403, internal_errors.StatusCode(err))
	})

	t.Run("missing comment is 404 before 403", func(t *testing.T) {
		storage := &MockCommentStorage{
			CommentFunc: func(id domain.CommentId) (domain.Comment, error) {
				return domain.Comment{}, internal_errors.NotFound("Comment not found")
			},
		}
		service := NewComments(storage, &MockRenderer{})

		err := service.Delete(otherUser, 99)

		require.Error(t, err)
		assert.Equal(t, 404, internal_errors.StatusCode(err))
	})
}
