package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorp5438/articles-app/internal/domain"
	internal_errors "github.com/scorp5438/articles-app/internal/errors"
)

func newArticle(t *testing.T, author domain.User) domain.Article {
	t.Helper()
	article := domain.Article{Title: "Title", Content: "Content", AuthorId: &author.Id}
	id, err := storage.SaveArticle(article)
	require.NoError(t, err)
	article.Id = id
	return article
}

func TestSaveAndGetArticle(t *testing.T) {
	author := newUser(t, nil)
	article := newArticle(t, author)

	got, err := storage.Article(article.Id)
	require.NoError(t, err)
	assert.Equal(t, "Title", got.Title)
	require.NotNil(t, got.AuthorId)
	assert.Equal(t, author.Id, *got.AuthorId)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Nil(t, got.UpdatedAt, "a fresh article has no update timestamp")

	_, err = storage.Article(-1)
	require.Error(t, err)
	assert.Equal(t, 404, internal_errors.StatusCode(err))
	assert.Equal(t, "Article not found", err.Error())
}

func TestUpdateArticle(t *testing.T) {
	author := newUser(t, nil)
	article := newArticle(t, author)

	article.Title = "Updated"
	require.NoError(t, storage.UpdateArticle(article))

	got, err := storage.Article(article.Id)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Title)
	require.NotNil(t, got.UpdatedAt, "update must set the timestamp")

	missing := article
	missing.Id = -1
	err = storage.UpdateArticle(missing)
	require.Error(t, err)
	assert.Equal(t, 404, internal_errors.StatusCode(err))
}

func TestDeleteArticleCascadesComments(t *testing.T) {
	author := newUser(t, nil)
	article := newArticle(t, author)
	commentId, err := storage.SaveComment(domain.Comment{Content: "c", ArticleId: article.Id, AuthorId: &author.Id})
	require.NoError(t, err)

	require.NoError(t, storage.DeleteArticle(article.Id))

	_, err = storage.Article(article.Id)
	require.Error(t, err)
	assert.Equal(t, 404, internal_errors.StatusCode(err))

	_, err = storage.Comment(commentId)
	require.Error(t, err, "comments must go with their article")
	assert.Equal(t, 404, internal_errors.StatusCode(err))
}

func TestAuthorDeletionOrphansContent(t *testing.T) {
	author := newUser(t, nil)
	article := newArticle(t, author)
	commentId, err := storage.SaveComment(domain.Comment{Content: "c", ArticleId: article.Id, AuthorId: &author.Id})
	require.NoError(t, err)

	require.NoError(t, storage.DeleteUser(author.Id))

	got, err := storage.Article(article.Id)
	require.NoError(t, err, "articles must survive their author")
	assert.Nil(t, got.AuthorId)

	comment, err := storage.Comment(commentId)
	require.NoError(t, err, "comments must survive their author")
	assert.Nil(t, comment.AuthorId)
}
