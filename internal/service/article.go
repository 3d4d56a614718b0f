package service

import (
	"github.com/scorp5438/articles-app/internal/domain"
	"github.com/scorp5438/articles-app/internal/policy"
)

type ArticleService interface {
	Create(actor domain.User, data domain.ArticleCreate) (domain.ArticleId, error)
	List() ([]domain.ArticleView, error)
	Get(id domain.ArticleId) (domain.ArticleView, error)
	Update(actor domain.User, id domain.ArticleId, data domain.ArticleUpdate) error
	Delete(actor domain.User, id domain.ArticleId) error
}

type Articles struct {
	storage  ArticleStorage
	renderer Renderer
}

type ArticleStorage interface {
	SaveArticle(article domain.Article) (domain.ArticleId, error)
	Article(id domain.ArticleId) (domain.Article, error)
	Articles() ([]domain.Article, error)
	UpdateArticle(article domain.Article) error
	DeleteArticle(id domain.ArticleId) error
	UserById(id domain.UserId) (domain.User, error)
}

// Renderer turns stored markdown into sanitized html for read responses.
type Renderer interface {
	Render(source string) string
}

func NewArticles(storage ArticleStorage, renderer Renderer) *Articles {
	return &Articles{storage, renderer}
}

func (s *Articles) Create(actor domain.User, data domain.ArticleCreate) (domain.ArticleId, error) {
	if err := policy.RequireActive(actor); err != nil {
		return 0, err
	}

	article := domain.Article{
		Title:    data.Title,
		Content:  data.Content,
		AuthorId: &actor.Id,
	}
	return s.storage.SaveArticle(article)
}

func (s *Articles) List() ([]domain.ArticleView, error) {
	articles, err := s.storage.Articles()
	if err != nil {
		return nil, err
	}

	names := newAuthorNames(s.storage.UserById)
	views := make([]domain.ArticleView, len(articles))
	for i, article := range articles {
		views[i] = s.view(article, names)
	}
	return views, nil
}

func (s *Articles) Get(id domain.ArticleId) (domain.ArticleView, error) {
	article, err := s.storage.Article(id)
	if err != nil {
		return domain.ArticleView{}, err
	}
	return s.view(article, newAuthorNames(s.storage.UserById)), nil
}

// Update lets the owner or staff change title/content. Existence is checked
// before the permission: a missing article is 404 even for strangers.
func (s *Articles) Update(actor domain.User, id domain.ArticleId, data domain.ArticleUpdate) error {
	article, err := s.storage.Article(id)
	if err != nil {
		return err
	}
	if err := policy.CanModify(actor, article.AuthorId); err != nil {
		return err
	}

	if data.Title != nil {
		article.Title = *data.Title
	}
	if data.Content != nil {
		article.Content = *data.Content
	}
	return s.storage.UpdateArticle(article)
}

func (s *Articles) Delete(actor domain.User, id domain.ArticleId) error {
	article, err := s.storage.Article(id)
	if err != nil {
		return err
	}
	if err := policy.CanModify(actor, article.AuthorId); err != nil {
		return err
	}

	return s.storage.DeleteArticle(id)
}

func (s *Articles) view(article domain.Article, names *authorNames) domain.ArticleView {
	return domain.ArticleView{
		Id:         article.Id,
		Title:      article.Title,
		Content:    article.Content,
		Html:       s.renderer.Render(article.Content),
		AuthorName: names.resolve(article.AuthorId),
		CreatedAt:  article.CreatedAt,
		UpdatedAt:  article.UpdatedAt,
	}
}
