package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/scorp5438/articles-app/internal/domain"
	internal_errors "github.com/scorp5438/articles-app/internal/errors"
)

const articleColumns = "id, title, content, author_id, created_at, updated_at"

// SaveArticle inserts a new article authored by the given account.
func (s *Storage) SaveArticle(article domain.Article) (domain.ArticleId, error) {
	ctx, cancel := opContext()
	defer cancel()

	var id domain.ArticleId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRow(
			"INSERT INTO articles(title, content, author_id) VALUES($1, $2, $3) RETURNING id",
			article.Title, article.Content, article.AuthorId).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert article: %w", err)
		}
		return nil
	})
	return id, err
}

// Article fetches a single article by id.
func (s *Storage) Article(id domain.ArticleId) (domain.Article, error) {
	row := s.db.QueryRow("SELECT "+articleColumns+" FROM articles WHERE id = $1", id)
	article, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, internal_errors.NotFound("Article not found")
	}
	return article, err
}

// Articles returns all articles ordered by id.
func (s *Storage) Articles() ([]domain.Article, error) {
	rows, err := s.db.Query("SELECT " + articleColumns + " FROM articles ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// UpdateArticle writes back title and content and bumps updated_at.
func (s *Storage) UpdateArticle(article domain.Article) error {
	ctx, cancel := opContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(
			"UPDATE articles SET title = $1, content = $2, updated_at = now() WHERE id = $3",
			article.Title, article.Content, article.Id)
		if err != nil {
			return fmt.Errorf("failed to update article: %w", err)
		}
		return requireAffected(result, "Article not found")
	})
}

// DeleteArticle removes an article; its comments go with it via the
// cascading foreign key.
func (s *Storage) DeleteArticle(id domain.ArticleId) error {
	ctx, cancel := opContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM articles WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to delete article: %w", err)
		}
		return requireAffected(result, "Article not found")
	})
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var article domain.Article
	var authorId sql.NullInt64
	var updatedAt sql.NullTime
	err := row.Scan(&article.Id, &article.Title, &article.Content, &authorId, &article.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Article{}, err
		}
		return domain.Article{}, fmt.Errorf("failed to scan article: %w", err)
	}
	if authorId.Valid {
		article.AuthorId = &authorId.Int64
	}
	if updatedAt.Valid {
		article.UpdatedAt = &updatedAt.Time
	}
	return article, nil
}
