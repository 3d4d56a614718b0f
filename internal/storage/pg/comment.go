package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/scorp5438/articles-app/internal/domain"
	internal_errors "github.com/scorp5438/articles-app/internal/errors"
)

const commentColumns = "id, content, article_id, author_id, created_at"

// SaveComment inserts a comment under an existing article.
func (s *Storage) SaveComment(comment domain.Comment) (domain.CommentId, error) {
	ctx, cancel := opContext()
	defer cancel()

	var id domain.CommentId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRow(
			"INSERT INTO comments(content, article_id, author_id) VALUES($1, $2, $3) RETURNING id",
			comment.Content, comment.ArticleId, comment.AuthorId).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert comment: %w", err)
		}
		return nil
	})
	return id, err
}

// Comment fetches a single comment by id.
func (s *Storage) Comment(id domain.CommentId) (domain.Comment, error) {
	row := s.db.QueryRow("SELECT "+commentColumns+" FROM comments WHERE id = $1", id)
	comment, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, internal_errors.NotFound("Comment not found")
	}
	return comment, err
}

// CommentsByArticle returns the comments of an article ordered by id.
func (s *Storage) CommentsByArticle(articleId domain.ArticleId) ([]domain.Comment, error) {
	rows, err := s.db.Query(
		"SELECT "+commentColumns+" FROM comments WHERE article_id = $1 ORDER BY id", articleId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// DeleteComment removes a comment.
func (s *Storage) DeleteComment(id domain.CommentId) error {
	ctx, cancel := opContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM comments WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}
		return requireAffected(result, "Comment not found")
	})
}

func scanComment(row rowScanner) (domain.Comment, error) {
	var comment domain.Comment
	var authorId sql.NullInt64
	err := row.Scan(&comment.Id, &comment.Content, &comment.ArticleId, &authorId, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, err
		}
		return domain.Comment{}, fmt.Errorf("failed to scan comment: %w", err)
	}
	if authorId.Valid {
		comment.AuthorId = &authorId.Int64
	}
	return comment, nil
}
