package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/knife-media/watchcat/internal/domain/enums"
	"github.com/knife-media/watchcat/internal/domain/model"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentsRepo struct {
	db *sql.DB
}

func NewCommentsRepo(db *sql.DB) *CommentsRepo {
	return &CommentsRepo{db: db}
}

// FetchUnreviewed returns visible comments without a review marker.
// Order is unspecified; callers must not rely on it.
func (r *CommentsRepo) FetchUnreviewed(ctx context.Context, limit int) ([]model.Comment, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.post_id, c.content, c.status, c.user_id
		FROM comments c
		LEFT JOIN watchcat w ON c.id = w.comment_id
		WHERE c.status = 'visible'
		  AND w.reviewed IS NULL
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch unreviewed comments: %w", err)
	}
	defer rows.Close()

	comments := make([]model.Comment, 0, limit)
	for rows.Next() {
		var comment model.Comment
		var status string
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.Content, &status, &comment.UserID); err != nil {
			return nil, fmt.Errorf("scan unreviewed comment: %w", err)
		}
		comment.Status = enums.CommentStatus(status)
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unreviewed comments: %w", err)
	}

	return comments, nil
}

// MarkReviewed records that a comment has been scanned. The insert is
// idempotent: a second marker for the same comment id is silently ignored.
func (r *CommentsRepo) MarkReviewed(ctx context.Context, commentID int64) error {
	if commentID <= 0 {
		return fmt.Errorf("invalid comment id")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO watchcat (comment_id, reviewed)
		VALUES ($1, TRUE)
		ON CONFLICT (comment_id) DO NOTHING
	`, commentID)
	if err != nil {
		return fmt.Errorf("mark comment %d reviewed: %w", commentID, err)
	}
	return nil
}

// RemoveComment hides a single comment. A missing id affects zero rows and
// is not an error.
func (r *CommentsRepo) RemoveComment(ctx context.Context, commentID int64) error {
	if commentID <= 0 {
		return fmt.Errorf("invalid comment id")
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE comments SET status = 'removed' WHERE id = $1
	`, commentID)
	if err != nil {
		return fmt.Errorf("remove comment %d: %w", commentID, err)
	}
	return nil
}

// BlockAuthorAndPurge blocks the author of a comment and removes every
// comment they wrote, in one transaction. Returns ErrCommentNotFound without
// mutating anything when the comment id is unknown.
func (r *CommentsRepo) BlockAuthorAndPurge(ctx context.Context, commentID int64) error {
	if commentID <= 0 {
		return fmt.Errorf("invalid comment id")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction for block author: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var userID int64
	err = tx.QueryRowContext(ctx, `
		SELECT user_id FROM comments WHERE id = $1
	`, commentID).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("look up author of comment %d: %w", commentID, err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE users SET status = 'blocked' WHERE id = $1
	`, userID); err != nil {
		return fmt.Errorf("block user %d: %w", userID, err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE comments SET status = 'removed' WHERE user_id = $1
	`, userID); err != nil {
		return fmt.Errorf("remove comments of user %d: %w", userID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit block author transaction: %w", err)
	}

	return nil
}
