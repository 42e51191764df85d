// Package moderate applies moderator decisions to the comment store.
package moderate

import (
	"context"
	"errors"

	pgrepo "github.com/knife-media/watchcat/internal/repo/postgres"
)

var ErrCommentNotFound = errors.New("comment not found")

type Repo interface {
	RemoveComment(ctx context.Context, commentID int64) error
	BlockAuthorAndPurge(ctx context.Context, commentID int64) error
}

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Remove hides a single comment. Removing an already-removed or unknown
// comment is a no-op, not an error.
func (s *Service) Remove(ctx context.Context, commentID int64) error {
	return s.repo.RemoveComment(ctx, commentID)
}

// BlockAuthor blocks the comment's author and removes all their comments.
func (s *Service) BlockAuthor(ctx context.Context, commentID int64) error {
	err := s.repo.BlockAuthorAndPurge(ctx, commentID)
	if errors.Is(err, pgrepo.ErrCommentNotFound) {
		return ErrCommentNotFound
	}
	return err
}
