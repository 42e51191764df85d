package moderate

import (
	"context"
	"errors"
	"testing"

	pgrepo "github.com/knife-media/watchcat/internal/repo/postgres"
)

type stubRepo struct {
	removed []int64
	blocked []int64
	err     error
}

func (s *stubRepo) RemoveComment(_ context.Context, commentID int64) error {
	s.removed = append(s.removed, commentID)
	return s.err
}

func (s *stubRepo) BlockAuthorAndPurge(_ context.Context, commentID int64) error {
	s.blocked = append(s.blocked, commentID)
	return s.err
}

func TestRemove(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	if err := svc.Remove(context.Background(), 99); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(repo.removed) != 1 || repo.removed[0] != 99 {
		t.Fatalf("expected remove call for 99, got %v", repo.removed)
	}
}

func TestBlockAuthor(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	if err := svc.BlockAuthor(context.Background(), 42); err != nil {
		t.Fatalf("block author: %v", err)
	}
	if len(repo.blocked) != 1 || repo.blocked[0] != 42 {
		t.Fatalf("expected block call for 42, got %v", repo.blocked)
	}
}

func TestBlockAuthorNotFound(t *testing.T) {
	repo := &stubRepo{err: pgrepo.ErrCommentNotFound}
	svc := NewService(repo)

	err := svc.BlockAuthor(context.Background(), 42)
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestBlockAuthorRepoError(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection reset")}
	svc := NewService(repo)

	err := svc.BlockAuthor(context.Background(), 42)
	if err == nil || errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected raw repo error, got %v", err)
	}
}
