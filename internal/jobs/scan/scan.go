// Package scan polls the comment store for unreviewed comments and hands
// flagged ones to the moderation chat.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/knife-media/watchcat/internal/domain/model"
)

type Repo interface {
	FetchUnreviewed(ctx context.Context, limit int) ([]model.Comment, error)
	MarkReviewed(ctx context.Context, commentID int64) error
}

type Classifier interface {
	Flagged(text string) bool
}

type Notifier interface {
	ShowWarning(ctx context.Context, comment model.Comment) error
}

type Config struct {
	Interval     time.Duration
	InitialDelay time.Duration
	BatchSize    int
}

type Job struct {
	repo       Repo
	classifier Classifier
	notifier   Notifier
	cfg        Config
	logger     *slog.Logger
}

func New(repo Repo, classifier Classifier, notifier Notifier, cfg Config, logger *slog.Logger) *Job {
	if cfg.Interval <= 0 {
		cfg.Interval = 120 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Job{
		repo:       repo,
		classifier: classifier,
		notifier:   notifier,
		cfg:        cfg,
		logger:     logger,
	}
}

// Run blocks until ctx is cancelled. A failed cycle is logged and the next
// firing still happens, so a transient store or chat outage never halts
// moderation permanently.
func (j *Job) Run(ctx context.Context) error {
	if j.cfg.InitialDelay > 0 {
		delay := time.NewTimer(j.cfg.InitialDelay)
		select {
		case <-ctx.Done():
			delay.Stop()
			return nil
		case <-delay.C:
		}
	}

	if err := j.RunCycle(ctx); err != nil {
		j.logger.Error("scan cycle failed", "error", err)
	}

	ticker := time.NewTicker(j.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := j.RunCycle(ctx); err != nil {
				j.logger.Error("scan cycle failed", "error", err)
			}
		}
	}
}

// RunCycle scans one page of unreviewed comments. Every scanned comment is
// marked reviewed whether or not it was flagged; a comment is never
// reconsidered on later cycles. An error aborts the remainder of the cycle,
// leaving the unprocessed comments for the next firing.
func (j *Job) RunCycle(ctx context.Context) error {
	comments, err := j.repo.FetchUnreviewed(ctx, j.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("fetch unreviewed comments: %w", err)
	}

	for _, comment := range comments {
		if j.classifier.Flagged(comment.Content) {
			if err := j.notifier.ShowWarning(ctx, comment); err != nil {
				return fmt.Errorf("warn about comment %d: %w", comment.ID, err)
			}
			j.logger.Info("comment flagged", "comment_id", comment.ID, "post_id", comment.PostID)
		}

		if err := j.repo.MarkReviewed(ctx, comment.ID); err != nil {
			return err
		}
	}

	return nil
}
