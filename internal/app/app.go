package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/knife-media/watchcat/internal/config"
	"github.com/knife-media/watchcat/internal/domain/enums"
	"github.com/knife-media/watchcat/internal/infra/telegram"
	"github.com/knife-media/watchcat/internal/jobs/scan"
	"github.com/knife-media/watchcat/internal/repo/postgres"
	"github.com/knife-media/watchcat/internal/services/classify"
	"github.com/knife-media/watchcat/internal/services/links"
	"github.com/knife-media/watchcat/internal/services/moderate"
	"github.com/knife-media/watchcat/internal/services/notify"
)

type moderationService interface {
	Remove(ctx context.Context, commentID int64) error
	BlockAuthor(ctx context.Context, commentID int64) error
}

type decisionNotifier interface {
	ApplyDecision(chatID int64, messageID int, originalText string, action enums.Action) error
}

type App struct {
	cfg    config.Config
	logger *slog.Logger
	db     *sql.DB
	tg     *telegram.Client

	moderation moderationService
	notifier   decisionNotifier
	scanJob    *scan.Job
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := postgres.Open(context.Background(), cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("connect to comment store: %w", err)
	}

	commentsRepo := postgres.NewCommentsRepo(db)
	classifier := classify.NewService(classify.Config{LinksOnly: cfg.ClassifyLinksOnly})
	resolver := links.NewService(cfg.ShortLinkBase)

	app := &App{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		moderation: moderate.NewService(commentsRepo),
	}

	app.tg, err = telegram.NewClient(cfg.BotToken, cfg.PollTimeoutSeconds, logger, app.routeUpdate)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create telegram client: %w", err)
	}

	notifier := notify.NewService(app.tg, resolver, cfg.ModerationChatID)
	app.notifier = notifier
	app.scanJob = scan.New(commentsRepo, classifier, notifier, scan.Config{
		Interval:     time.Duration(cfg.ScanIntervalSeconds) * time.Second,
		InitialDelay: time.Duration(cfg.ScanInitialDelaySeconds) * time.Second,
		BatchSize:    cfg.ScanBatchSize,
	}, logger)

	return app, nil
}

// Run starts the scan loop and the Telegram update loop and blocks until ctx
// is cancelled or one of them fails.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	errCh := make(chan error, 2)
	go func() {
		errCh <- a.scanJob.Run(ctx)
	}()
	go func() {
		errCh <- a.tg.Start(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			if err == nil || errors.Is(err, context.Canceled) {
				continue
			}
			return err
		}
	}
}

func (a *App) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("close comment store", "error", err)
		}
	}
}
