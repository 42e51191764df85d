package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	BotToken           string
	ModerationChatID   int64
	ShortLinkBase      string
	LogLevel           string
	PollTimeoutSeconds int

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ScanIntervalSeconds     int
	ScanInitialDelaySeconds int
	ScanBatchSize           int

	ClassifyLinksOnly bool
}

func Load() (Config, error) {
	moderationChatID, err := getInt64("MODERATION_CHAT_ID", 0)
	if err != nil {
		return Config{}, err
	}

	pollTimeout, err := getInt("POLL_TIMEOUT_SECONDS", 30)
	if err != nil {
		return Config{}, err
	}

	dbPort, err := getInt("DB_PORT", 5432)
	if err != nil {
		return Config{}, err
	}

	scanInterval, err := getInt("SCAN_INTERVAL_SECONDS", 120)
	if err != nil {
		return Config{}, err
	}

	scanInitialDelay, err := getInt("SCAN_INITIAL_DELAY_SECONDS", 2)
	if err != nil {
		return Config{}, err
	}

	scanBatchSize, err := getInt("SCAN_BATCH_SIZE", 50)
	if err != nil {
		return Config{}, err
	}

	linksOnly, err := getBool("CLASSIFY_LINKS_ONLY", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BotToken:           strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		ModerationChatID:   moderationChatID,
		ShortLinkBase:      getString("SHORT_LINK_BASE", ""),
		LogLevel:           getString("LOG_LEVEL", "info"),
		PollTimeoutSeconds: pollTimeout,

		DBHost:     getString("DB_HOST", "localhost"),
		DBPort:     dbPort,
		DBUser:     getString("DB_USER", ""),
		DBPassword: getString("DB_PASSWORD", ""),
		DBName:     getString("DB_NAME", ""),
		DBSSLMode:  getString("DB_SSLMODE", "disable"),

		ScanIntervalSeconds:     scanInterval,
		ScanInitialDelaySeconds: scanInitialDelay,
		ScanBatchSize:           scanBatchSize,

		ClassifyLinksOnly: linksOnly,
	}

	if cfg.PollTimeoutSeconds <= 0 {
		cfg.PollTimeoutSeconds = 30
	}
	if cfg.ScanIntervalSeconds <= 0 {
		cfg.ScanIntervalSeconds = 120
	}
	if cfg.ScanInitialDelaySeconds < 0 {
		cfg.ScanInitialDelaySeconds = 2
	}
	if cfg.ScanBatchSize <= 0 {
		cfg.ScanBatchSize = 50
	}

	return cfg, nil
}

// DatabaseDSN assembles a keyword/value DSN for lib/pq.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getString(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getInt64(key string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}
