// Package links turns short post links into canonical comment deep links.
package links

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 8 * time.Second

type Service struct {
	baseURL    string
	httpClient *http.Client
}

func NewService(baseURL string) *Service {
	return &Service{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// ResolveCommentLink follows the shortener redirect for a post and appends
// the comment anchor to the final URL.
func (s *Service) ResolveCommentLink(ctx context.Context, postID, commentID int64) (string, error) {
	shortURL := fmt.Sprintf("%s%d", s.baseURL, postID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shortURL, nil)
	if err != nil {
		return "", fmt.Errorf("build short link request for post %d: %w", postID, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("resolve short link for post %d: %w", postID, err)
	}
	defer resp.Body.Close()

	return fmt.Sprintf("%s#comment-%d", resp.Request.URL, commentID), nil
}
