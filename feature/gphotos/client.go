package gphotos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"photo-manager/core/library"
	"photo-manager/core/utils"

	"go.uber.org/zap"
)

// defaultBaseURL is the Photos Library API endpoint.
const defaultBaseURL = "https://photoslibrary.googleapis.com/v1"

// untitledAlbum is the display name for albums the service returns without
// a title.
const untitledAlbum = "Untitled"

// rawAlbum mirrors the wire format of an album resource. The service sends
// mediaItemsCount as a JSON string, so it is decoded loosely and converted.
type rawAlbum struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	MediaItemsCount any    `json:"mediaItemsCount"`
}

// albumsPage is one page of an album listing. The owned and shared listing
// endpoints use different field names for the same shape.
type albumsPage struct {
	Albums        []rawAlbum `json:"albums"`
	SharedAlbums  []rawAlbum `json:"sharedAlbums"`
	NextPageToken string     `json:"nextPageToken"`
}

// Client talks to the Photos Library API over an authenticated http.Client.
type Client struct {
	http          *http.Client
	baseURL       string
	pageSize      int
	includeShared bool
	maxRetries    int
	sleep         func(time.Duration)
	logger        *zap.Logger
}

// NewClient wraps an authenticated http.Client. Pass the client produced by
// Authenticator.HTTPClient so tokens refresh transparently.
func NewClient(httpClient *http.Client, cfg Config, logger *zap.Logger) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		http:          httpClient,
		baseURL:       defaultBaseURL,
		pageSize:      pageSize,
		includeShared: cfg.IncludeShared,
		maxRetries:    maxRetries,
		sleep:         time.Sleep,
		logger:        logger,
	}
}

// ListAlbums returns every album in the library, following pagination to the
// end. When shared albums are enabled they are appended after owned ones.
func (c *Client) ListAlbums(ctx context.Context) (library.Collection, error) {
	albums, err := c.listPath(ctx, "/albums")
	if err != nil {
		return nil, err
	}

	if c.includeShared {
		shared, err := c.listPath(ctx, "/sharedAlbums")
		if err != nil {
			return nil, err
		}
		albums = append(albums, shared...)
	}

	return albums, nil
}

// listPath pages through one listing endpoint until nextPageToken runs out.
func (c *Client) listPath(ctx context.Context, path string) (library.Collection, error) {
	out := library.Collection{}
	pageToken := ""

	for {
		u := fmt.Sprintf("%s%s?pageSize=%d", c.baseURL, path, c.pageSize)
		if pageToken != "" {
			u += "&pageToken=" + url.QueryEscape(pageToken)
		}

		var page albumsPage
		if err := c.getJSON(ctx, u, &page); err != nil {
			return nil, err
		}

		raws := page.Albums
		if path == "/sharedAlbums" {
			raws = page.SharedAlbums
		}
		for _, raw := range raws {
			title := raw.Title
			if title == "" {
				title = untitledAlbum
			}
			out = append(out, library.Album{
				Name:      title,
				ItemCount: utils.ToInt(raw.MediaItemsCount),
				Source:    library.SourceRemote,
			})
		}

		if page.NextPageToken == "" {
			return out, nil
		}
		pageToken = page.NextPageToken
	}
}

// getJSON performs a GET with bounded retries. Transient failures (429, 5xx,
// transport errors) back off and retry; auth failures never do.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	var lastErr error
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			delay := backoff(attempt)
			c.logger.Warn("Retrying albums request",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", delay),
				zap.Error(lastErr),
			)
			c.sleep(delay)
		}

		err := c.getJSONOnce(ctx, url, out)
		if err == nil {
			return nil
		}
		if !errors.Is(err, library.ErrTransient) || attempt == c.maxRetries {
			return err
		}
		lastErr = err
	}
}

func (c *Client) getJSONOnce(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", library.ErrTransient, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode albums response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: albums request returned %s", library.ErrAuth, resp.Status)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%w: albums request returned %s", library.ErrTransient, resp.Status)
	default:
		return fmt.Errorf("albums request returned %s", resp.Status)
	}
}

// backoff doubles per attempt starting at half a second.
func backoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}
