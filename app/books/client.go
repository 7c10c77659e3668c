package books

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"
)

// Fallbacks applied when a matched volume is missing a field. The cover
// image has no fallback: an absent thumbnail stays absent.
const (
	UnknownTitle   = "Unknown title"
	UnknownAuthor  = "Unknown author"
	PlaceholderURL = "#"
)

// Volume is the resolved book record handed to the feed pipeline, with
// fallbacks already applied.
type Volume struct {
	Title    string
	Author   string
	URL      string
	CoverImg string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(httpClient *http.Client, baseURL string, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// Search issues a single read-only volume lookup and returns the first
// match, or (nil, nil) when the service has none. No credential is
// required for the lite projection.
func (c *Client) Search(ctx context.Context, query string) (*Volume, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", "1")
	params.Set("projection", "lite")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/volumes?%s", c.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query books service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("books service returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result volumesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	return c.extractVolume(result.Items[0].VolumeInfo), nil
}

func (c *Client) extractVolume(info volumeInfo) *Volume {
	volume := &Volume{
		Title:    info.Title,
		URL:      info.InfoLink,
		CoverImg: info.ImageLinks.Thumbnail,
	}

	if volume.Title == "" {
		volume.Title = UnknownTitle
	}
	if len(info.Authors) > 0 && info.Authors[0] != "" {
		volume.Author = info.Authors[0]
	} else {
		volume.Author = UnknownAuthor
	}
	if volume.URL == "" {
		volume.URL = PlaceholderURL
	}

	return volume
}
