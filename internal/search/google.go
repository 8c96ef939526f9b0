// Package search implements the count and logo lookup collaborators on the
// Google Custom Search JSON API.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const endpoint = "https://www.googleapis.com/customsearch/v1"

type Client struct {
	APIKey string
	CX     string
	httpc  *http.Client
}

func New(apiKey, cx string) *Client {
	return &Client{
		APIKey: strings.TrimSpace(apiKey),
		CX:     strings.TrimSpace(cx),
		httpc:  &http.Client{Timeout: 15 * time.Second},
	}
}

type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// SearchCount runs a web search and returns the joined result snippets; the
// caller digs the number out. Empty when nothing matched.
func (c *Client) SearchCount(ctx context.Context, query string) (string, error) {
	out, err := c.search(ctx, url.Values{"q": {query}, "num": {"3"}})
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(out.Items))
	for _, it := range out.Items {
		if s := strings.TrimSpace(it.Snippet); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " "), nil
}

// SearchLogo runs an image search for the brand logo and returns the first
// hit's URL, empty when there is none.
func (c *Client) SearchLogo(ctx context.Context, brand string) (string, error) {
	out, err := c.search(ctx, url.Values{
		"q":          {brand + " car logo transparent png"},
		"searchType": {"image"},
		"num":        {"1"},
	})
	if err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", nil
	}
	return out.Items[0].Link, nil
}

func (c *Client) search(ctx context.Context, params url.Values) (*searchResponse, error) {
	if c.APIKey == "" || c.CX == "" {
		return nil, errors.New("google search is not configured")
	}
	params.Set("key", c.APIKey)
	params.Set("cx", c.CX)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("custom search %d: %s", resp.StatusCode, string(b))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
