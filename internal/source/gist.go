package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/oauth2"

	"github.com/ignite/campaign-dashboard/internal/config"
	"github.com/ignite/campaign-dashboard/internal/datanorm"
	"github.com/ignite/campaign-dashboard/internal/pkg/logger"
)

// HTTPDoer is the interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// GistClient fetches dashboard documents published as GitHub gists
type GistClient struct {
	baseURL    string
	httpClient HTTPDoer
}

// NewGistClient creates a gist client. When a token is configured requests
// carry it as a bearer token, which lifts the anonymous rate limit and
// allows secret gists.
func NewGistClient(cfg config.SourceConfig) *GistClient {
	httpClient := &http.Client{Timeout: cfg.Timeout()}
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = cfg.Timeout()
	}
	return &GistClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

type gistFile struct {
	Filename  string `json:"filename"`
	Content   string `json:"content"`
	Truncated bool   `json:"truncated"`
	RawURL    string `json:"raw_url"`
}

type gistResponse struct {
	ID    string              `json:"id"`
	Files map[string]gistFile `json:"files"`
}

// get performs a GET and returns the body of a 2xx response
func (c *GistClient) get(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))}
	}

	return body, nil
}

// Fetch returns the raw text of the first .json file in the gist.
// File names are compared in sorted order so the choice is stable.
func (c *GistClient) Fetch(ctx context.Context, id string) ([]byte, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrMissingID
	}

	body, err := c.get(ctx, c.baseURL+"/gists/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var gist gistResponse
	if err := json.Unmarshal(body, &gist); err != nil {
		return nil, fmt.Errorf("decoding gist envelope: %w", ErrNoJSONFile)
	}

	file, ok := firstJSONFile(gist.Files)
	if !ok {
		return nil, ErrNoJSONFile
	}

	if file.Truncated && file.RawURL != "" {
		logger.Debug("gist file truncated, following raw_url", "gist_id", id, "file", file.Filename)
		return c.get(ctx, file.RawURL)
	}
	return []byte(file.Content), nil
}

// Load fetches the gist and decodes its JSON file.
func (c *GistClient) Load(ctx context.Context, id string) (datanorm.RawDocument, error) {
	content, err := c.Fetch(ctx, id)
	if err != nil {
		return datanorm.RawDocument{}, err
	}

	doc, err := Decode(content)
	if err != nil {
		return datanorm.RawDocument{}, err
	}

	logger.Info("loaded gist", "gist_id", id, "bytes", len(content))
	return doc, nil
}

func firstJSONFile(files map[string]gistFile) (gistFile, bool) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f := files[name]
		fname := f.Filename
		if fname == "" {
			fname = name
		}
		if strings.HasSuffix(strings.ToLower(fname), ".json") {
			return f, true
		}
	}
	return gistFile{}, false
}
