// Package toggl is a thin client for the Toggl detailed-report API that only
// fetches the information needed to calculate billing.
package toggl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/margru/togglbill/internal/model"
)

const (
	defaultBaseURL = "https://api.track.toggl.com/reports/api/v2/details"
	userAgent      = "togglbill"

	// pageSize is fixed by the API; it cannot be raised per request.
	pageSize = 50
)

// FetchError describes a failed page request. The first failure aborts the
// whole window fetch; no partial-window results are returned.
type FetchError struct {
	Since string
	Until string
	Page  int
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching report page %d for %s – %s: %v", e.Page, e.Since, e.Until, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client talks to the detailed-report endpoint of one workspace.
type Client struct {
	// HTTPClient and BaseURL default to http.DefaultClient and the public
	// report endpoint; tests point them at a local server.
	HTTPClient *http.Client
	BaseURL    string

	apiToken    string
	workspaceID string
	logger      zerolog.Logger
}

// New creates a report client. The API token and workspace ID are passed in
// explicitly; the client performs no ambient credential lookups.
func New(apiToken, workspaceID string, logger zerolog.Logger) *Client {
	return &Client{
		HTTPClient:  http.DefaultClient,
		BaseURL:     defaultBaseURL,
		apiToken:    apiToken,
		workspaceID: workspaceID,
		logger:      logger,
	}
}

// fetchPage requests a single report page. Page 1 is requested without a
// page parameter, matching the API's default.
func (c *Client) fetchPage(ctx context.Context, clientID, since, until string, page int) (model.DetailsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return model.DetailsResponse{}, fmt.Errorf("creating request: %w", err)
	}

	q := url.Values{}
	q.Set("user_agent", userAgent)
	q.Set("workspace_id", c.workspaceID)
	q.Set("client_ids", clientID)
	q.Set("since", since)
	q.Set("until", until)
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	req.URL.RawQuery = q.Encode()

	req.SetBasicAuth(c.apiToken, "api_token")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return model.DetailsResponse{}, fmt.Errorf("report API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return model.DetailsResponse{}, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return model.DetailsResponse{}, fmt.Errorf("report API error %d: %s", resp.StatusCode, string(body))
	}

	var details model.DetailsResponse
	if err := json.Unmarshal(body, &details); err != nil {
		return model.DetailsResponse{}, fmt.Errorf("decoding report response: %w", err)
	}
	return details, nil
}

// FetchWindow retrieves every entry for one (since, until) window, walking
// all pages sequentially. total_count from the first page determines how
// many pages exist.
func (c *Client) FetchWindow(ctx context.Context, clientID, since, until string) ([]model.TimeEntry, error) {
	first, err := c.fetchPage(ctx, clientID, since, until, 1)
	if err != nil {
		return nil, &FetchError{Since: since, Until: until, Page: 1, Err: err}
	}

	entries := append([]model.TimeEntry(nil), first.Data...)

	totalPages := (first.TotalCount + pageSize - 1) / pageSize
	for page := 2; page <= totalPages; page++ {
		next, err := c.fetchPage(ctx, clientID, since, until, page)
		if err != nil {
			return nil, &FetchError{Since: since, Until: until, Page: page, Err: err}
		}
		entries = append(entries, next.Data...)
		c.logger.Debug().Int("page", page).Int("entries", len(next.Data)).Msg("fetched report page")
	}

	c.logger.Info().
		Int("entries", first.TotalCount).
		Str("since", since).
		Str("until", until).
		Msg("fetched report window")

	return entries, nil
}

// FetchAllEntries retrieves the client's complete history, one calendar-year
// window at a time, from startYear through untilYear (the current year when
// untilYear <= 0). Window results are concatenated; aggregation does not
// depend on their order.
func (c *Client) FetchAllEntries(ctx context.Context, clientID string, startYear, untilYear int) ([]model.TimeEntry, error) {
	var all []model.TimeEntry
	for _, w := range Windows(startYear, untilYear) {
		entries, err := c.FetchWindow(ctx, clientID, w.Since, w.Until)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}
