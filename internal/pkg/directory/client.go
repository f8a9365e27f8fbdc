package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/zenwork-hr/leave-backend-go/internal/config"
	"github.com/zenwork-hr/leave-backend-go/internal/domain/employee"
)

// Client fetches the employee roster from the external directory API. The
// directory owns employee records; this service only reads them.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(cfg config.DirectoryConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type listResponse struct {
	Data []employee.Employee `json:"data"`
}

// FetchEmployees returns the full roster. Filtering and pagination happen in
// the roster service, not at the directory.
func (c *Client) FetchEmployees(ctx context.Context) ([]employee.Employee, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/employees", nil)
	if err != nil {
		return nil, fmt.Errorf("build directory request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", employee.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", employee.ErrDirectoryUnavailable, resp.StatusCode)
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode employee directory response: %w", err)
	}

	return payload.Data, nil
}
