package mediastore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"primecasa-catalog/pkg/metrics"
)

// Client lists uploaded property media from the object-storage service.
// One bucket holds all property media, one folder per property id.
type Client struct {
	baseURL    string
	bucket     string
	publicURL  string
	httpClient *http.Client
}

func NewClient(baseURL, bucket, publicURL string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type listRequest struct {
	Prefix string     `json:"prefix"`
	Limit  int        `json:"limit"`
	SortBy listSortBy `json:"sortBy"`
}

type listSortBy struct {
	Column string `json:"column"`
	Order  string `json:"order"`
}

type listObject struct {
	Name string `json:"name"`
}

// ListFolder returns the public URLs of all objects under the given folder
// prefix, ordered by object name.
func (c *Client) ListFolder(ctx context.Context, prefix string) ([]string, error) {
	body, err := json.Marshal(listRequest{
		Prefix: prefix,
		Limit:  100,
		SortBy: listSortBy{Column: "name", Order: "asc"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode list request: %v", err)
	}

	listURL := fmt.Sprintf("%s/object/list/%s", c.baseURL, c.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, listURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create list request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.StorageOperationDuration.WithLabelValues("list").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("list").Inc()
		return nil, fmt.Errorf("storage list request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.StorageErrorsTotal.WithLabelValues("list").Inc()
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("storage list returned status %d: %s", resp.StatusCode, string(data))
	}

	var objects []listObject
	if err := json.NewDecoder(resp.Body).Decode(&objects); err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("list").Inc()
		return nil, fmt.Errorf("failed to decode storage list response: %v", err)
	}

	urls := make([]string, 0, len(objects))
	for _, obj := range objects {
		if obj.Name == "" {
			continue
		}
		urls = append(urls, fmt.Sprintf("%s/%s/%s/%s", c.publicURL, c.bucket, prefix, obj.Name))
	}
	sort.Strings(urls)
	return urls, nil
}
