package utils

import (
	"fmt"
	"net/url"
)

// TotalPages computes ceil(total / pageSize). Zero rows yield zero pages.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// ClampPage forces page into [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// BuildPaginationURL rewrites baseURL with the given page, preserving every
// other query parameter.
func BuildPaginationURL(baseURL string, page int, params url.Values) string {
	u, _ := url.Parse(baseURL)
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	for key, values := range params {
		if key != "page" {
			for _, value := range values {
				q.Add(key, value)
			}
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
