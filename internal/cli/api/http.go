package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
)

// BasicAuthorization строит значение заголовка Authorization для схемы Basic.
func BasicAuthorization(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// BasicAuthChecker checks credentials against a Basic-auth protected endpoint.
type BasicAuthChecker struct {
	URL    string
	Client *http.Client
}

// NewBasicAuthChecker creates a checker for the given endpoint. A nil client means http.DefaultClient.
func NewBasicAuthChecker(url string, client *http.Client) *BasicAuthChecker {
	return &BasicAuthChecker{URL: url, Client: client}
}

// Check issues a single GET with the Authorization header.
// ok is true for 2xx. A non-nil error is returned only when the request itself failed.
func (c *BasicAuthChecker) Check(ctx context.Context, username, password string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", BasicAuthorization(username, password))

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

func (c *BasicAuthChecker) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

// PostJSON sends a JSON POST request and returns the response with its fully read body.
func PostJSON(ctx context.Context, url string, payload any) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}
