package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var ErrUnauthenticated = errors.New("unauthenticated")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// User is the auth service's view of a principal.
type User struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Metadata map[string]string `json:"user_metadata,omitempty"`
}

// APIError is a non-2xx answer from the auth service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auth service returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to a GoTrue compatible auth REST API. Admin calls are made
// with the service key; CurrentUser uses the caller's own access token.
type Client struct {
	baseURL    string
	serviceKey string
	client     HTTPClient
}

func NewClient(baseURL, serviceKey string, client HTTPClient) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		client:     client,
	}
}

type createUserRequest struct {
	Email        string            `json:"email"`
	Password     string            `json:"password"`
	EmailConfirm bool              `json:"email_confirm"`
	UserMetadata map[string]string `json:"user_metadata,omitempty"`
}

func (c *Client) CreateUser(ctx context.Context, email, password string, metadata map[string]string) (string, error) {
	body, err := json.Marshal(createUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: metadata,
	})
	if err != nil {
		return "", err
	}

	var user User
	if err := c.do(ctx, http.MethodPost, "/auth/v1/admin/users", c.serviceKey, bytes.NewReader(body), &user); err != nil {
		return "", err
	}
	if user.ID == "" {
		return "", errors.New("auth service returned a user without id")
	}
	return user.ID, nil
}

func (c *Client) DeleteUser(ctx context.Context, authUserID string) error {
	return c.do(ctx, http.MethodDelete, "/auth/v1/admin/users/"+authUserID, c.serviceKey, nil, nil)
}

// CurrentUser resolves an access token. Rejected tokens yield ErrUnauthenticated.
func (c *Client) CurrentUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &user)
	var apiErr *APIError
	if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path, bearer string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
