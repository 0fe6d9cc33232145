package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ssolovjova/recipebox/internal/client/models"
)

const requestTimeout = 15 * time.Second

// HTTPClient talks to the recipe service over its REST API. The backend base
// URL is treated as opaque configuration; routes are appended to it as-is.
//
// The token is guarded by a lock: the background health watcher issues
// requests concurrently with the interactive loop that logs in and out.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client bound to the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorResponse is the service's error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// do issues a request and decodes a successful response into out (when out is
// non-nil). Transport failures and non-2xx statuses come back as sentinel
// errors via mapError.
func (c *HTTPClient) do(ctx context.Context, method, path string, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapError converts a non-2xx response into a sentinel error, carrying the
// server's message along when one is present.
func (c *HTTPClient) mapError(resp *http.Response) error {
	var er errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&er)

	wrap := func(sentinel error) error {
		if er.Error != "" {
			return fmt.Errorf("%w: %s", sentinel, er.Error)
		}
		return sentinel
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return wrap(ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		return wrap(ErrPermissionDenied)
	case resp.StatusCode == http.StatusNotFound:
		return wrap(ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnprocessableEntity:
		return wrap(ErrValidation)
	case resp.StatusCode >= 500:
		return wrap(ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, er.Error)
	}
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(b), out)
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	in := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.postJSON(ctx, "/api/auth/login", in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	in := map[string]string{"name": name, "email": email, "password": password}
	var out models.User
	if err := c.postJSON(ctx, "/api/auth/signup", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", "", nil, nil)
}

// listResponse is the collection envelope returned by the service.
type listResponse struct {
	Data []models.Recipe `json:"data"`
}

func (c *HTTPClient) ListRecipes(ctx context.Context, q ListQuery) ([]models.Recipe, error) {
	params := url.Values{}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	if q.NewestFirst {
		params.Set("sort", "-createdAt")
	}
	if q.IncludeAuthor {
		params.Set("include", "author")
	}

	path := "/api/recipes"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out listResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return []models.Recipe{}, nil
	}
	return out.Data, nil
}

func (c *HTTPClient) CreateRecipe(ctx context.Context, draft models.DraftRecipe, photo *PhotoUpload) (*models.Recipe, error) {
	var out models.Recipe

	if photo == nil {
		if err := c.postJSON(ctx, "/api/recipes", draft, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	// One multipart request: structured fields as a JSON part plus the raw
	// photo bytes.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}
	if err := mw.WriteField("recipe", string(fields)); err != nil {
		return nil, fmt.Errorf("write recipe part: %w", err)
	}
	fw, err := mw.CreateFormFile("photo", photo.Name)
	if err != nil {
		return nil, fmt.Errorf("create photo part: %w", err)
	}
	if _, err := io.Copy(fw, photo.Data); err != nil {
		return nil, fmt.Errorf("copy photo: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	if err := c.do(ctx, http.MethodPost, "/api/recipes", mw.FormDataContentType(), &buf, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/recipes/"+url.PathEscape(id), "", nil, nil)
}
