// API service for the remote favorites API
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/desertthunder/moviefav/internal/models"
	"github.com/desertthunder/moviefav/internal/shared"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "http://localhost:3000"

var _ FavoritesService = (*APIService)(nil)

// APIService implements [FavoritesService] over HTTP.
type APIService struct {
	baseURL    string
	httpClient *http.Client
	userID     int
}

// NewAPIService creates a new API service instance without a session.
func NewAPIService(baseURL string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// OK reports whether the status code is 2xx.
func (r *APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// WithSession returns a copy of the service acting as userID.
//
// The copy wraps the original client's transport so every request carries "Authorization: Bearer <token>".
func (a *APIService) WithSession(userID int, token string) FavoritesService {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, a.httpClient)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	client.Timeout = a.httpClient.Timeout

	return &APIService{
		baseURL:    a.baseURL,
		httpClient: client,
		userID:     userID,
	}
}

// Get performs a GET request to the specified path and returns the raw response.
func (a *APIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	return a.do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with the given JSON data and returns the raw response.
func (a *APIService) Post(ctx context.Context, path string, data []byte) (*APIResponse, error) {
	return a.do(ctx, http.MethodPost, path, data)
}

// Delete performs a DELETE request to the specified path and returns the raw response.
func (a *APIService) Delete(ctx context.Context, path string) (*APIResponse, error) {
	return a.do(ctx, http.MethodDelete, path, nil)
}

func (a *APIService) do(ctx context.Context, method, path string, data []byte) (*APIResponse, error) {
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       raw,
	}

	var jsonData any
	if err := json.Unmarshal(raw, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}

// Login exchanges credentials for the user and a bearer token.
func (a *APIService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	data, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal login request: %w", err)
	}

	resp, err := a.Post(ctx, LoginPath, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", shared.ErrAuthFailed, errorMessage(resp))
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var result LoginResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode login response: %v", shared.ErrAPIRequest, err)
	}
	if result.User.Favorites == nil {
		result.User.Favorites = []int{}
	}

	return &result, nil
}

// Movies retrieves the movie catalog.
func (a *APIService) Movies(ctx context.Context) ([]models.Movie, error) {
	resp, err := a.Get(ctx, MoviesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var movies []models.Movie
	if err := json.Unmarshal(resp.Body, &movies); err != nil {
		return nil, fmt.Errorf("%w: failed to decode movies: %v", shared.ErrAPIRequest, err)
	}

	return movies, nil
}

// Favorites retrieves the session user's favorite movie IDs.
func (a *APIService) Favorites(ctx context.Context) ([]int, error) {
	if a.userID == 0 {
		return nil, shared.ErrNotAuthenticated
	}

	resp, err := a.Get(ctx, fmt.Sprintf(favoritesPath, a.userID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var result FavoritesResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode favorites: %v", shared.ErrAPIRequest, err)
	}

	return result.Favorites, nil
}

// CreateFavorite records movieID as a favorite of the session user.
func (a *APIService) CreateFavorite(ctx context.Context, movieID int) error {
	if a.userID == 0 {
		return shared.ErrNotAuthenticated
	}

	data, err := json.Marshal(FavoriteRequest{MovieID: movieID})
	if err != nil {
		return fmt.Errorf("failed to marshal favorite: %w", err)
	}

	resp, err := a.Post(ctx, fmt.Sprintf(favoritesPath, a.userID), data)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return checkStatus(resp)
}

// DeleteFavorite removes the session user's favorite record for movieID.
func (a *APIService) DeleteFavorite(ctx context.Context, movieID int) error {
	if a.userID == 0 {
		return shared.ErrNotAuthenticated
	}

	resp, err := a.Delete(ctx, fmt.Sprintf(favoritesPath+"/%d", a.userID, movieID))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: movie %d", shared.ErrFavoriteNotFound, movieID)
	}

	return checkStatus(resp)
}

// Health reports whether the API is reachable.
func (a *APIService) Health(ctx context.Context) error {
	resp, err := a.Get(ctx, HealthPath)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	if !resp.OK() {
		return fmt.Errorf("%w: status %d", shared.ErrServiceUnavailable, resp.StatusCode)
	}
	return nil
}

func checkStatus(resp *APIResponse) error {
	switch {
	case resp.OK():
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", shared.ErrNotAuthenticated, errorMessage(resp))
	default:
		return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, errorMessage(resp))
	}
}

func errorMessage(resp *APIResponse) string {
	var body ErrorResponse
	if err := json.Unmarshal(resp.Body, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(resp.Body))
}
