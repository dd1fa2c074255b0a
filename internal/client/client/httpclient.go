package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/common"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

const maxResponseBytes = 4 << 20

// Options tune the HTTP transport.
type Options struct {
	// Timeout bounds each request except Recommendations, whose deadline
	// is owned by the caller.
	Timeout   time.Duration
	RateLimit float64 // requests per second, <= 0 disables pacing
	Burst     int
	// InsecureSkipVerify accepts the backend's self-signed certificate.
	InsecureSkipVerify bool
}

// HTTPClient talks to the CineIA REST API. It is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	limiter *rate.Limiter
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, opts Options, log logging.Logger) *HTTPClient {
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for local self-signed backends
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: opts.Timeout,
		http:    &http.Client{Transport: transport},
		limiter: rate.NewLimiter(limit, burst),
		log:     log.With("component", "api"),
	}
}

// doJSON performs one request and decodes the body into out. It returns the
// status code when a response was received. A positive timeout bounds the
// request after it leaves the limiter.
func (c *HTTPClient) doJSON(ctx context.Context, timeout time.Duration, method, path string, body, out any) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, mapError(err)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return 0, mapError(err)
	}
	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "err", err)
		return 0, mapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.log.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode,
		"request_id", reqID, "took", time.Since(start))
	if err != nil {
		return resp.StatusCode, mapError(err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, fmt.Errorf("%w: %s %s: status %d", common.ErrNetwork, method, path, resp.StatusCode)
	}
	if err := json.Unmarshal(data, out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return resp.StatusCode, fmt.Errorf("%w: %s %s: status %d", common.ErrNetwork, method, path, resp.StatusCode)
		}
		return resp.StatusCode, fmt.Errorf("%w: malformed response from %s: %v", common.ErrNetwork, path, err)
	}
	return resp.StatusCode, nil
}

// call is doJSON with the default request timeout plus the
// success-envelope check.
func (c *HTTPClient) call(ctx context.Context, method, path string, body any, out models.Enveloped) error {
	return c.callTimeout(ctx, c.timeout, method, path, body, out)
}

func (c *HTTPClient) callTimeout(ctx context.Context, timeout time.Duration, method, path string, body any, out models.Enveloped) error {
	status, err := c.doJSON(ctx, timeout, method, path, body, out)
	if err != nil {
		return err
	}
	if !out.OK() {
		return &APIError{Status: status, Message: out.Reason()}
	}
	return nil
}

func (c *HTTPClient) Health(ctx context.Context) (models.Health, error) {
	var h models.Health
	status, err := c.doJSON(ctx, c.timeout, http.MethodGet, "/api/health", nil, &h)
	if err != nil {
		return models.Health{}, err
	}
	// No envelope here, so any non-2xx status is a failure.
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return models.Health{}, fmt.Errorf("%w: GET /api/health: status %d", common.ErrNetwork, status)
	}
	return h, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var resp models.UserResponse
	if err := c.call(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (int64, error) {
	var resp models.RegisterResponse
	if err := c.call(ctx, http.MethodPost, "/api/register", req, &resp); err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var resp models.UserResponse
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/user/%d", userID), nil, &resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

func (c *HTTPClient) ListMovies(ctx context.Context) ([]models.Movie, error) {
	var resp models.MoviesResponse
	if err := c.call(ctx, http.MethodGet, "/api/movies", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

func (c *HTTPClient) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	var resp models.MovieResponse
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/movies/%d", movieID), nil, &resp); err != nil {
		return models.Movie{}, err
	}
	return resp.Movie, nil
}

func (c *HTTPClient) ListRatings(ctx context.Context, userID int64) ([]models.Rating, error) {
	var resp models.RatingsResponse
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/user/%d/ratings", userID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Ratings, nil
}

func (c *HTTPClient) CountRatings(ctx context.Context, userID int64) (int, error) {
	var resp models.CountResponse
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/user/%d/ratings/count", userID), nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *HTTPClient) RecentRatings(ctx context.Context, userID int64) ([]models.Rating, int, error) {
	var resp models.RecentRatingsResponse
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/user/%d/recent-ratings", userID), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Recent, resp.Count, nil
}

func (c *HTTPClient) Rate(ctx context.Context, req models.RateRequest) (int64, error) {
	var resp models.RateResponse
	if err := c.call(ctx, http.MethodPost, "/api/rate", req, &resp); err != nil {
		return 0, err
	}
	return resp.RatingID, nil
}

// Recommendations is not bounded by Options.Timeout. The recommendation
// service races it against its own, longer timer.
func (c *HTTPClient) Recommendations(ctx context.Context, userID int64) (models.RecommendationList, error) {
	var resp models.RecommendationsResponse
	if err := c.callTimeout(ctx, 0, http.MethodGet, fmt.Sprintf("/api/recommendations/%d", userID), nil, &resp); err != nil {
		return models.RecommendationList{}, err
	}
	return resp.List(), nil
}

func (c *HTTPClient) SearchExternal(ctx context.Context, title string) (models.Movie, error) {
	var resp models.MovieResponse
	if err := c.call(ctx, http.MethodPost, "/api/search-movie", models.SearchMovieRequest{Title: title}, &resp); err != nil {
		return models.Movie{}, err
	}
	return resp.Movie, nil
}

func (c *HTTPClient) AddMovie(ctx context.Context, movie models.Movie) (int64, error) {
	var resp models.AddMovieResponse
	if err := c.call(ctx, http.MethodPost, "/api/movies", movie, &resp); err != nil {
		return 0, err
	}
	return resp.MovieID, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (models.StatsResponse, error) {
	var resp models.StatsResponse
	if err := c.call(ctx, http.MethodGet, "/api/stats", nil, &resp); err != nil {
		return models.StatsResponse{}, err
	}
	return resp, nil
}
