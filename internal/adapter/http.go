package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

const (
	restPath    = "/rest/v1"
	storagePath = "/storage/v1"
	authPath    = "/auth/v1"

	apiKeyHeader = "apikey"
)

type remoteDataService struct {
	client  *utils.HTTPClient
	baseURL string
	anonKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewRemoteDataService constructs the resty implementation of
// [RemoteDataService]. It normalises and validates cfg.URL and configures
// the client with the request timeout and the apikey header.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewRemoteDataService(cfg config.Remote, logger *logger.Logger) (RemoteDataService, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout, map[string]string{
		apiKeyHeader: cfg.AnonKey,
	})

	return &remoteDataService{
		client:  client,
		baseURL: baseURL,
		anonKey: cfg.AnonKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AuthAPI].
func (h *remoteDataService) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthAPI].
func (h *remoteDataService) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authedRequest starts a request carrying the user's access token, or the
// anon key while signed out.
func (h *remoteDataService) authedRequest(ctx context.Context) *resty.Request {
	bearer := h.Token()
	if bearer == "" {
		bearer = h.anonKey
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(bearer)
}

// escapePath escapes every segment of an object path, keeping the slashes.
func escapePath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
