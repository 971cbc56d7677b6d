package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/mindease/mindease/internal"
)

// HTTPGateway talks JSON to the mood API. Non-2xx statuses surface as
// TransportError; so do connection failures.
type HTTPGateway struct {
	BaseURL    string
	HTTPClient *http.Client
	logger     internal.Logger
}

func NewHTTPGateway(baseURL string, logger internal.Logger) *HTTPGateway {
	return &HTTPGateway{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		logger:     logger,
	}
}

func (g *HTTPGateway) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		g.logger.Errorf("gateway: %s %s failed: %v", method, path, err)
		return &internal.TransportError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.logger.Errorf("gateway: %s %s returned %d", method, path, resp.StatusCode)
		return &internal.TransportError{Status: resp.StatusCode}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &internal.TransportError{Err: err}
		}
	}
	return nil
}

func (g *HTTPGateway) FetchMoods(ctx context.Context) ([]internal.MoodEntry, error) {
	var entries []internal.MoodEntry
	if err := g.do(ctx, http.MethodGet, "/api/moods", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (g *HTTPGateway) CreateMood(ctx context.Context, draft internal.MoodEntry) (*internal.MoodEntry, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	draft.ID = ""
	var created internal.MoodEntry
	if err := g.do(ctx, http.MethodPost, "/api/moods", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *HTTPGateway) Login(ctx context.Context, name, email string) (*internal.User, error) {
	var user internal.User
	body := map[string]string{"name": name, "email": email}
	if err := g.do(ctx, http.MethodPost, "/api/auth/login", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *HTTPGateway) UpdateUser(ctx context.Context, user internal.User) (*internal.User, error) {
	var updated internal.User
	if err := g.do(ctx, http.MethodPut, "/api/user", user, &updated); err != nil {
		var te *internal.TransportError
		if errors.As(err, &te) && te.Status == http.StatusNotFound {
			return nil, &internal.NotFoundError{Kind: "user", Key: user.Email}
		}
		return nil, err
	}
	return &updated, nil
}

var _ Gateway = (*HTTPGateway)(nil)
