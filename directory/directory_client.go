package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
)

// Club and Court metadata served by the main platform. This service only
// reads it to validate hold requests, so responses are cached briefly.

type Club struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

type Court struct {
	ID      string `json:"id"`
	ClubID  string `json:"clubId"`
	Name    string `json:"name"`
	Surface string `json:"surface"`
	Indoor  bool   `json:"indoor"`
}

var ErrClubNotFound = errors.New("club not found")

var ErrCourtNotFound = errors.New("court not found")

type DirectoryClient interface {
	GetClub(ctx context.Context, clubID string) (*Club, error)
	GetCourt(ctx context.Context, courtID string) (*Court, error)
	ListCourts(ctx context.Context, clubID string) ([]Court, error)
}

type Client struct {
	baseURL string
	token   string
	client  *http.Client
	cache   *cache.Cache
}

func NewClient(baseURL, token string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  client,
		cache:   cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (c *Client) GetClub(ctx context.Context, clubID string) (*Club, error) {
	cacheKey := "club:" + clubID
	cachedClub, found := c.cache.Get(cacheKey)

	if found {
		return cachedClub.(*Club), nil
	}

	var club Club

	if err := c.getJSON(ctx, &club, ErrClubNotFound, "clubs", clubID); err != nil {
		return nil, err
	}

	c.cache.Set(cacheKey, &club, cache.DefaultExpiration)

	return &club, nil
}

func (c *Client) GetCourt(ctx context.Context, courtID string) (*Court, error) {
	cacheKey := "court:" + courtID
	cachedCourt, found := c.cache.Get(cacheKey)

	if found {
		return cachedCourt.(*Court), nil
	}

	var court Court

	if err := c.getJSON(ctx, &court, ErrCourtNotFound, "courts", courtID); err != nil {
		return nil, err
	}

	c.cache.Set(cacheKey, &court, cache.DefaultExpiration)

	return &court, nil
}

func (c *Client) ListCourts(ctx context.Context, clubID string) ([]Court, error) {
	cacheKey := "courts:" + clubID
	cachedCourts, found := c.cache.Get(cacheKey)

	if found {
		return cachedCourts.([]Court), nil
	}

	courts := []Court{}

	if err := c.getJSON(ctx, &courts, ErrClubNotFound, "clubs", clubID, "courts"); err != nil {
		return nil, err
	}

	c.cache.Set(cacheKey, courts, cache.DefaultExpiration)

	return courts, nil
}

func (c *Client) getJSON(ctx context.Context, out any, notFound error, elem ...string) error {
	reqURL, err := c.getURL(elem...)

	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, http.NoBody)

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)

	res, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return notFound
	}

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode != http.StatusOK {
		if readErr != nil {
			return fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return fmt.Errorf("failed to read body: %w", readErr)
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed reading body: %w", err)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
