package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kmureithi/devfolio/internal/metrics"
	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the hosted account directory that owns credential
// storage, session issuance and password resets. Everything here is a
// call-through; no credential material is kept locally.
type Client struct {
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
	baseURL     string
	apiKey      string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{httpClient: &http.Client{}, baseURL: baseURL, apiKey: apiKey}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

type User struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Metadata map[string]string `json:"user_metadata"`
}

type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*User, error) {

	payload := map[string]any{
		"email":    email,
		"password": password,
		"data":     metadata,
	}

	body, err := c.sendRequest(ctx, "POST", c.baseURL+"/auth/v1/signup", "", payload, "sign_up")
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&user); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return &user, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {

	payload := map[string]any{
		"email":    email,
		"password": password,
	}

	body, err := c.sendRequest(ctx, "POST", c.baseURL+"/auth/v1/token?grant_type=password", "", payload, "sign_in")
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&session); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return &session, nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.sendRequest(ctx, "POST", c.baseURL+"/auth/v1/logout", accessToken, nil, "sign_out")
	return err
}

// GetUser resolves the directory user behind an access token, i.e. the
// current session.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {

	body, err := c.sendRequest(ctx, "GET", c.baseURL+"/auth/v1/user", accessToken, nil, "get_user")
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&user); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return &user, nil
}

func (c *Client) Recover(ctx context.Context, email string) error {
	_, err := c.sendRequest(ctx, "POST", c.baseURL+"/auth/v1/recover", "", map[string]any{"email": email}, "recover")
	return err
}

// OAuthURL returns the directory's authorize endpoint for a provider; the
// hosted service owns the rest of the redirect flow.
func (c *Client) OAuthURL(provider, redirectTo string) string {
	params := url.Values{}
	params.Set("provider", provider)
	params.Set("redirect_to", redirectTo)
	return c.baseURL + "/auth/v1/authorize?" + params.Encode()
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, accessToken string,
	payload any, operation string) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var requestBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error encoding request body: %v", err)
		}
		requestBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, requestBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.DirectoryRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
