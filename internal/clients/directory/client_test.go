package directory

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func newTestClient(mockClient *mockHTTPClient) *Client {
	client := NewClient("https://dir.example.com", "anon-key")
	client.SetHTTPClient(mockClient)
	return client
}

func Test_SignIn_WithValidCredentials_ShouldReturnSession(t *testing.T) {
	assert := assert.New(t)

	sessionBody := `{
		"access_token": "token-abc",
		"token_type": "bearer",
		"expires_in": 3600,
		"user": {"id": "user-1", "email": "john@example.com"}
	}`

	mockClient := new(mockHTTPClient)
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == "POST" &&
			req.URL.String() == "https://dir.example.com/auth/v1/token?grant_type=password"
	})).Return(jsonResponse(200, sessionBody), nil)

	client := newTestClient(mockClient)
	session, err := client.SignIn(context.Background(), "john@example.com", "secret")

	require.NoError(t, err)
	assert.Equal("token-abc", session.AccessToken)
	assert.Equal(3600, session.ExpiresIn)
	assert.Equal("user-1", session.User.ID)
}

func Test_SignIn_WithBadCredentials_ShouldReturnAuthFailure(t *testing.T) {
	assert := assert.New(t)

	mockClient := new(mockHTTPClient)
	mockClient.On("Do", mock.Anything).
		Return(jsonResponse(400, `{"error_description": "Invalid login credentials"}`), nil)

	client := newTestClient(mockClient)
	_, err := client.SignIn(context.Background(), "john@example.com", "wrong")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(apiErr.IsAuthFailure())
	assert.Equal("Invalid login credentials", apiErr.Message())
}

func Test_SignUp_ShouldSendMetadataAndAPIKey(t *testing.T) {
	assert := assert.New(t)

	mockClient := new(mockHTTPClient)
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if req.URL.String() != "https://dir.example.com/auth/v1/signup" {
			return false
		}
		if req.Header.Get("apikey") != "anon-key" {
			return false
		}
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))
		return strings.Contains(string(body), `"full_name":"John Doe"`)
	})).Return(jsonResponse(200, `{"id": "user-1", "email": "john@example.com"}`), nil)

	client := newTestClient(mockClient)
	user, err := client.SignUp(context.Background(), "john@example.com", "secret-pass",
		map[string]string{"full_name": "John Doe"})

	require.NoError(t, err)
	assert.Equal("user-1", user.ID)
	mockClient.AssertExpectations(t)
}

func Test_GetUser_ShouldSendBearerToken(t *testing.T) {
	assert := assert.New(t)

	mockClient := new(mockHTTPClient)
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://dir.example.com/auth/v1/user" &&
			req.Header.Get("Authorization") == "Bearer token-abc"
	})).Return(jsonResponse(200, `{"id": "user-1", "email": "john@example.com"}`), nil)

	client := newTestClient(mockClient)
	user, err := client.GetUser(context.Background(), "token-abc")

	require.NoError(t, err)
	assert.Equal("john@example.com", user.Email)
}

func Test_GetUser_WithExpiredToken_ShouldReturnError(t *testing.T) {

	mockClient := new(mockHTTPClient)
	mockClient.On("Do", mock.Anything).
		Return(jsonResponse(401, `{"msg": "JWT expired"}`), nil)

	client := newTestClient(mockClient)
	_, err := client.GetUser(context.Background(), "stale-token")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, "JWT expired", apiErr.Message())
}

func Test_OAuthURL_ShouldEncodeProviderAndRedirect(t *testing.T) {

	client := NewClient("https://dir.example.com", "anon-key")

	url := client.OAuthURL("google", "https://devfolio.example.com/auth/callback")

	assert.Equal(t,
		"https://dir.example.com/auth/v1/authorize?provider=google&redirect_to=https%3A%2F%2Fdevfolio.example.com%2Fauth%2Fcallback",
		url)
}

func Test_APIError_Message_FallsBackToRawBody(t *testing.T) {
	err := &APIError{StatusCode: 500, Body: "gateway timeout"}
	assert.Equal(t, "gateway timeout", err.Message())
}
