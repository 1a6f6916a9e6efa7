// Package account covers the endpoints acting on the currently authenticated
// user.
package account

import (
	"context"
	"net/http"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/params"
)

const basePath = "/account"

type Service struct {
	client httpclient.Caller
}

func New(client httpclient.Caller) *Service {
	return &Service{client: client}
}

func (s *Service) call(ctx context.Context, method, path string, p *params.Params) (*http.Response, error) {
	return s.client.Call(ctx, method, path, httpclient.JSONHeaders(), p)
}

func (s *Service) Get(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, basePath, params.New())
}

func (s *Service) UpdateEmail(ctx context.Context, email, password string) (*http.Response, error) {
	p := params.New().
		Set("email", params.String(email)).
		Set("password", params.String(password))

	return s.call(ctx, http.MethodPatch, basePath+"/email", p)
}

// CreateJWT issues a short-lived token for the current session.
func (s *Service) CreateJWT(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodPost, basePath+"/jwt", params.New())
}

func (s *Service) GetLogs(ctx context.Context, limit, offset int) (*http.Response, error) {
	p := params.New().
		Set("limit", params.NonZero(limit)).
		Set("offset", params.NonZero(offset))

	return s.call(ctx, http.MethodGet, basePath+"/logs", p)
}

func (s *Service) UpdateName(ctx context.Context, name string) (*http.Response, error) {
	p := params.New().Set("name", params.String(name))

	return s.call(ctx, http.MethodPatch, basePath+"/name", p)
}

// UpdatePassword changes the password. oldPassword may be empty for accounts
// created through OAuth or magic links.
func (s *Service) UpdatePassword(ctx context.Context, password, oldPassword string) (*http.Response, error) {
	p := params.New().
		Set("password", params.String(password)).
		Set("oldPassword", params.NonEmpty(oldPassword))

	return s.call(ctx, http.MethodPatch, basePath+"/password", p)
}

func (s *Service) GetPrefs(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, basePath+"/prefs", params.New())
}

func (s *Service) UpdatePrefs(ctx context.Context, prefs *params.Params) (*http.Response, error) {
	p := params.New().Set("prefs", params.Object(prefs))

	return s.call(ctx, http.MethodPatch, basePath+"/prefs", p)
}

func (s *Service) CreateRecovery(ctx context.Context, email, url string) (*http.Response, error) {
	p := params.New().
		Set("email", params.String(email)).
		Set("url", params.String(url))

	return s.call(ctx, http.MethodPost, basePath+"/recovery", p)
}

func (s *Service) UpdateRecovery(
	ctx context.Context,
	userID string,
	secret string,
	password string,
	passwordAgain string,
) (*http.Response, error) {
	p := params.New().
		Set("userId", params.String(userID)).
		Set("secret", params.String(secret)).
		Set("password", params.String(password)).
		Set("passwordAgain", params.String(passwordAgain))

	return s.call(ctx, http.MethodPut, basePath+"/recovery", p)
}

func (s *Service) GetSessions(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, basePath+"/sessions", params.New())
}

func (s *Service) DeleteSessions(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, basePath+"/sessions", params.New())
}

func (s *Service) GetSession(ctx context.Context, sessionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, httpclient.Path("account", "sessions", sessionID), params.New())
}

func (s *Service) DeleteSession(ctx context.Context, sessionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, httpclient.Path("account", "sessions", sessionID), params.New())
}

// UpdateStatus blocks the current account.
func (s *Service) UpdateStatus(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodPatch, basePath+"/status", params.New())
}

func (s *Service) CreateVerification(ctx context.Context, url string) (*http.Response, error) {
	p := params.New().Set("url", params.String(url))

	return s.call(ctx, http.MethodPost, basePath+"/verification", p)
}

func (s *Service) UpdateVerification(ctx context.Context, userID, secret string) (*http.Response, error) {
	p := params.New().
		Set("userId", params.String(userID)).
		Set("secret", params.String(secret))

	return s.call(ctx, http.MethodPut, basePath+"/verification", p)
}

func (s *Service) CreatePhoneVerification(ctx context.Context) (*http.Response, error) {
	return s.call(ctx, http.MethodPost, basePath+"/verification/phone", params.New())
}

func (s *Service) UpdatePhoneVerification(ctx context.Context, userID, secret string) (*http.Response, error) {
	p := params.New().
		Set("userId", params.String(userID)).
		Set("secret", params.String(secret))

	return s.call(ctx, http.MethodPut, basePath+"/verification/phone", p)
}
