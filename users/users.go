// Package users manages project users with server (API key) privileges.
package users

import (
	"context"
	"net/http"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/params"
)

type Service struct {
	client httpclient.Caller
}

func New(client httpclient.Caller) *Service {
	return &Service{client: client}
}

func (s *Service) call(ctx context.Context, method, path string, p *params.Params) (*http.Response, error) {
	return s.client.Call(ctx, method, path, httpclient.JSONHeaders(), p)
}

func userPath(userID string, rest ...string) string {
	return httpclient.Path(append([]string{"users", userID}, rest...)...)
}

func (s *Service) List(ctx context.Context, opts *params.ListOptions) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, "/users", p)
}

// Create registers a user. Pass ids.Unique() as userID to let the server
// generate one; name is optional.
func (s *Service) Create(ctx context.Context, userID, email, password, name string) (*http.Response, error) {
	p := params.New().
		Set("userId", params.String(userID)).
		Set("email", params.String(email)).
		Set("password", params.String(password)).
		Set("name", params.NonEmpty(name))

	return s.call(ctx, http.MethodPost, "/users", p)
}

// GetUsage reports user statistics. usageRange is one of 24h, 7d, 30d or 90d;
// empty uses the server default.
func (s *Service) GetUsage(ctx context.Context, usageRange string) (*http.Response, error) {
	p := params.New().Set("range", params.NonEmpty(usageRange))

	return s.call(ctx, http.MethodGet, "/users/usage", p)
}

func (s *Service) Get(ctx context.Context, userID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, userPath(userID), params.New())
}

func (s *Service) Delete(ctx context.Context, userID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, userPath(userID), params.New())
}

func (s *Service) UpdateEmail(ctx context.Context, userID, email string) (*http.Response, error) {
	p := params.New().Set("email", params.String(email))

	return s.call(ctx, http.MethodPatch, userPath(userID, "email"), p)
}

func (s *Service) GetLogs(ctx context.Context, userID string, limit, offset int) (*http.Response, error) {
	p := params.New().
		Set("limit", params.NonZero(limit)).
		Set("offset", params.NonZero(offset))

	return s.call(ctx, http.MethodGet, userPath(userID, "logs"), p)
}

func (s *Service) GetMemberships(ctx context.Context, userID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, userPath(userID, "memberships"), params.New())
}

func (s *Service) UpdateName(ctx context.Context, userID, name string) (*http.Response, error) {
	p := params.New().Set("name", params.String(name))

	return s.call(ctx, http.MethodPatch, userPath(userID, "name"), p)
}

func (s *Service) UpdatePassword(ctx context.Context, userID, password string) (*http.Response, error) {
	p := params.New().Set("password", params.String(password))

	return s.call(ctx, http.MethodPatch, userPath(userID, "password"), p)
}

func (s *Service) UpdatePhone(ctx context.Context, userID, number string) (*http.Response, error) {
	p := params.New().Set("number", params.String(number))

	return s.call(ctx, http.MethodPatch, userPath(userID, "phone"), p)
}

func (s *Service) GetPrefs(ctx context.Context, userID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, userPath(userID, "prefs"), params.New())
}

func (s *Service) UpdatePrefs(ctx context.Context, userID string, prefs *params.Params) (*http.Response, error) {
	p := params.New().Set("prefs", params.Object(prefs))

	return s.call(ctx, http.MethodPatch, userPath(userID, "prefs"), p)
}

func (s *Service) GetSessions(ctx context.Context, userID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, userPath(userID, "sessions"), params.New())
}

func (s *Service) DeleteSessions(ctx context.Context, userID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, userPath(userID, "sessions"), params.New())
}

func (s *Service) DeleteSession(ctx context.Context, userID, sessionID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, userPath(userID, "sessions", sessionID), params.New())
}

func (s *Service) UpdateStatus(ctx context.Context, userID string, status bool) (*http.Response, error) {
	p := params.New().Set("status", params.Bool(status))

	return s.call(ctx, http.MethodPatch, userPath(userID, "status"), p)
}

func (s *Service) UpdateVerification(ctx context.Context, userID string, emailVerification bool) (*http.Response, error) {
	p := params.New().Set("emailVerification", params.Bool(emailVerification))

	return s.call(ctx, http.MethodPatch, userPath(userID, "verification"), p)
}

func (s *Service) UpdatePhoneVerification(
	ctx context.Context,
	userID string,
	phoneVerification bool,
) (*http.Response, error) {
	p := params.New().Set("phoneVerification", params.Bool(phoneVerification))

	return s.call(ctx, http.MethodPatch, userPath(userID, "verification", "phone"), p)
}
