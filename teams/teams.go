// Package teams groups users into teams and manages their memberships.
package teams

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

func teamPath(teamID string, rest ...string) string {
	return httpclient.Path(append([]string{"teams", teamID}, rest...)...)
}

func (s *Service) List(ctx context.Context, opts *params.ListOptions) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, "/teams", p)
}

// Create makes a team. Roles default to owner on the server when nil.
func (s *Service) Create(ctx context.Context, teamID, name string, roles []string) (*http.Response, error) {
	p := params.New().
		Set("teamId", params.String(teamID)).
		Set("name", params.String(name)).
		Set("roles", params.Strings(roles))

	return s.call(ctx, http.MethodPost, "/teams", p)
}

func (s *Service) Get(ctx context.Context, teamID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, teamPath(teamID), params.New())
}

func (s *Service) Update(ctx context.Context, teamID, name string) (*http.Response, error) {
	p := params.New().Set("name", params.String(name))

	return s.call(ctx, http.MethodPut, teamPath(teamID), p)
}

func (s *Service) Delete(ctx context.Context, teamID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, teamPath(teamID), params.New())
}

func (s *Service) GetLogs(ctx context.Context, teamID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, teamPath(teamID, "logs"), params.New())
}

func (s *Service) GetMemberships(ctx context.Context, teamID string, opts *params.ListOptions) (*http.Response, error) {
	p, err := opts.Params()
	if err != nil {
		return nil, err
	}

	return s.call(ctx, http.MethodGet, teamPath(teamID, "memberships"), p)
}

// CreateMembership invites email to the team. The invitee is redirected to
// url to accept; name is optional.
func (s *Service) CreateMembership(
	ctx context.Context,
	teamID string,
	email string,
	roles []string,
	url string,
	name string,
) (*http.Response, error) {
	p := params.New().
		Set("email", params.String(email)).
		Set("name", params.NonEmpty(name)).
		Set("roles", params.Strings(roles)).
		Set("url", params.String(url))

	return s.call(ctx, http.MethodPost, teamPath(teamID, "memberships"), p)
}

func (s *Service) GetMembership(ctx context.Context, teamID, membershipID string) (*http.Response, error) {
	return s.call(ctx, http.MethodGet, teamPath(teamID, "memberships", membershipID), params.New())
}

func (s *Service) UpdateMembershipRoles(
	ctx context.Context,
	teamID string,
	membershipID string,
	roles []string,
) (*http.Response, error) {
	p := params.New().Set("roles", params.Strings(roles))

	return s.call(ctx, http.MethodPatch, teamPath(teamID, "memberships", membershipID), p)
}

func (s *Service) DeleteMembership(ctx context.Context, teamID, membershipID string) (*http.Response, error) {
	return s.call(ctx, http.MethodDelete, teamPath(teamID, "memberships", membershipID), params.New())
}

func (s *Service) UpdateMembershipStatus(
	ctx context.Context,
	teamID string,
	membershipID string,
	userID string,
	secret string,
) (*http.Response, error) {
	p := params.New().
		Set("userId", params.String(userID)).
		Set("secret", params.String(secret))

	return s.call(ctx, http.MethodPatch, teamPath(teamID, "memberships", membershipID, "status"), p)
}
