package authtoken

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/andyle182810/gappwrite/httpclient"
)

var (
	ErrTokenRequestFailed = errors.New("authtoken: token request failed")
	ErrNoToken            = errors.New("authtoken: no jwt in response")
)

const (
	// DefaultTTL matches the lifetime the server gives account JWTs.
	DefaultTTL        = 15 * time.Minute
	tokenExpiryBuffer = 30 * time.Second
)

// Issuer mints a JWT for the current session. account.Service satisfies it.
type Issuer interface {
	CreateJWT(ctx context.Context) (*http.Response, error)
}

type jwtResponse struct {
	JWT string `json:"jwt"`
}

var _ httpclient.TokenProvider = (*Source)(nil)

// Source caches a JWT from an Issuer and renews it shortly before it
// expires. Plug it into a client with httpclient.WithTokenProvider.
//
// The issuer holds the refresh lock while it runs, so it must call through a
// session client that does not carry this Source. An issuer built on the
// client the Source authenticates would wait on itself.
type Source struct {
	issuer Issuer
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func New(issuer Issuer, opts ...Option) *Source {
	s := &Source{
		issuer:    issuer,
		ttl:       DefaultTTL,
		now:       time.Now,
		mu:        sync.RWMutex{},
		token:     "",
		expiresAt: time.Time{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Source) GetToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.token != "" && s.now().Before(s.expiresAt) {
		token := s.token
		s.mu.RUnlock()

		return token, nil
	}
	s.mu.RUnlock()

	return s.refreshToken(ctx)
}

func (s *Source) refreshToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if s.token != "" && s.now().Before(s.expiresAt) {
		return s.token, nil
	}

	token, err := s.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	s.token = token
	s.expiresAt = s.now().Add(s.ttl - tokenExpiryBuffer)

	return s.token, nil
}

func (s *Source) fetchToken(ctx context.Context) (string, error) {
	resp, err := httpclient.DecodeJSON[jwtResponse](s.issuer.CreateJWT(ctx))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenRequestFailed, err)
	}

	if resp.JWT == "" {
		return "", ErrNoToken
	}

	return resp.JWT, nil
}

func (s *Source) InvalidateToken() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.expiresAt = time.Time{}
}
