// Package config loads the appwrite CLI settings and turns its profiles into
// API clients.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/andyle182810/gappwrite/httpclient"
	"golang.org/x/time/rate"
)

var ErrUnknownProfile = errors.New("config: unknown profile")

const DefaultProfile = "default"

// Profile is one project on one server. Endpoint, Project and either Key or
// JWT are what most calls need.
type Profile struct {
	Endpoint   string        `json:"endpoint"    koanf:"endpoint"    validate:"required,url"`
	Project    string        `json:"project"     koanf:"project"`
	Key        string        `json:"key"         koanf:"key"`
	JWT        string        `json:"jwt"         koanf:"jwt"`
	Locale     string        `json:"locale"      koanf:"locale"`
	SelfSigned bool          `json:"self_signed" koanf:"self_signed"`
	Timeout    time.Duration `json:"timeout"     koanf:"timeout"     validate:"gte=0"`
}

type Config struct {
	LogLevel  string  `json:"log_level"  koanf:"log_level"`
	LogPretty bool    `json:"log_pretty" koanf:"log_pretty"`
	Profile   string  `json:"profile"    koanf:"profile"`
	RateLimit float64 `json:"rate_limit" koanf:"rate_limit" validate:"gte=0"`

	// The default profile lives at the top level so that APPWRITE_ENDPOINT,
	// APPWRITE_PROJECT and friends configure it directly.
	Endpoint   string        `json:"endpoint"    koanf:"endpoint"    validate:"required,url"`
	Project    string        `json:"project"     koanf:"project"`
	Key        string        `json:"key"         koanf:"key"`
	JWT        string        `json:"jwt"         koanf:"jwt"`
	Locale     string        `json:"locale"      koanf:"locale"`
	SelfSigned bool          `json:"self_signed" koanf:"self_signed"`
	Timeout    time.Duration `json:"timeout"     koanf:"timeout"     validate:"gte=0"`

	Profiles map[string]Profile `json:"profiles" koanf:"profiles" validate:"dive"`
}

func Default() *Config {
	return &Config{
		LogLevel:   "info",
		LogPretty:  false,
		Profile:    DefaultProfile,
		RateLimit:  0,
		Endpoint:   httpclient.DefaultEndpoint,
		Project:    "",
		Key:        "",
		JWT:        "",
		Locale:     "",
		SelfSigned: false,
		Timeout:    httpclient.DefaultTimeout,
		Profiles:   map[string]Profile{},
	}
}

func (c *Config) defaultProfile() Profile {
	return Profile{
		Endpoint:   c.Endpoint,
		Project:    c.Project,
		Key:        c.Key,
		JWT:        c.JWT,
		Locale:     c.Locale,
		SelfSigned: c.SelfSigned,
		Timeout:    c.Timeout,
	}
}

// Lookup returns the named profile. An empty name selects the configured
// Profile.
func (c *Config) Lookup(name string) (Profile, error) {
	if name == "" {
		name = c.Profile
	}

	if profile, ok := c.Profiles[name]; ok {
		return profile, nil
	}

	if name == "" || name == DefaultProfile {
		return c.defaultProfile(), nil
	}

	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name) //nolint:exhaustruct
}

// ProfileNames lists the default profile followed by the named ones in order.
func (c *Config) ProfileNames() []string {
	names := []string{DefaultProfile}

	for name := range c.Profiles {
		if name != DefaultProfile {
			names = append(names, name)
		}
	}

	slices.Sort(names[1:])

	return names
}

// Options turns the profile into client options on top of base.
func (p Profile) Options(base ...httpclient.Option) []httpclient.Option {
	opts := slices.Clone(base)
	opts = append(opts, httpclient.WithSelfSigned(p.SelfSigned))

	if p.Timeout > 0 {
		opts = append(opts, httpclient.WithTimeout(p.Timeout))
	}

	return opts
}

// Apply sets the project credentials of the profile on client.
func (p Profile) Apply(client *httpclient.Client) *httpclient.Client {
	if p.Project != "" {
		client.SetProject(p.Project)
	}

	if p.Key != "" {
		client.SetKey(p.Key)
	}

	if p.JWT != "" {
		client.SetJWT(p.JWT)
	}

	if p.Locale != "" {
		client.SetLocale(p.Locale)
	}

	return client
}

// Registry builds one client per profile. The selected profile is the
// registry default.
func (c *Config) Registry(base ...httpclient.Option) (*httpclient.Registry, error) {
	if c.RateLimit > 0 {
		base = append(base, httpclient.WithRateLimit(rate.Limit(c.RateLimit), max(1, int(c.RateLimit))))
	}

	registry := httpclient.NewRegistry(base...)

	for _, name := range c.ProfileNames() {
		profile, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}

		registry.Register(name, profile.Endpoint, profile.Options()...)
		profile.Apply(registry.Client(name))
	}

	selected := c.Profile
	if selected == "" {
		selected = DefaultProfile
	}

	if err := registry.SetDefault(selected); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, selected)
	}

	return registry, nil
}
