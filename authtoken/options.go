package authtoken

import (
	"time"
)

type Option func(*Source)

// WithTTL sets how long a fetched token is trusted. Values at or below the
// 30 second refresh buffer are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(s *Source) {
		if ttl > tokenExpiryBuffer {
			s.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Source) {
		if now != nil {
			s.now = now
		}
	}
}
