package httpclient

import (
	"crypto/tls"
	"net/http"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// tlsTransport routes requests either to the configured transport or, once
// self-signed certificates are allowed, to a clone of it that skips
// verification. The clone belongs to one client.
type tlsTransport struct {
	base     http.RoundTripper
	insecure atomic.Pointer[http.Transport]
	logger   zerolog.Logger
}

func newTLSTransport(base http.RoundTripper, logger zerolog.Logger) *tlsTransport {
	return &tlsTransport{
		base:     base,
		insecure: atomic.Pointer[http.Transport]{},
		logger:   logger,
	}
}

func (t *tlsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if insecure := t.insecure.Load(); insecure != nil {
		return insecure.RoundTrip(req)
	}

	return t.base.RoundTrip(req)
}

func (t *tlsTransport) setInsecure(enabled bool) {
	if !enabled {
		if previous := t.insecure.Swap(nil); previous != nil {
			previous.CloseIdleConnections()
		}

		return
	}

	if t.insecure.Load() != nil {
		return
	}

	base, ok := t.base.(*http.Transport)
	if !ok {
		t.logger.Warn().Msg("self-signed certificates requested but the transport is not an *http.Transport; ignoring")

		return
	}

	clone := base.Clone()
	if clone.TLSClientConfig == nil {
		clone.TLSClientConfig = &tls.Config{} //nolint:exhaustruct,gosec
	}

	clone.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec

	t.insecure.Store(clone)
}

func (t *tlsTransport) CloseIdleConnections() {
	if insecure := t.insecure.Load(); insecure != nil {
		insecure.CloseIdleConnections()
	}

	if closer, ok := t.base.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}

type restyLogger struct {
	logger zerolog.Logger
}

func newRestyLogger(logger zerolog.Logger) restyLogger {
	return restyLogger{logger: logger.With().Str("component", "resty").Logger()}
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(format, v...)
}
