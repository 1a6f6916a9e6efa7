package httpclient

import (
	"net/url"
	"strings"

	"github.com/andyle182810/gappwrite/params"
)

// Path joins segments into an absolute request path, escaping each one, so
// ids can never introduce extra segments or a query.
func Path(segments ...string) string {
	var builder strings.Builder

	for _, segment := range segments {
		builder.WriteByte('/')
		builder.WriteString(url.PathEscape(segment))
	}

	return builder.String()
}

// BuildURL appends path and the encoded parameters to endpoint. The query
// uses the same encoding as GET calls.
func BuildURL(endpoint, path string, p *params.Params) (string, error) {
	fullURL := strings.TrimSuffix(endpoint, "/") + path

	query, err := p.Encode()
	if err != nil {
		return "", err
	}

	if query != "" {
		fullURL += "?" + query
	}

	return fullURL, nil
}
