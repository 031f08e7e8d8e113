// Package deeplink classifies destination URLs against known native
// applications and synthesizes the per-platform redirect artifacts used by
// the interstitial redirect page.
package deeplink

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidDestination is returned when a destination URL does not use one
// of the allowed schemes (http, https, mailto).
var ErrInvalidDestination = errors.New("destination must be an http, https or mailto URL")

// DestinationURL is an immutable, scheme-validated destination.
type DestinationURL struct {
	Raw    string
	Scheme string
	url    *url.URL
}

// ParseDestination parses and validates a destination URL string.
// Only http, https and mailto schemes are accepted.
func ParseDestination(raw string) (DestinationURL, error) {
	raw = strings.TrimSpace(raw)

	u, err := url.Parse(raw)
	if err != nil {
		return DestinationURL{}, ErrInvalidDestination
	}

	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case "http", "https", "mailto":
	default:
		return DestinationURL{}, ErrInvalidDestination
	}

	return DestinationURL{Raw: raw, Scheme: scheme, url: u}, nil
}

// host returns the lowercased hostname without any port.
func (d DestinationURL) host() string {
	if d.url == nil {
		return ""
	}
	return strings.ToLower(d.url.Hostname())
}

// matchHost returns the hostname used for application matching:
// lowercased with a leading "www." stripped.
func (d DestinationURL) matchHost() string {
	return strings.TrimPrefix(d.host(), "www.")
}

// query returns the parsed query parameters.
func (d DestinationURL) query() url.Values {
	if d.url == nil {
		return url.Values{}
	}
	return d.url.Query()
}

// pathSegments splits the URL path into its non-empty segments.
func (d DestinationURL) pathSegments() []string {
	if d.url == nil {
		return nil
	}
	var segs []string
	for _, s := range strings.Split(d.url.Path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// hostPath is the intent-URL body: hostname + path + query + fragment of the
// original URL, without the scheme.
func (d DestinationURL) hostPath() string {
	if d.url == nil {
		return d.Raw
	}
	var b strings.Builder
	b.WriteString(d.url.Host)
	b.WriteString(d.url.EscapedPath())
	if d.url.RawQuery != "" {
		b.WriteString("?")
		b.WriteString(d.url.RawQuery)
	}
	if d.url.Fragment != "" {
		b.WriteString("#")
		b.WriteString(d.url.EscapedFragment())
	}
	return b.String()
}
