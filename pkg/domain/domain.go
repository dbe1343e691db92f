package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Escape re-escapes the characters a percent-decoded URL may carry but
// url.Parse rejects: a "%" not starting a valid escape, spaces and control
// characters. Everything else is left as is.
func Escape(u string) string {
	var sb strings.Builder
	for i := 0; i < len(u); i++ {
		c := u[i]
		switch {
		case c == '%' && i+2 < len(u) && isHex(u[i+1]) && isHex(u[i+2]):
			sb.WriteByte(c)
		case c == '%' || c <= ' ' || c == 0x7f:
			fmt.Fprintf(&sb, "%%%02X", c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Parse parses a possibly percent-decoded URL.
func Parse(u string) (*url.URL, error) {
	parsedUrl, err := url.Parse(Escape(u))
	if err != nil {
		return nil, errors.New("error parsing URL")
	}
	return parsedUrl, nil
}

// GetHost returns the host of a given URL, port included
func GetHost(u string) (string, error) {
	parsedUrl, err := Parse(u)
	if err != nil {
		return "", err
	}
	return parsedUrl.Host, nil
}

// Referer builds the "scheme://host" referer sent along with a request to u.
func Referer(u string) (string, error) {
	parsedUrl, err := Parse(u)
	if err != nil {
		return "", err
	}
	return parsedUrl.Scheme + "://" + parsedUrl.Host, nil
}

// IsCandidateURL reports whether u is an http(s) URL carrying something
// beyond a bare host: a path, params, a query or a fragment.
func IsCandidateURL(u string) bool {
	if u == "" {
		return false
	}
	parsedUrl, err := Parse(u)
	if err != nil {
		return false
	}
	if parsedUrl.Scheme != "http" && parsedUrl.Scheme != "https" {
		return false
	}
	// url.Parse keeps ";params" inside Path, so the path check covers them.
	if parsedUrl.Path == "" && parsedUrl.RawQuery == "" && parsedUrl.Fragment == "" {
		return false
	}
	return true
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
