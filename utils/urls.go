package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// GetFavicon guesses the favicon location of the site serving rawURL.
func GetFavicon(rawURL string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s://%s/favicon.ico", parsedURL.Scheme, parsedURL.Host)
}

// ResolveURL resolves ref against base. An empty or unparseable ref yields "".
func ResolveURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	baseURL, err := url.Parse(strings.TrimRight(base, "/") + "/")
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
