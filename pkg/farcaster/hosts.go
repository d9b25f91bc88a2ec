package farcaster

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultNotificationHosts are the hosts Farcaster clients hand out as notification URLs.
var DefaultNotificationHosts = []string{"api.warpcast.com", "api.farcaster.xyz"}

var ErrDisallowedURL = errors.New("farcaster: notification url not allowed")

// ValidateNotificationURL accepts only https URLs on the default port whose
// host is in hosts. A nil hosts falls back to DefaultNotificationHosts.
func ValidateNotificationURL(raw string, hosts []string) error {
	if hosts == nil {
		hosts = DefaultNotificationHosts
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDisallowedURL, err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrDisallowedURL, u.Scheme)
	}
	if u.User != nil {
		return fmt.Errorf("%w: credentials in url", ErrDisallowedURL)
	}
	if port := u.Port(); port != "" && port != "443" {
		return fmt.Errorf("%w: port %s", ErrDisallowedURL, port)
	}

	host := strings.ToLower(u.Hostname())
	for _, h := range hosts {
		if host != "" && strings.EqualFold(h, host) {
			return nil
		}
	}
	return fmt.Errorf("%w: host %q", ErrDisallowedURL, host)
}
