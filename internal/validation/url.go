package validation

import (
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strings"
)

// SourceURLValidator checks the URL the movie collection is fetched from.
type SourceURLValidator struct {
	// AllowLocal permits localhost, loopback and private addresses
	AllowLocal bool
	// MaxLength is the maximum allowed URL length
	MaxLength int
}

// NewSourceURLValidator creates a validator that rejects local and private hosts.
func NewSourceURLValidator() *SourceURLValidator {
	return &SourceURLValidator{MaxLength: 2048}
}

// NewPermissiveSourceURLValidator allows local mirrors of the dataset.
func NewPermissiveSourceURLValidator() *SourceURLValidator {
	return &SourceURLValidator{AllowLocal: true, MaxLength: 2048}
}

// ValidateAndNormalize validates a source URL and returns the normalized version.
// A missing scheme defaults to https.
func (v *SourceURLValidator) ValidateAndNormalize(input string) (string, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return "", fmt.Errorf("URL cannot be empty")
	}
	if v.MaxLength > 0 && len(input) > v.MaxLength {
		return "", fmt.Errorf("URL too long (max %d characters)", v.MaxLength)
	}
	if strings.ContainsAny(input, "<>\"'` ") {
		return "", fmt.Errorf("URL contains invalid characters")
	}

	if !strings.Contains(input, "://") {
		input = "https://" + input
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", fmt.Errorf("URL must use http or https protocol, got %q", parsedURL.Scheme)
	}
	if parsedURL.Hostname() == "" {
		return "", fmt.Errorf("URL must have a valid hostname")
	}
	if parsedURL.User != nil {
		return "", fmt.Errorf("URL must not embed credentials")
	}
	if strings.Contains(parsedURL.Path, "..") {
		return "", fmt.Errorf("directory traversal patterns not allowed in URL path")
	}

	if !v.AllowLocal {
		if err := checkPublicHost(parsedURL.Hostname()); err != nil {
			return "", err
		}
	}

	parsedURL.Fragment = ""
	return parsedURL.String(), nil
}

func checkPublicHost(hostname string) error {
	if isLocalhost(hostname) {
		return fmt.Errorf("localhost URLs are not permitted")
	}
	if addr, err := netip.ParseAddr(hostname); err == nil && isPrivateAddr(addr) {
		return fmt.Errorf("private IP addresses are not permitted")
	}
	return nil
}

func isLocalhost(hostname string) bool {
	hostname = strings.ToLower(strings.TrimSuffix(hostname, "."))
	return hostname == "localhost" || strings.HasSuffix(hostname, ".localhost")
}

// isPrivateAddr reports loopback, RFC 1918 / RFC 4193 private, link-local
// and unspecified addresses.
func isPrivateAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsUnspecified() ||
		net.IP(addr.AsSlice()).Equal(net.IPv4bcast)
}
