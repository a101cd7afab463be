package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// graphNameRegex matches valid graph resource names: slash-separated
// segments of letters, digits and underscores, with an optional hidden
// (underscore) prefix per segment.
var graphNameRegex = regexp.MustCompile(`^~?/?[A-Za-z0-9_]+(/[A-Za-z0-9_]+)*$`)

// ValidateChannelName validates a channel (topic, service, or action)
// name from a discovery snapshot. The rules are intentionally
// conservative; a rejected name indicates a corrupt or hand-edited
// snapshot rather than a live system.
func ValidateChannelName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSnapshot, "channel name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidSnapshot, "channel name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSnapshot, "channel name contains control characters")
		}
	}

	if strings.Contains(name, "//") {
		return New(ErrCodeInvalidSnapshot, "channel name contains empty path segment: %q", name)
	}

	if !graphNameRegex.MatchString(name) {
		return New(ErrCodeInvalidSnapshot, "invalid channel name: %q", name)
	}

	return nil
}

// ValidateNamespace validates a node namespace. The root namespace is
// the empty string; any other namespace is an absolute slash-separated
// path without a trailing slash.
func ValidateNamespace(ns string) error {
	if ns == "" {
		return nil
	}

	if !strings.HasPrefix(ns, "/") {
		return New(ErrCodeInvalidSnapshot, "namespace must be absolute: %q", ns)
	}

	if ns != "/" && strings.HasSuffix(ns, "/") {
		return New(ErrCodeInvalidSnapshot, "namespace has trailing slash: %q", ns)
	}

	if strings.Contains(ns, "//") {
		return New(ErrCodeInvalidSnapshot, "namespace contains empty path segment: %q", ns)
	}

	for _, r := range ns {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSnapshot, "namespace contains control characters")
		}
	}

	return nil
}

// nodeNameRegex matches valid short node names: one path segment, no
// slashes. Hidden nodes carry a leading underscore.
var nodeNameRegex = regexp.MustCompile(`^_?[A-Za-z0-9_]+$`)

// ValidateNodeName validates a short node name (no namespace part).
func ValidateNodeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSnapshot, "node name cannot be empty")
	}

	if !nodeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidSnapshot, "invalid node name: %q", name)
	}

	return nil
}
