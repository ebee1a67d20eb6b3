package config

import (
	"os"

	"github.com/scout-ai/scout/internal/errors"
)

// EnvAPIKey is the environment variable consulted when no explicit key is given.
const EnvAPIKey = "TAVILY_API_KEY"

// masked is what every textual rendering of an APIKey produces.
const masked = "**********"

// APIKey holds the Tavily credential. It is resolved once and immutable.
// Every default rendering is masked; the raw value is only reachable through
// Reveal, which exists solely for building the outbound Authorization header.
type APIKey struct {
	value string
}

// ResolveAPIKey returns the credential from the explicit value if non-empty,
// otherwise from the TAVILY_API_KEY environment variable. Fails if neither
// source yields a non-empty value.
func ResolveAPIKey(explicit string) (APIKey, error) {
	if explicit != "" {
		return APIKey{value: explicit}, nil
	}
	if env := os.Getenv(EnvAPIKey); env != "" {
		return APIKey{value: env}, nil
	}
	return APIKey{}, errors.Config(errors.CodeAPIKeyMissing,
		"Tavily API key not found: set "+EnvAPIKey+" or pass an explicit key")
}

// Reveal returns the raw credential value.
func (k APIKey) Reveal() string { return k.value }

// IsSet reports whether a credential was resolved.
func (k APIKey) IsSet() bool { return k.value != "" }

// String implements fmt.Stringer with a masked value.
func (k APIKey) String() string { return masked }

// GoString masks %#v renderings as well.
func (k APIKey) GoString() string { return "config.APIKey{value:\"" + masked + "\"}" }

// MarshalText masks the key in any text/JSON encoding.
func (k APIKey) MarshalText() ([]byte, error) { return []byte(masked), nil }
