package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Afzalshaikh78/ImageGenerator/pkg/options"
)

// CORSOptions defines CORS middleware options.
//
// The allow-list is an ordered set of exact-match origins
// (scheme+host+port). It is loaded once at process start and treated as
// immutable afterwards; there is no wildcard or pattern matching because
// credentialed requests are supported.
type CORSOptions struct {
	AllowOrigins     []string `json:"allow-origins" mapstructure:"allow-origins"`
	AllowMethods     []string `json:"allow-methods" mapstructure:"allow-methods"`
	AllowHeaders     []string `json:"allow-headers" mapstructure:"allow-headers"`
	ExposeHeaders    []string `json:"expose-headers" mapstructure:"expose-headers"`
	AllowCredentials bool     `json:"allow-credentials" mapstructure:"allow-credentials"`
	MaxAge           int      `json:"max-age" mapstructure:"max-age"`
}

// NewCORSOptions creates default CORS options. The defaults mirror the
// deployed client origins plus the local dev servers.
func NewCORSOptions() *CORSOptions {
	return &CORSOptions{
		AllowOrigins: []string{
			"https://imagegenerator-client-7izk.onrender.com",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "token"},
		ExposeHeaders:    []string{},
		AllowCredentials: true,
		MaxAge:           86400,
	}
}

// AddFlags adds flags for CORS options to the specified FlagSet.
func (o *CORSOptions) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringSliceVar(&o.AllowOrigins, options.Join(prefixes...)+"cors.allow-origins", o.AllowOrigins, "CORS allowed origins.")
	fs.StringSliceVar(&o.AllowMethods, options.Join(prefixes...)+"cors.allow-methods", o.AllowMethods, "CORS allowed methods.")
	fs.StringSliceVar(&o.AllowHeaders, options.Join(prefixes...)+"cors.allow-headers", o.AllowHeaders, "CORS allowed headers.")
	fs.StringSliceVar(&o.ExposeHeaders, options.Join(prefixes...)+"cors.expose-headers", o.ExposeHeaders, "CORS exposed headers.")
	fs.BoolVar(&o.AllowCredentials, options.Join(prefixes...)+"cors.allow-credentials", o.AllowCredentials, "CORS allow credentials.")
	fs.IntVar(&o.MaxAge, options.Join(prefixes...)+"cors.max-age", o.MaxAge, "CORS preflight max age.")
}

// Validate validates the CORS options.
func (o *CORSOptions) Validate() []error {
	if o == nil {
		return nil
	}

	var errs []error

	if len(o.AllowOrigins) == 0 {
		errs = append(errs, errors.New("CORS: AllowOrigins must be explicitly configured, empty list not allowed"))
	}

	hasWildcard := false
	for _, origin := range o.AllowOrigins {
		if origin == "*" {
			hasWildcard = true
			continue
		}
		if err := validateOriginFormat(origin); err != nil {
			errs = append(errs, fmt.Errorf("CORS: invalid origin format %q: %w", origin, err))
		}
	}

	// Wildcard cannot be used with credentials (RFC 6454).
	if hasWildcard && o.AllowCredentials {
		errs = append(errs, errors.New("CORS: cannot use wildcard origin '*' with AllowCredentials=true"))
	}

	return errs
}

// Complete completes the CORS options with defaults.
func (o *CORSOptions) Complete() error {
	return nil
}

// AddOrigin appends an origin to the allow-list if it is not already
// present. Used at startup to merge the CLIENT_URL environment entry.
func (o *CORSOptions) AddOrigin(origin string) {
	for _, existing := range o.AllowOrigins {
		if existing == origin {
			return
		}
	}
	o.AllowOrigins = append(o.AllowOrigins, origin)
}

// validateOriginFormat validates that an origin follows the correct URL
// format: scheme://host[:port], no path, query, or fragment.
func validateOriginFormat(origin string) error {
	if origin == "" {
		return errors.New("origin cannot be empty")
	}

	if !strings.Contains(origin, "://") {
		return errors.New("origin must include scheme (http:// or https://)")
	}

	schemeEnd := strings.Index(origin, "://") + 3
	if schemeEnd < len(origin) {
		remainder := origin[schemeEnd:]
		if strings.ContainsAny(remainder, "/?#") {
			return errors.New("origin should not include path, query, or fragment")
		}
	}

	return nil
}
