// Package imagegen provides configuration for the external text-to-image
// provider.
package imagegen

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/pflag"

	"github.com/Afzalshaikh78/ImageGenerator/pkg/options"
)

var _ options.IOptions = (*Options)(nil)

// Options contains the text-to-image provider settings.
type Options struct {
	// Endpoint is the provider's text-to-image URL.
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`
	// APIKey authenticates requests to the provider.
	APIKey string `json:"api-key" mapstructure:"api-key"`
	// Timeout bounds a single generation request.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
	// MaxRetries is the number of retries on provider 5xx responses.
	MaxRetries int `json:"max-retries" mapstructure:"max-retries"`
}

// NewOptions creates an Options with defaults.
func NewOptions() *Options {
	return &Options{
		Endpoint:   "https://clipdrop-api.co/text-to-image/v1",
		Timeout:    60 * time.Second,
		MaxRetries: 2,
	}
}

// AddFlags adds flags related to the image provider to the flag set.
func (o *Options) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.Endpoint, options.Join(prefixes...)+"imagegen.endpoint", o.Endpoint, "Text-to-image provider endpoint.")
	fs.StringVar(&o.APIKey, options.Join(prefixes...)+"imagegen.api-key", o.APIKey, "API key for the text-to-image provider.")
	fs.DurationVar(&o.Timeout, options.Join(prefixes...)+"imagegen.timeout", o.Timeout, "Timeout for a single generation request.")
	fs.IntVar(&o.MaxRetries, options.Join(prefixes...)+"imagegen.max-retries", o.MaxRetries, "Number of retries on provider server errors.")
}

// Validate verifies flags passed to Options.
func (o *Options) Validate() []error {
	var errs []error

	if o.Endpoint == "" {
		errs = append(errs, fmt.Errorf("imagegen endpoint cannot be empty"))
	} else if _, err := url.ParseRequestURI(o.Endpoint); err != nil {
		errs = append(errs, fmt.Errorf("invalid imagegen endpoint %q: %w", o.Endpoint, err))
	}

	if o.APIKey == "" {
		errs = append(errs, fmt.Errorf("imagegen api key cannot be empty"))
	}

	if o.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("imagegen timeout must be positive"))
	}

	if o.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("imagegen max retries cannot be negative"))
	}

	return errs
}

// Complete fills in any fields not set that are required to have valid data.
func (o *Options) Complete() error {
	return nil
}
