// Package options contains flags and options for initializing the API server.
package options

import (
	"errors"
	"net"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver"
	imagegenopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/imagegen"
	jwtopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/jwt"
	logopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/logger"
	mwopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/middleware"
	mongoopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/mongodb"
	httpopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/server/http"
)

// ServerOptions contains the configuration options for the server.
type ServerOptions struct {
	// HTTPOptions contains HTTP server configuration.
	HTTPOptions *httpopts.Options `json:"http" mapstructure:"http"`

	// LogOptions contains logger configuration.
	LogOptions *logopts.Options `json:"log" mapstructure:"log"`

	// JWTOptions contains JWT authentication configuration.
	JWTOptions *jwtopts.Options `json:"jwt" mapstructure:"jwt"`

	// MongoOptions contains MongoDB configuration.
	MongoOptions *mongoopts.Options `json:"mongodb" mapstructure:"mongodb"`

	// CORSOptions contains the origin allow-list configuration.
	CORSOptions *mwopts.CORSOptions `json:"cors" mapstructure:"cors"`

	// ImageGenOptions contains the text-to-image provider configuration.
	ImageGenOptions *imagegenopts.Options `json:"imagegen" mapstructure:"imagegen"`

	// ShutdownTimeout is the timeout for graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown-timeout" mapstructure:"shutdown-timeout"`
}

// NewServerOptions creates a ServerOptions instance with default values.
func NewServerOptions() *ServerOptions {
	return &ServerOptions{
		HTTPOptions:     httpopts.NewOptions(),
		LogOptions:      logopts.NewOptions(),
		JWTOptions:      jwtopts.NewOptions(),
		MongoOptions:    mongoopts.NewOptions(),
		CORSOptions:     mwopts.NewCORSOptions(),
		ImageGenOptions: imagegenopts.NewOptions(),
		ShutdownTimeout: 30 * time.Second,
	}
}

// AddFlags adds all server flags to the given flag set.
func (o *ServerOptions) AddFlags(fs *pflag.FlagSet) {
	o.HTTPOptions.AddFlags(fs)
	o.LogOptions.AddFlags(fs)
	o.JWTOptions.AddFlags(fs)
	o.MongoOptions.AddFlags(fs)
	o.CORSOptions.AddFlags(fs)
	o.ImageGenOptions.AddFlags(fs)

	fs.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", o.ShutdownTimeout, "Graceful shutdown timeout")
}

// Complete completes all the required options. Plain environment
// variables take effect here so the server can be deployed with nothing
// but PORT, CLIENT_URL, MONGODB_URI, JWT_SECRET, and CLIPDROP_API set.
func (o *ServerOptions) Complete() error {
	if port := os.Getenv("PORT"); port != "" {
		o.HTTPOptions.Addr = net.JoinHostPort("", port)
	}
	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		o.CORSOptions.AddOrigin(clientURL)
	}
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		o.MongoOptions.URI = uri
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		o.JWTOptions.Key = secret
	}
	if apiKey := os.Getenv("CLIPDROP_API"); apiKey != "" {
		o.ImageGenOptions.APIKey = apiKey
	}

	if err := o.JWTOptions.Complete(); err != nil {
		return err
	}
	return o.HTTPOptions.Complete()
}

// Validate checks whether the options in ServerOptions are valid.
func (o *ServerOptions) Validate() error {
	errs := []error{}

	errs = append(errs, o.HTTPOptions.Validate()...)
	errs = append(errs, o.MongoOptions.Validate()...)
	errs = append(errs, o.CORSOptions.Validate()...)
	errs = append(errs, o.ImageGenOptions.Validate()...)
	if err := o.JWTOptions.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := o.LogOptions.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Config builds an apiserver.Config based on ServerOptions.
func (o *ServerOptions) Config() (*apiserver.Config, error) {
	return &apiserver.Config{
		HTTPOptions:     o.HTTPOptions,
		LogOptions:      o.LogOptions,
		JWTOptions:      o.JWTOptions,
		MongoOptions:    o.MongoOptions,
		CORSOptions:     o.CORSOptions,
		ImageGenOptions: o.ImageGenOptions,
		ShutdownTimeout: o.ShutdownTimeout,
	}, nil
}
