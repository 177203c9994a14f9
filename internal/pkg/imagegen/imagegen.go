// Package imagegen calls the external text-to-image provider and returns
// generated images as base64 data URIs.
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	imagegenopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/imagegen"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/utils/json"
)

// Generator produces an image for a text prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client talks to the provider over HTTP with retry on server errors.
type Client struct {
	opts       *imagegenopts.Options
	httpClient *http.Client
}

var _ Generator = (*Client)(nil)

// New creates a provider client.
func New(opts *imagegenopts.Options) *Client {
	return &Client{
		opts: opts,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

// Generate submits the prompt as a multipart form and returns the image
// bytes encoded as a data URI. Provider 5xx responses are retried with
// linear backoff; 4xx responses fail immediately.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, contentType, err := promptForm(prompt)
	if err != nil {
		return "", err
	}

	var lastErr error
	for i := 0; i <= c.opts.MaxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("build generation request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("x-api-key", c.opts.APIKey)

		resp, err := c.httpClient.Do(req)
		if err == nil {
			if resp.StatusCode < 500 {
				defer func() { _ = resp.Body.Close() }()
				return decodeImage(resp)
			}
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("provider server error, status code %d", resp.StatusCode)
		} else {
			lastErr = err
		}

		if i < c.opts.MaxRetries {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(i+1) * 500 * time.Millisecond):
			}
		}
	}
	return "", lastErr
}

// promptForm builds the multipart body the provider expects.
func promptForm(prompt string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("prompt", prompt); err != nil {
		return nil, "", fmt.Errorf("write prompt field: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// providerError is the JSON body the provider sends on failures.
type providerError struct {
	Error string `json:"error"`
}

// decodeImage turns a successful provider response into a data URI.
func decodeImage(resp *http.Response) (string, error) {
	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var pe providerError
		if err := json.Unmarshal(bodyBytes, &pe); err == nil && pe.Error != "" {
			return "", fmt.Errorf("generation failed with status code %d: %s", resp.StatusCode, pe.Error)
		}
		return "", fmt.Errorf("generation failed with status code %d", resp.StatusCode)
	}

	imageBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read provider response: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(imageBytes)), nil
}
