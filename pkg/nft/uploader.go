package nft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/tikket/tikket-server/internal/metrics"
	"github.com/tikket/tikket-server/pkg/config"
)

// defaultGatewayBase is where uploaded content is served from.
const defaultGatewayBase = "https://gateway.irys.xyz"

// Uploader pushes content to a content-addressed storage gateway. It tries the
// primary endpoint first, then each fallback in order, with a fixed retry
// count per endpoint.
type Uploader struct {
	endpoints   []string
	retries     int
	gatewayBase string
	client      *http.Client
	logger      *zap.Logger
}

// uploadResponse is the gateway's reply to a successful upload.
type uploadResponse struct {
	ID string `json:"id"`
}

// NewUploader creates an uploader from storage configuration.
func NewUploader(cfg *config.StorageConfig, logger *zap.Logger) *Uploader {
	endpoints := append([]string{cfg.PrimaryURL}, cfg.FallbackURLs...)
	retries := cfg.Retries
	if retries <= 0 {
		retries = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Uploader{
		endpoints:   endpoints,
		retries:     retries,
		gatewayBase: defaultGatewayBase,
		client:      &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// Upload stores data on the gateway and returns the content URI. All endpoints
// and retries are exhausted before giving up.
func (u *Uploader) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	var lastErr error
	for _, endpoint := range u.endpoints {
		for attempt := 1; attempt <= u.retries; attempt++ {
			uri, err := u.uploadOnce(ctx, endpoint, name, contentType, data)
			if err == nil {
				metrics.UploadsTotal.WithLabelValues(endpoint, "success").Inc()
				return uri, nil
			}
			metrics.UploadsTotal.WithLabelValues(endpoint, "failure").Inc()
			u.logger.Warn("upload attempt failed",
				zap.String("endpoint", endpoint),
				zap.Int("attempt", attempt),
				zap.String("name", name),
				zap.Error(err),
			)
			lastErr = err
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
		}
	}
	return "", fmt.Errorf("all upload endpoints exhausted: %w", lastErr)
}

func (u *Uploader) uploadOnce(ctx context.Context, endpoint, name, contentType string, data []byte) (string, error) {
	target, err := url.JoinPath(endpoint, "tx")
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-File-Name", name)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upload endpoint returned status %d", resp.StatusCode)
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if ur.ID == "" {
		return "", fmt.Errorf("upload response missing content id")
	}

	return fmt.Sprintf("%s/%s", u.gatewayBase, ur.ID), nil
}
