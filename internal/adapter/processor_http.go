package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-unit-dispatcher/internal/config"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/internal/utils"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

// HeaderInvocationType tells an HTTP processor that the caller does not wait
// for the processing result.
const (
	HeaderInvocationType = "X-Invocation-Type"
	invocationTypeEvent  = "Event"
)

type httpProcessorAdapter struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewHTTPProcessorAdapter constructs an HTTP implementation of
// [ProcessorAdapter] posting payloads to cfg.ProcessorURL.
//
// Returns an error if cfg.ProcessorURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPProcessorAdapter(cfg config.Adapter, log *logger.Logger) (ProcessorAdapter, error) {
	processorURL, err := normalizeURL(cfg.ProcessorURL)
	if err != nil {
		return nil, fmt.Errorf("invalid processor url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)

	log.Debug().Str("url", processorURL).Msg("creating http processor adapter")
	return &httpProcessorAdapter{client: client, url: processorURL, logger: log}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Dispatch implements [ProcessorAdapter]. It POSTs the payload as JSON and
// treats any 2xx status as acceptance.
func (h *httpProcessorAdapter) Dispatch(ctx context.Context, payload models.DispatchPayload) error {
	log := logger.FromContext(ctx)

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(HeaderInvocationType, invocationTypeEvent).
		SetBody(payload)
	if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
		req.SetHeader(utils.HeaderTraceID, traceID)
	}

	resp, err := req.Post(h.url)
	if err != nil {
		log.Err(err).Str("func", "*httpProcessorAdapter.Dispatch").Msg("dispatch request failed")
		return fmt.Errorf("dispatch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpProcessorAdapter.Dispatch").Int("status", resp.StatusCode()).Msg("processor rejected dispatch")
		return err
	}

	log.Debug().Str("func", "*httpProcessorAdapter.Dispatch").
		Int("status", resp.StatusCode()).
		Int("units", len(payload.Units)).
		Msg("dispatch accepted")

	return nil
}
