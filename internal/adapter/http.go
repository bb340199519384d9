package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

type httpIntakeAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPIntakeAdapter constructs the HTTP implementation of
// [IntakeAdapter]. The base URL comes from cfg.HTTPAddress; a missing scheme
// defaults to http.
func NewHTTPIntakeAdapter(cfg config.Adapter, logger *logger.Logger) (IntakeAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("http intake adapter created")
	return &httpIntakeAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
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

	return strings.TrimRight(u.String(), "/"), nil
}

// Submit implements [IntakeAdapter].
func (h *httpIntakeAdapter) Submit(ctx context.Context, sub models.Submission) (models.Receipt, error) {
	var receipt models.Receipt

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("form", sub.FormID).
		SetBody(sub).
		SetResult(&receipt).
		Post("/api/forms/{form}/submissions")
	if err != nil {
		return models.Receipt{}, fmt.Errorf("submit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "*httpIntakeAdapter.Submit").Str("submission_id", sub.ID).Msg("submission refused")
		return models.Receipt{}, err
	}

	return receipt, nil
}

// List implements [IntakeAdapter].
func (h *httpIntakeAdapter) List(ctx context.Context, formID string, limit uint64) ([]models.Record, error) {
	records := make([]models.Record, 0)

	req := h.request(ctx).
		SetPathParam("form", formID).
		SetResult(&records)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/api/forms/{form}/submissions")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

// Regions implements [IntakeAdapter].
func (h *httpIntakeAdapter) Regions(ctx context.Context) ([]string, error) {
	var regions []string

	resp, err := h.request(ctx).SetResult(&regions).Get("/api/geography/regions")
	if err != nil {
		return nil, fmt.Errorf("regions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return regions, nil
}

// Communes implements [IntakeAdapter].
func (h *httpIntakeAdapter) Communes(ctx context.Context, region string) ([]string, error) {
	var communes []string

	resp, err := h.request(ctx).
		SetPathParam("region", region).
		SetResult(&communes).
		Get("/api/geography/regions/{region}/communes")
	if err != nil {
		return nil, fmt.Errorf("communes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return communes, nil
}

// Version implements [IntakeAdapter].
func (h *httpIntakeAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
