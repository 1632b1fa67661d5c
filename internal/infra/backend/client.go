// Package backend is the HTTP client for the marketplace REST backend.
package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const maxErrorBody = 1 << 16

// Client implements the serviceability, delivery and account APIs over one base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend client. The http.Client carries no timeout of its own;
// callers bound requests through their context.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.Backend.BaseURL), "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// ServiceabilityAPI exposes the client as service.ServiceabilityAPI for Fx.
func ServiceabilityAPI(c *Client) service.ServiceabilityAPI { return c }

// DeliveryAPI exposes the client as service.DeliveryAPI for Fx.
func DeliveryAPI(c *Client) service.DeliveryAPI { return c }

// AccountAPI exposes the client as service.AccountAPI for Fx.
func AccountAPI(c *Client) service.AccountAPI { return c }

// CheckServiceability calls GET /serviceability/check/{pincode}.
func (c *Client) CheckServiceability(ctx context.Context, pincode entity.Pincode) (*entity.ServiceabilityResult, error) {
	var result entity.ServiceabilityResult
	path := "/serviceability/check/" + url.PathEscape(pincode.String())
	if err := c.getJSON(ctx, path, "", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type deliveryResponse struct {
	Success       bool   `json:"success"`
	EstimatedDate string `json:"estimated_date,omitempty"`
	Days          *int   `json:"days,omitempty"`
	Error         string `json:"error,omitempty"`
}

// CheckDelivery calls GET /delivery/check?pincode=&product_id=.
func (c *Client) CheckDelivery(ctx context.Context, pincode entity.Pincode, productID entity.ProductID) (*entity.DeliveryEstimate, error) {
	query := url.Values{}
	query.Set("pincode", pincode.String())
	query.Set("product_id", strconv.FormatInt(int64(productID), 10))

	var resp deliveryResponse
	if err := c.getJSON(ctx, "/delivery/check?"+query.Encode(), "", &resp); err != nil {
		return nil, err
	}

	estimate := &entity.DeliveryEstimate{
		Success: resp.Success,
		Error:   resp.Error,
	}
	if !resp.Success {
		return estimate, nil
	}

	estimate.Days = resp.Days
	if resp.EstimatedDate != "" {
		date, err := time.Parse(entity.EstimateDateLayout, resp.EstimatedDate)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid estimated_date %q", resp.EstimatedDate)
		}
		estimate.EstimatedDate = &date
	}

	return estimate, nil
}

// ListAddresses calls GET /addresses with the shopper's bearer token.
// Both a bare list and a {"data": [...]} envelope are accepted.
func (c *Client) ListAddresses(ctx context.Context, accessToken string) ([]entity.SavedAddress, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/addresses", accessToken, &raw); err != nil {
		return nil, err
	}

	var addresses []entity.SavedAddress
	if err := json.Unmarshal(raw, &addresses); err == nil {
		return addresses, nil
	}

	var envelope struct {
		Data []entity.SavedAddress `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode addresses")
	}

	return envelope.Data, nil
}

func (c *Client) getJSON(ctx context.Context, path, accessToken string, out any) error {
	if c.baseURL == "" {
		return errors.New("backend base URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Debug("Backend returned non-success status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", strings.TrimSpace(string(body))),
		)

		if resp.StatusCode == http.StatusUnauthorized {
			return domainerrors.ErrUnauthenticated.WrapMessage(path)
		}

		return &StatusError{StatusCode: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", path)
	}

	return nil
}

// StatusError is returned for non-2xx backend responses.
type StatusError struct {
	StatusCode int
	Path       string
}

func (e *StatusError) Error() string {
	return "backend " + e.Path + " returned status " + strconv.Itoa(e.StatusCode)
}
