// Package gdex books consignments with the GDEX Prime API.
package gdex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"logistics/internal/core/domain/model/consignment"

	"go.uber.org/zap"
)

const (
	DefaultTimeout = 30 * time.Second

	createConsignmentPath = "/CreateConsignment"

	// maxResponseSize bounds how much of an answer is read.
	maxResponseSize = 1 << 20
)

// trackingNumberKeys are probed in order; the first non-empty value wins.
var trackingNumberKeys = []string{"cn", "CN", "cnNo", "consignmentNo"}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

type Option func(*Client)

// WithBaseURL replaces the endpoint chosen by the sandbox flag.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func NewClient(logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logger.With(zap.String("component", "gdex")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type receiver struct {
	ShipmentType     string `json:"shipmentType"`
	TotalPiece       int    `json:"totalPiece"`
	ShipmentContent  string `json:"shipmentContent"`
	ShipmentValue    int    `json:"shipmentValue"`
	ShipmentWeight   int    `json:"shipmentWeight"`
	ShipmentLength   int    `json:"shipmentLength"`
	ShipmentWidth    int    `json:"shipmentWidth"`
	ShipmentHeight   int    `json:"shipmentHeight"`
	IsDangerousGoods bool   `json:"isDangerousGoods"`
	CompanyName      string `json:"companyName"`
	ReceiverName     string `json:"receiverName"`
	ReceiverMobile   string `json:"receiverMobile"`
	ReceiverEmail    string `json:"receiverEmail"`
	ReceiverAddress1 string `json:"receiverAddress1"`
	ReceiverAddress2 string `json:"receiverAddress2"`
	ReceiverAddress3 string `json:"receiverAddress3"`
	ReceiverPostcode string `json:"receiverPostcode"`
	ReceiverCity     string `json:"receiverCity"`
	ReceiverState    string `json:"receiverState"`
	ReceiverCountry  string `json:"receiverCountry"`
}

type createConsignmentRequest struct {
	ShipmentReceiversArray []receiver `json:"ShipmentReceiversArray"`
}

func toReceiver(p consignment.Parcel) receiver {
	return receiver{
		ShipmentType:     consignment.ParcelType,
		TotalPiece:       consignment.ParcelPieces,
		ShipmentContent:  consignment.ParcelContent,
		ShipmentValue:    consignment.ParcelValue,
		ShipmentWeight:   p.Weight,
		ShipmentLength:   consignment.ParcelLength,
		ShipmentWidth:    consignment.ParcelWidth,
		ShipmentHeight:   consignment.ParcelHeight,
		IsDangerousGoods: false,
		CompanyName:      p.CompanyName,
		ReceiverName:     p.ReceiverName,
		ReceiverMobile:   p.ReceiverMobile,
		ReceiverEmail:    p.ReceiverEmail,
		ReceiverAddress1: p.ReceiverAddress1,
		ReceiverAddress2: p.ReceiverAddress2,
		ReceiverAddress3: p.ReceiverAddress3,
		ReceiverPostcode: p.ReceiverPostcode,
		ReceiverCity:     p.ReceiverCity,
		ReceiverState:    p.ReceiverState,
		ReceiverCountry:  p.ReceiverCountry,
	}
}

// CreateConsignment posts the parcels once and returns the tracking number
// of the answer.
func (c *Client) CreateConsignment(
	ctx context.Context,
	settings consignment.Settings,
	parcels []consignment.Parcel,
) (string, error) {
	creds := settings.Credentials()

	payload := createConsignmentRequest{ShipmentReceiversArray: make([]receiver, 0, len(parcels))}
	for _, p := range parcels {
		if err := p.Validate(); err != nil {
			return "", err
		}
		payload.ShipmentReceiversArray = append(payload.ShipmentReceiversArray, toReceiver(p))
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gdex: failed to marshal request: %w", err)
	}

	endpoint := c.endpoint(settings, creds.AccountNo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gdex: failed to create request: %w", err)
	}
	req.Header.Set("ApiToken", creds.APIToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", creds.SubscriptionKey)

	c.logger.Info("creating consignment",
		zap.String("url", endpoint),
		zap.ByteString("payload", body),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("consignment request failed", zap.Error(err))
		return "", consignment.NewServiceUnreachableError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		c.logger.Warn("failed to read consignment response", zap.Error(err))
		return "", consignment.NewServiceUnreachableError(err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("consignment rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return "", &consignment.RemoteError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	cn, err := ExtractTrackingNumber(raw)
	if err != nil {
		c.logger.Warn("unexpected consignment response", zap.ByteString("body", raw), zap.Error(err))
		return "", err
	}

	c.logger.Info("consignment created", zap.String("tracking_number", cn))
	return cn, nil
}

func (c *Client) endpoint(settings consignment.Settings, accountNo string) string {
	base := c.baseURL
	if base == "" {
		base = settings.BaseURL()
	}
	return base + createConsignmentPath + "?accountNo=" + url.QueryEscape(accountNo)
}
