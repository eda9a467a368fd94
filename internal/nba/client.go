package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"purl/internal/platform/telemetry"
	"purl/internal/purl/models"
	"purl/pkg/platform/circuit"
)

const (
	opFindByUnitID   = "findByUnitID"
	opFindMultimedia = "multimediaQuery"

	maxBodyBytes = 8 << 20
)

// Client queries the Netherlands Biodiversity API over HTTP. It implements
// ports.RecordLookup.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
	logger     *slog.Logger
	breaker    *circuit.Breaker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The client is instrumented with the
// OTel transport either way.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithLogger sets the logger for upstream diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBreaker replaces the circuit breaker guarding upstream calls.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// New creates a client for the NBA rooted at baseURL. Trailing slashes on baseURL are
// ignored. timeout bounds every call.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tracer:  otel.Tracer("purl/internal/nba"),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.breaker == nil {
		c.breaker = circuit.New("nba")
	}
	if timeout > 0 {
		c.httpClient.Timeout = timeout
	}
	c.httpClient = telemetry.InstrumentClient(c.httpClient)
	return c
}

// FindByUnitID returns every specimen document carrying unitID.
func (c *Client) FindByUnitID(ctx context.Context, unitID string) ([]models.Record, error) {
	ctx, span := c.tracer.Start(ctx, "nba.FindByUnitID", trace.WithAttributes(
		attribute.String("nba.unit_id", unitID),
	))
	defer span.End()

	endpoint := c.baseURL + "/specimen/findByUnitID/" + url.PathEscape(unitID)
	var docs []specimenDTO
	if err := c.getJSON(ctx, opFindByUnitID, endpoint, &docs); err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	records := make([]models.Record, 0, len(docs))
	for _, d := range docs {
		records = append(records, toRecord(d))
	}
	span.SetAttributes(attribute.Int("nba.result_count", len(records)))
	return records, nil
}

// FindMultimedia returns the access points of the multimedia documents associated with
// rec, in result order.
func (c *Client) FindMultimedia(ctx context.Context, rec *models.Record) ([]models.AccessPoint, error) {
	if rec == nil {
		return nil, NewError(ErrorInternal, opFindMultimedia, "nil record", nil)
	}
	ctx, span := c.tracer.Start(ctx, "nba.FindMultimedia", trace.WithAttributes(
		attribute.String("nba.unit_id", rec.UnitID),
		attribute.String("nba.document_id", rec.DocumentID),
	))
	defer span.End()

	q := url.Values{}
	q.Set("associatedSpecimenReference", rec.DocumentID)
	endpoint := c.baseURL + "/multimedia/query?" + q.Encode()

	var result multimediaQueryResultDTO
	if err := c.getJSON(ctx, opFindMultimedia, endpoint, &result); err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	points := toMultimediaAccessPoints(result)
	span.SetAttributes(attribute.Int("nba.result_count", result.TotalSize))
	return points, nil
}

// getJSON issues a GET and decodes a 2xx body into out. Every failure is returned as an
// *Error with its normalized category. Timeouts and outages feed the circuit breaker;
// while it is open calls fail fast as unavailable. Calls the caller canceled say nothing
// about upstream health and are not recorded.
func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) error {
	if !c.breaker.Allow() {
		return NewError(ErrorUnavailable, op, "circuit open", nil)
	}
	err := c.doGetJSON(ctx, op, endpoint, out)
	switch GetCategory(err) {
	case ErrorCanceled:
		c.breaker.Release()
	case ErrorTimeout, ErrorUnavailable:
		if _, change := c.breaker.RecordFailure(); change.Opened {
			c.logger.ErrorContext(ctx, "nba circuit opened", "operation", op, "error", err)
		}
	default:
		if _, change := c.breaker.RecordSuccess(); change.Closed {
			c.logger.InfoContext(ctx, "nba circuit closed", "operation", op)
		}
	}
	return err
}

func (c *Client) doGetJSON(ctx context.Context, op, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return NewError(ErrorInternal, op, "build request", errors.Wrap(err, endpoint))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewError(transportCategory(ctx, err), op, "request failed", errors.Wrapf(err, "GET %s", endpoint))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return NewError(transportCategory(ctx, err), op, "read body", errors.Wrapf(err, "GET %s", endpoint))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "nba returned non-2xx status",
			"operation", op,
			"status", resp.StatusCode,
			"url", endpoint,
		)
		return NewError(statusCategory(resp.StatusCode), op,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return NewError(ErrorBadData, op, "decode response", errors.Wrapf(err, "GET %s", endpoint))
	}
	return nil
}

func statusCategory(status int) ErrorCategory {
	switch {
	case status == http.StatusNotFound:
		return ErrorNotFound
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return ErrorTimeout
	case status >= 500:
		return ErrorUnavailable
	default:
		return ErrorContractMismatch
	}
}

func transportCategory(ctx context.Context, err error) ErrorCategory {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrorTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorTimeout
	}
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return ErrorCanceled
	}
	return ErrorUnavailable
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(GetCategory(err)))
}
