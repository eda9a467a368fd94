// Package service orchestrates a PURL resolution: record lookup, provenance gate,
// content negotiation and representation resolution.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"purl/internal/purl/family"
	"purl/internal/purl/mediatype"
	"purl/internal/purl/metrics"
	"purl/internal/purl/models"
	"purl/internal/purl/negotiate"
	"purl/internal/purl/ports"
	"purl/internal/purl/resolver"
	dErrors "purl/pkg/domain-errors"
	"purl/pkg/platform/sentinel"
	"purl/pkg/requestcontext"
)

// Upstream operation labels.
const (
	opFindByUnitID   = "find_by_unit_id"
	opFindMultimedia = "find_multimedia"
)

// Request is a single resolution request. Requested is the canonical list of requested
// media types; the caller has already applied any override.
type Request struct {
	Family    family.Family
	ID        string
	Requested []mediatype.MediaType
}

// Service resolves PURLs. It holds no mutable state and is safe for concurrent use.
type Service struct {
	lookup   ports.RecordLookup
	resolver *resolver.Resolver
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the service metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New creates a Service.
func New(lookup ports.RecordLookup, res *resolver.Resolver, opts ...Option) *Service {
	s := &Service{
		lookup:   lookup,
		resolver: res,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve decides how to answer req. A nil error always comes with an Outcome; errors
// carry a domain error code (configuration, upstream, integrity or internal).
func (s *Service) Resolve(ctx context.Context, req Request) (*Outcome, error) {
	start := time.Now()
	outcome, err := s.resolve(ctx, req)
	s.metrics.ObserveResolveLatency(time.Since(start))

	label := string(dErrors.CodeOf(err))
	if err == nil {
		label = outcome.Kind.String()
	}
	s.metrics.IncrementResolution(req.Family.String(), label)
	return outcome, err
}

func (s *Service) resolve(ctx context.Context, req Request) (*Outcome, error) {
	fam := req.Family
	log := s.logger.With(
		"request_id", requestcontext.RequestID(ctx),
		"family", fam.String(),
		"unit_id", req.ID,
	)

	rec, err := s.findRecord(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		log.InfoContext(ctx, "responding with 404 (Not Found)")
		return s.notFound(req), nil
	}
	if !fam.ValidateProvenance(rec) {
		log.InfoContext(ctx, "responding with 404 (Not Found): wrong source system",
			"source_system", rec.SourceSystemCode)
		return s.notFound(req), nil
	}

	if len(req.Requested) == 0 {
		return s.represent(ctx, log, req, rec, negotiate.Default, nil)
	}

	points, err := s.accessPoints(ctx, fam, rec)
	if err != nil {
		return nil, err
	}
	candidates, rejected := negotiate.Candidates(points)
	if len(rejected) > 0 {
		log.WarnContext(ctx, "ignoring multimedia with invalid format", "formats", rejected)
	}

	selected, ok := negotiate.Negotiate(req.Requested, candidates)
	if !ok {
		log.InfoContext(ctx, "responding with 406 (Not Acceptable)",
			"requested", mediatype.Join(req.Requested))
		return &Outcome{
			Kind:         OutcomeNotAcceptable,
			Family:       fam,
			ObjectType:   fam.ObjectType(),
			ID:           req.ID,
			Alternatives: candidates,
		}, nil
	}
	return s.represent(ctx, log, req, rec, selected, points)
}

func (s *Service) represent(ctx context.Context, log *slog.Logger, req Request, rec *models.Record, selected mediatype.MediaType, points []models.AccessPoint) (*Outcome, error) {
	rep, err := s.resolver.Resolve(req.Family, rec, selected, points)
	if err != nil {
		return nil, err
	}
	out := &Outcome{
		Family:     req.Family,
		ObjectType: req.Family.ObjectType(),
		ID:         req.ID,
		MediaType:  rep.MediaType,
	}
	if rep.Inline() {
		out.Kind = OutcomeInline
		out.Graph = rep.Graph
		out.Format = rep.Format
		log.InfoContext(ctx, "serving RDF", "media_type", rep.MediaType.String())
		return out, nil
	}
	out.Kind = OutcomeRedirect
	out.Location = rep.Location
	log.InfoContext(ctx, "redirecting", "media_type", rep.MediaType.String(), "location", rep.Location)
	return out, nil
}

// findRecord returns the single record for unitID, nil when there is none.
func (s *Service) findRecord(ctx context.Context, unitID string) (*models.Record, error) {
	start := time.Now()
	records, err := s.lookup.FindByUnitID(ctx, unitID)
	s.metrics.ObserveUpstreamLatency(opFindByUnitID, time.Since(start))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "record lookup failed for unitID "+unitID)
	}
	switch len(records) {
	case 0:
		return nil, nil
	case 1:
		return &records[0], nil
	default:
		return nil, dErrors.Newf(dErrors.CodeIntegrity, "duplicate unitID: %s (%d records)", unitID, len(records))
	}
}

func (s *Service) accessPoints(ctx context.Context, fam family.Family, rec *models.Record) ([]models.AccessPoint, error) {
	if fam.Multimedia() == family.Embedded {
		return rec.AccessPoints, nil
	}
	start := time.Now()
	points, err := s.lookup.FindMultimedia(ctx, rec)
	s.metrics.ObserveUpstreamLatency(opFindMultimedia, time.Since(start))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "multimedia lookup failed for unitID "+rec.UnitID)
	}
	return points, nil
}

func (s *Service) notFound(req Request) *Outcome {
	return &Outcome{
		Kind:       OutcomeNotFound,
		Family:     req.Family,
		ObjectType: req.Family.ObjectType(),
		ID:         req.ID,
	}
}
