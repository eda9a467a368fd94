package service

//go:generate mockgen -source=../ports/lookup.go -destination=mocks/mocks.go -package=mocks RecordLookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"purl/internal/platform/config"
	"purl/internal/purl/family"
	"purl/internal/purl/mediatype"
	"purl/internal/purl/metrics"
	"purl/internal/purl/models"
	"purl/internal/purl/rdf"
	"purl/internal/purl/resolver"
	"purl/internal/purl/service/mocks"
	dErrors "purl/pkg/domain-errors"
	"purl/pkg/platform/sentinel"
)

const testProperties = `
nba.baseurl: http://api.biodiversitydata.nl/v2/
purl.baseurl: https://data.biodiversitydata.nl
bioportal.specimen.url: https://bioportal.naturalis.nl/specimen/${unitID}
xenocanto.observation.url: https://www.xeno-canto.org/observation/${unitID}
waarneming.observation.url: https://waarneming.nl/observation/${sourceSystemId}/
`

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	lookup  *mocks.MockRecordLookup
	metrics *metrics.Metrics
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.lookup = mocks.NewMockRecordLookup(s.ctrl)

	cfg, err := config.Parse(config.Server{}, []byte(testProperties))
	s.Require().NoError(err)
	res, err := resolver.New(cfg)
	s.Require().NoError(err)

	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = New(s.lookup, res,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func ptr[T any](v T) *T { return &v }

func specimen(code string) models.Record {
	return models.Record{
		UnitID:           "RMNH.AVES.1",
		DocumentID:       "RMNH.AVES.1@CRS",
		SourceSystemID:   "1",
		SourceSystemCode: code,
		ScientificName:   ptr("Larus fuscus"),
		AccessPoints: []models.AccessPoint{
			{URI: "https://medialib.naturalis.nl/file/id/RMNH.AVES.1_1", Format: "image/jpeg"},
		},
	}
}

func accept(values ...string) []mediatype.MediaType {
	types, _ := mediatype.ParseList(values)
	return types
}

func (s *ServiceSuite) TestNotFound() {
	s.Run("empty result", func() {
		s.lookup.EXPECT().FindByUnitID(gomock.Any(), "RMNH.AVES.1").Return(nil, nil)

		out, err := s.service.Resolve(s.ctx, Request{Family: family.Naturalis, ID: "RMNH.AVES.1"})
		s.Require().NoError(err)
		s.Equal(OutcomeNotFound, out.Kind)
		s.Equal("specimen", out.ObjectType)
	})

	s.Run("lookup reports not found", func() {
		s.lookup.EXPECT().FindByUnitID(gomock.Any(), "RMNH.AVES.1").
			Return(nil, errors.Join(sentinel.ErrNotFound, errors.New("404 from upstream")))

		out, err := s.service.Resolve(s.ctx, Request{Family: family.Naturalis, ID: "RMNH.AVES.1"})
		s.Require().NoError(err)
		s.Equal(OutcomeNotFound, out.Kind)
	})
}

func (s *ServiceSuite) TestProvenanceFailureLooksLikeNotFound() {
	req := Request{Family: family.Naturalis, ID: "RMNH.AVES.1", Requested: accept("text/html")}

	s.lookup.EXPECT().FindByUnitID(gomock.Any(), "RMNH.AVES.1").Return(nil, nil)
	absent, err := s.service.Resolve(s.ctx, req)
	s.Require().NoError(err)

	s.lookup.EXPECT().FindByUnitID(gomock.Any(), "RMNH.AVES.1").Return([]models.Record{specimen("XC")}, nil)
	foreign, err := s.service.Resolve(s.ctx, req)
	s.Require().NoError(err)

	s.Equal(absent, foreign)
	s.Equal(2.0, testutil.ToFloat64(s.metrics.Resolutions.WithLabelValues("naturalis", "not_found")))
}

func (s *ServiceSuite) TestDuplicateUnitIDIsIntegrityError() {
	s.lookup.EXPECT().FindByUnitID(gomock.Any(), "RMNH.AVES.1").
		Return([]models.Record{specimen("CRS"), specimen("CRS")}, nil)

	out, err := s.service.Resolve(s.ctx, Request{Family: family.Naturalis, ID: "RMNH.AVES.1"})
	s.Nil(out)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeIntegrity))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Resolutions.WithLabelValues("naturalis", "integrity_error")))
}

func (s *ServiceSuite) TestUpstreamFailure() {
	cause := errors.New("connection refused")
	s.lookup.EXPECT().FindByUnitID(gomock.Any(), "RMNH.AVES.1").Return(nil, cause)

	_, err := s.service.Resolve(s.ctx, Request{Family: family.Naturalis, ID: "RMNH.AVES.1"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUpstream))
	s.Equal(cause, dErrors.RootCause(err))
}

func (s *ServiceSuite) TestEmptyAcceptServesRDF() {
	// Waarneming uses the multimedia index, which must not be queried for the default.
	rec := specimen("OBS")
	s.lookup.EXPECT().FindByUnitID(gomock.Any(), "RMNH.AVES.1").Return([]models.Record{rec}, nil)

	out, err := s.service.Resolve(s.ctx, Request{Family: family.Waarneming, ID: "RMNH.AVES.1"})
	s.Require().NoError(err)
	s.Equal(OutcomeInline, out.Kind)
	s.Equal(rdf.FormatRDFXML, out.Format)
	s.Equal(mediatype.RDFXML, out.MediaType)
	s.Equal("https://data.biodiversitydata.nl/waarneming/observation/RMNH.AVES.1", out.Graph.Subject)
}

func (s *ServiceSuite) TestRedirects() {
	tests := []struct {
		name     string
		accept   []string
		location string
	}{
		{"html", []string{"text/html,application/xhtml+xml,*/*;q=0.8"}, "https://bioportal.naturalis.nl/specimen/RMNH.AVES.1"},
		{"json", []string{"application/json"}, "http://api.biodiversitydata.nl/v2/specimen/findByUnitID/RMNH.AVES.1"},
		{"embedded image", []string{"image/*"}, "https://medialib.naturalis.nl/file/id/RMNH.AVES.1_1"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.lookup.EXPECT().FindByUnitID(gomock.Any(), "RMNH.AVES.1").Return([]models.Record{specimen("BRAHMS")}, nil)

			out, err := s.service.Resolve(s.ctx, Request{Family: family.Naturalis, ID: "RMNH.AVES.1", Requested: accept(tt.accept...)})
			s.Require().NoError(err)
			s.Equal(OutcomeRedirect, out.Kind)
			s.Equal(tt.location, out.Location)
		})
	}
}

func (s *ServiceSuite) TestNotAcceptableListsCandidates() {
	s.lookup.EXPECT().FindByUnitID(gomock.Any(), "XC1").Return([]models.Record{{
		UnitID:           "XC1",
		SourceSystemCode: "XC",
		AccessPoints:     []models.AccessPoint{{URI: "https://xeno-canto.org/1/download", Format: "audio/mp3"}},
	}}, nil)

	out, err := s.service.Resolve(s.ctx, Request{Family: family.XenoCanto, ID: "XC1", Requested: accept("video/mp4")})
	s.Require().NoError(err)
	s.Equal(OutcomeNotAcceptable, out.Kind)
	s.Equal("application/rdf+xml,text/turtle,application/ld+json,text/html,application/json,audio/mp3",
		mediatype.Join(out.Alternatives))
}

func (s *ServiceSuite) TestWaarnemingUsesMultimediaIndex() {
	rec := specimen("OBS")
	rec.AccessPoints = nil
	s.lookup.EXPECT().FindByUnitID(gomock.Any(), "RMNH.AVES.1").Return([]models.Record{rec}, nil)
	s.lookup.EXPECT().FindMultimedia(gomock.Any(), gomock.Any()).Return([]models.AccessPoint{
		{URI: "https://waarneming.nl/media/photo/1.png", Format: "image/png"},
	}, nil)

	out, err := s.service.Resolve(s.ctx, Request{Family: family.Waarneming, ID: "RMNH.AVES.1", Requested: accept("image/png")})
	s.Require().NoError(err)
	s.Equal(OutcomeRedirect, out.Kind)
	s.Equal("https://waarneming.nl/media/photo/1.png", out.Location)
}

func (s *ServiceSuite) TestWaarnemingMultimediaFailure() {
	s.lookup.EXPECT().FindByUnitID(gomock.Any(), "RMNH.AVES.1").Return([]models.Record{specimen("OBS")}, nil)
	s.lookup.EXPECT().FindMultimedia(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := s.service.Resolve(s.ctx, Request{Family: family.Waarneming, ID: "RMNH.AVES.1", Requested: accept("text/html")})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUpstream))
}

func (s *ServiceSuite) TestInlineTurtle() {
	s.lookup.EXPECT().FindByUnitID(gomock.Any(), "RMNH.AVES.1").Return([]models.Record{specimen("CRS")}, nil)

	out, err := s.service.Resolve(s.ctx, Request{Family: family.Naturalis, ID: "RMNH.AVES.1", Requested: accept("text/turtle")})
	s.Require().NoError(err)
	s.Equal(OutcomeInline, out.Kind)
	s.Equal(rdf.FormatTurtle, out.Format)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Resolutions.WithLabelValues("naturalis", "inline")))
}
