package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"purl/internal/purl/family"
	"purl/internal/purl/mediatype"
	"purl/internal/purl/service"
	dErrors "purl/pkg/domain-errors"
	"purl/pkg/platform/httputil"
	"purl/pkg/requestcontext"
)

// Service defines the interface for PURL resolution.
type Service interface {
	Resolve(ctx context.Context, req service.Request) (*service.Outcome, error)
}

// Handler serves the PURL family endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a PURL handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts one endpoint per PURL family on the router.
func (h *Handler) Register(r chi.Router) {
	for _, fam := range family.All {
		r.Get(fam.Pattern(), h.HandlePURL(fam))
	}
}

// HandlePURL handles GET /{family}/{object-type}/{id} for fam.
func (h *Handler) HandlePURL(fam family.Family) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := requestcontext.RequestID(ctx)
		id := objectID(r)
		q := r.URL.Query()
		debug := debugEnabled(q)

		override, hasOverride := acceptOverride(q)
		requested, rejected := mediatype.Requested(r.Header.Values("Accept"), override, hasOverride)
		if len(rejected) > 0 {
			h.logger.WarnContext(ctx, "ignoring invalid requested media types",
				"request_id", requestID,
				"media_types", rejected,
				"from_query", hasOverride,
			)
		}

		out, err := h.service.Resolve(ctx, service.Request{
			Family:    fam,
			ID:        id,
			Requested: requested,
		})

		var resp response
		if err != nil {
			h.logger.ErrorContext(ctx, "PURL resolution failed",
				"request_id", requestID,
				"family", fam.String(),
				"unit_id", id,
				"code", dErrors.CodeOf(err),
				"error", err,
			)
			resp = renderError(err, requestID)
		} else {
			resp = renderOutcome(out)
		}

		if debug {
			h.writeDebug(w, resp)
			return
		}
		h.write(ctx, w, resp, err != nil, requestID)
	}
}

func (h *Handler) write(ctx context.Context, w http.ResponseWriter, resp response, failed bool, requestID string) {
	if resp.negotiated {
		w.Header().Add("Vary", "Accept")
	}
	switch {
	case failed && resp.status >= http.StatusInternalServerError:
		httputil.WriteText(w, resp.status, httputil.StatusLine(resp.status)+"\n"+genericErrorDetail(requestID))
	case resp.graph != nil:
		w.Header().Set("Content-Type", resp.mediaType.String())
		w.WriteHeader(resp.status)
		if err := resp.graph.Write(w, resp.format); err != nil {
			h.logger.ErrorContext(ctx, "writing RDF failed", "request_id", requestID, "error", err)
		}
	case resp.location != "":
		w.Header().Set("Location", resp.location)
		httputil.WriteText(w, resp.status, httputil.StatusLine(resp.status)+"\n"+resp.detail)
	default:
		httputil.WriteText(w, resp.status, httputil.StatusLine(resp.status)+"\n"+resp.detail)
	}
}

// writeDebug always answers 200 with a plain-text account of what would have been sent.
func (h *Handler) writeDebug(w http.ResponseWriter, resp response) {
	if resp.negotiated {
		w.Header().Add("Vary", "Accept")
	}
	body := httputil.StatusLine(resp.status) + "\n"
	if resp.graph != nil {
		text, err := resp.graph.Render(resp.format)
		if err != nil {
			body = httputil.StatusLine(http.StatusInternalServerError) + "\n" + renderError(err, "").detail
		} else {
			body += "Media type: " + resp.mediaType.String() + "\n\n" + text
		}
	} else {
		body += resp.detail
	}
	httputil.WriteText(w, http.StatusOK, body)
}
