package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"purl/internal/purl/mediatype"
	"purl/internal/purl/rdf"
	"purl/internal/purl/service"
	dErrors "purl/pkg/domain-errors"
	"purl/pkg/platform/httputil"
)

// response is the rendered form of one resolution, before the debug flag decides how it is
// delivered.
type response struct {
	status   int
	location string
	detail   string // body text after the status line

	// inline content
	graph     *rdf.Graph
	format    rdf.Format
	mediaType mediatype.MediaType

	negotiated bool
}

func renderOutcome(out *service.Outcome) response {
	switch out.Kind {
	case service.OutcomeNotFound:
		return response{
			status: http.StatusNotFound,
			detail: fmt.Sprintf("No %s exists with ID %q\n", out.ObjectType, out.ID),
		}
	case service.OutcomeNotAcceptable:
		return response{
			status:     http.StatusNotAcceptable,
			detail:     "None of the requested media types can be served\nAcceptable media types for this object: " + mediatype.Join(out.Alternatives) + "\n",
			negotiated: true,
		}
	case service.OutcomeRedirect:
		return response{
			status:     http.StatusSeeOther,
			location:   out.Location,
			detail:     out.Location + "\n",
			mediaType:  out.MediaType,
			negotiated: true,
		}
	case service.OutcomeInline:
		return response{
			status:     http.StatusOK,
			graph:      out.Graph,
			format:     out.Format,
			mediaType:  out.MediaType,
			negotiated: true,
		}
	default:
		return renderError(dErrors.Newf(dErrors.CodeInternal, "unknown outcome %d", out.Kind), "")
	}
}

// renderError keeps the full causal chain in detail; only debug responses show it.
func renderError(err error, requestID string) response {
	code := dErrors.CodeOf(err)
	message := err.Error()
	hasCause := false
	var de *dErrors.Error
	if errors.As(err, &de) {
		message = de.Message
		hasCause = de.Err != nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Code: %s\nMessage: %s\n", code, message)
	if hasCause {
		fmt.Fprintf(&sb, "Root cause: %v\n", dErrors.RootCause(err))
	}
	if requestID != "" {
		fmt.Fprintf(&sb, "Request ID: %s\n", requestID)
	}
	return response{status: httputil.StatusFor(code), detail: sb.String()}
}

// genericErrorDetail is all a non-debug client learns about a server error.
func genericErrorDetail(requestID string) string {
	return fmt.Sprintf("An unexpected error occurred (request ID %s)\n", requestID)
}
