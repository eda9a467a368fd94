package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purl/pkg/requestcontext"
)

func serve(t *testing.T, inbound string) (ctxID string, rr *httptest.ResponseRecorder) {
	t.Helper()
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestcontext.RequestID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		req.Header.Set(Header, inbound)
	}
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return ctxID, rr
}

func TestGeneratesID(t *testing.T) {
	id, rr := serve(t, "")
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, rr.Header().Get(Header))
}

func TestReusesInboundID(t *testing.T) {
	id, rr := serve(t, "edge-1234")
	assert.Equal(t, "edge-1234", id)
	assert.Equal(t, "edge-1234", rr.Header().Get(Header))
}

func TestRejectsUnusableInboundID(t *testing.T) {
	for _, inbound := range []string{strings.Repeat("x", maxInboundLength+1), "has space"} {
		id, _ := serve(t, inbound)
		assert.NotEqual(t, inbound, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
}
