package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/service"
)

func executeTraceID(inboundTraceID string) *httptest.ResponseRecorder {
	h := &Handler{logger: logger.Nop(), services: &service.Services{}}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if inboundTraceID != "" {
		req.Header.Set(traceIDHeader, inboundTraceID)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_HonoursInboundHeader(t *testing.T) {
	rr := executeTraceID("caller-supplied-id")
	assert.Equal(t, "caller-supplied-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesWhenAbsent(t *testing.T) {
	rr := executeTraceID("")
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	first := executeTraceID("").Header().Get(traceIDHeader)
	second := executeTraceID("").Header().Get(traceIDHeader)
	assert.NotEqual(t, first, second)
}
