package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-form-keeper/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// request starts a resty request bound to ctx, forwarding the trace id when
// ctx carries one.
func (h *httpIntakeAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}
