package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"tg_dealscan/pkg/contextx"
)

const HeaderNameTraceID = "X-Trace-Id"

// TraceID takes the trace id from the request header or generates a new one.
// A header value that is not a valid xid is replaced.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := contextx.TraceID(r.Header.Get(HeaderNameTraceID))

		if _, err := xid.FromString(traceID.String()); err != nil {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(HeaderNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
