package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/records/internal/records/service"
	"github.com/aussiebroadwan/records/pkg/httpx"
	"github.com/aussiebroadwan/records/pkg/recordsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Pings the database. Answers 503 with status "degraded" when the ping fails.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	recordsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	recordsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, svc *service.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &recordsdk.HealthChecks{Database: "ok"}
		status := recordsdk.StatusOK
		code := http.StatusOK

		if err := svc.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, recordsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
