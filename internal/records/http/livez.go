package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/records/pkg/httpx"
	"github.com/aussiebroadwan/records/pkg/recordsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns uptime and version. Always 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	recordsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, recordsdk.HealthResponse{
			Status:  recordsdk.StatusOK,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		})
	}
}
