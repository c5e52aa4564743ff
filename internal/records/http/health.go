package http

import (
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/records/internal/records/service"
	"github.com/aussiebroadwan/records/pkg/httpx"
	"github.com/aussiebroadwan/records/pkg/recordsdk"
	"github.com/aussiebroadwan/records/pkg/slogx"
)

// HealthHandler godoc
//
//	@Summary		Soft health check
//	@Description	Runs a query against the records table and reports the outcome in the message.
//	@Description	Always answers 200 with status "ok", even when the database is unreachable.
//	@Description	Use /readyz for a signal that fails when the database does.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	recordsdk.MessageResponse	"status, message"
//	@Router			/api/health [get].
func HealthHandler(svc *service.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		msg := "Database connected"
		count, err := svc.Health(ctx)
		if err != nil {
			slogx.FromContext(ctx).Warn("health check: database unreachable", "error", err)
			msg = "Service is running but the database is unreachable: " + err.Error()
		} else {
			msg = fmt.Sprintf("%s (%d records)", msg, count)
		}

		httpx.WriteJSON(w, http.StatusOK, recordsdk.MessageResponse{
			Status:  recordsdk.StatusOK,
			Message: msg,
		})
	}
}
