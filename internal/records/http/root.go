package http

import (
	"net/http"

	"github.com/aussiebroadwan/records/pkg/httpx"
	"github.com/aussiebroadwan/records/pkg/recordsdk"
)

// RootHandler godoc
//
//	@Summary		API banner
//	@Description	Confirms the service process is up. Does not touch the database.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	recordsdk.MessageResponse	"status, message"
//	@Router			/ [get].
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, recordsdk.MessageResponse{
			Status:  recordsdk.StatusOK,
			Message: "Records API is running",
		})
	}
}
