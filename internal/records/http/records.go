package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/records/internal/records/service"
	"github.com/aussiebroadwan/records/pkg/httpx"
	"github.com/aussiebroadwan/records/pkg/recordsdk"
	"github.com/aussiebroadwan/records/pkg/slogx"
)

// RecordsHandler handles the /api/data endpoints.
type RecordsHandler struct {
	RecordService *service.RecordService
}

// HandleList handles GET /api/data
//
//	@Summary		List records
//	@Description	Returns the whole collection ordered by id ascending. No pagination.
//	@Tags			Records
//	@Produce		json
//	@Success		200	{object}	recordsdk.ListRecordsResponse	"status, data"
//	@Failure		500	{object}	recordsdk.ErrorResponse			"status, message (database error text)"
//	@Router			/api/data [get].
func (h *RecordsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.RecordService.List(ctx)
	if err != nil {
		writeUpstreamError(w, r, "failed to list records", err)
		return
	}

	data := make([]recordsdk.Record, len(records))
	for i, rec := range records {
		data[i] = service.ToWire(rec)
	}

	httpx.WriteJSON(w, http.StatusOK, recordsdk.ListRecordsResponse{
		Status: recordsdk.StatusOK,
		Data:   data,
	})
}

// HandleCreate handles POST /api/data
//
//	@Summary		Create record
//	@Description	Inserts a record. The name is trimmed and must not be blank.
//	@Tags			Records
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recordsdk.RecordRequest		true	"Record name"
//	@Success		200		{object}	recordsdk.RecordResponse	"status, data"
//	@Failure		400		{object}	recordsdk.ErrorResponse		"status, message"
//	@Failure		500		{object}	recordsdk.ErrorResponse		"status, message (database error text)"
//	@Router			/api/data [post].
func (h *RecordsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRecordRequest(w, r)
	if !ok {
		return
	}

	rec, err := h.RecordService.Create(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidName) {
			writeError(w, http.StatusBadRequest, msgNameRequired)
			return
		}
		writeUpstreamError(w, r, "failed to create record", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, recordsdk.RecordResponse{
		Status: recordsdk.StatusOK,
		Data:   service.ToWire(rec),
	})
}

// HandleUpdate handles PUT /api/data/{id}
//
//	@Summary		Rename record
//	@Description	Replaces the name of an existing record. The name is trimmed and must not be blank.
//	@Tags			Records
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Record ID"
//	@Param			request	body		recordsdk.RecordRequest		true	"New name"
//	@Success		200		{object}	recordsdk.RecordResponse	"status, data"
//	@Failure		400		{object}	recordsdk.ErrorResponse		"status, message"
//	@Failure		404		{object}	recordsdk.ErrorResponse		"status, message"
//	@Failure		500		{object}	recordsdk.ErrorResponse		"status, message (database error text)"
//	@Router			/api/data/{id} [put].
func (h *RecordsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	req, ok := decodeRecordRequest(w, r)
	if !ok {
		return
	}

	rec, err := h.RecordService.Update(r.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidName):
			writeError(w, http.StatusBadRequest, msgNameRequired)
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, service.ErrNotFound.Error())
		default:
			writeUpstreamError(w, r, "failed to update record", err, "record_id", id)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, recordsdk.RecordResponse{
		Status: recordsdk.StatusOK,
		Data:   service.ToWire(rec),
	})
}

// HandleDelete handles DELETE /api/data/{id}
//
//	@Summary		Delete record
//	@Description	Removes a record. Deleting an id that does not exist also succeeds.
//	@Tags			Records
//	@Produce		json
//	@Param			id	path		int							true	"Record ID"
//	@Success		200	{object}	recordsdk.MessageResponse	"status, message"
//	@Failure		400	{object}	recordsdk.ErrorResponse		"status, message"
//	@Failure		500	{object}	recordsdk.ErrorResponse		"status, message (database error text)"
//	@Router			/api/data/{id} [delete].
func (h *RecordsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.RecordService.Delete(r.Context(), id); err != nil {
		writeUpstreamError(w, r, "failed to delete record", err, "record_id", id)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, recordsdk.MessageResponse{
		Status:  recordsdk.StatusOK,
		Message: "Deleted successfully",
	})
}

const (
	msgNameRequired = "Name is required"
	msgInvalidJSON  = "Invalid JSON in request body"
	msgInvalidID    = "Invalid record id"
)

func decodeRecordRequest(w http.ResponseWriter, r *http.Request) (recordsdk.RecordRequest, bool) {
	var req recordsdk.RecordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		// No body at all means no name
		if errors.Is(err, httpx.ErrEmptyBody) {
			writeError(w, http.StatusBadRequest, msgNameRequired)
		} else {
			writeError(w, http.StatusBadRequest, msgInvalidJSON)
		}
		return req, false
	}
	return req, true
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, recordsdk.ErrorResponse{
		Status:  recordsdk.StatusError,
		Message: msg,
	})
}

// writeUpstreamError logs err and returns its text to the caller unchanged.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, logMsg string, err error, attrs ...any) {
	slogx.FromContext(r.Context()).Error(logMsg, append([]any{"error", err}, attrs...)...)
	writeError(w, http.StatusInternalServerError, err.Error())
}
