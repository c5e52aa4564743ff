package recordsdk_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/records/pkg/recordsdk"
)

func newFakeServer(t *testing.T, mux *http.ServeMux) *recordsdk.SDKClient {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return recordsdk.NewSDKClient(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestRecordCalls(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, recordsdk.ListRecordsResponse{
			Status: recordsdk.StatusOK,
			Data:   []recordsdk.Record{{ID: 1, Name: "Widget", CreatedAt: created}},
		})
	})
	mux.HandleFunc("POST /api/data", func(w http.ResponseWriter, r *http.Request) {
		var req recordsdk.RecordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		writeJSON(w, http.StatusOK, recordsdk.RecordResponse{
			Status: recordsdk.StatusOK,
			Data:   recordsdk.Record{ID: 2, Name: req.Name, CreatedAt: created},
		})
	})
	mux.HandleFunc("PUT /api/data/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.PathValue("id"))
		var req recordsdk.RecordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusOK, recordsdk.RecordResponse{
			Status: recordsdk.StatusOK,
			Data:   recordsdk.Record{ID: 2, Name: req.Name, CreatedAt: created},
		})
	})
	mux.HandleFunc("DELETE /api/data/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, recordsdk.MessageResponse{Status: recordsdk.StatusOK, Message: "Deleted successfully"})
	})

	client := newFakeServer(t, mux)
	ctx := t.Context()

	list, err := client.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, created.Equal(list[0].CreatedAt))

	rec, err := client.CreateRecord(ctx, "Gizmo")
	require.NoError(t, err)
	require.Equal(t, int64(2), rec.ID)
	require.Equal(t, "Gizmo", rec.Name)

	rec, err = client.UpdateRecord(ctx, 2, "Gadget")
	require.NoError(t, err)
	require.Equal(t, "Gadget", rec.Name)

	msg, err := client.DeleteRecord(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Deleted successfully", msg.Message)
}

func TestErrorResponses(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/data", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, recordsdk.ErrorResponse{Status: recordsdk.StatusError, Message: "Name is required"})
	})
	mux.HandleFunc("GET /api/data", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	mux.HandleFunc("DELETE /api/data/{id}", func(w http.ResponseWriter, r *http.Request) {
		// 200 with an error discriminator is still a failure
		writeJSON(w, http.StatusOK, recordsdk.MessageResponse{Status: recordsdk.StatusError, Message: "nope"})
	})

	client := newFakeServer(t, mux)
	ctx := t.Context()

	_, err := client.CreateRecord(ctx, "")
	apiErr, ok := recordsdk.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Name is required", apiErr.Message)

	_, err = client.ListRecords(ctx)
	apiErr, ok = recordsdk.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)

	_, err = client.DeleteRecord(ctx, 1)
	apiErr, ok = recordsdk.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, "nope", apiErr.Message)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := recordsdk.NewSDKClient(srv.URL)
	srv.Close()

	_, err := client.GetHealth(t.Context())
	require.Error(t, err)
	_, ok := recordsdk.AsAPIError(err)
	require.False(t, ok)
}
