/*
Package recordsdk provides the wire types and a Go client for the records data
service.

The service exposes one flat collection of records ({id, name, created_at})
over JSON:

	GET    /              banner
	GET    /api/health    soft health check (always 200)
	GET    /api/data      list, ordered by id ascending
	POST   /api/data      create {name}
	PUT    /api/data/{id} rename {name}
	DELETE /api/data/{id} delete

Every body carries a status discriminator ("ok" or "error") in addition to the
HTTP status code. The client treats anything other than the expected status
code, or a body whose status is not "ok", as an *APIError:

	client := recordsdk.NewSDKClient("http://localhost:5000")

	rec, err := client.CreateRecord(ctx, "Widget")
	if err != nil {
		var apiErr *recordsdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
			// name was blank
		}
		return err
	}

	records, err := client.ListRecords(ctx)

Network failures are returned wrapped, unchanged, so callers can tell them
apart from service errors with errors.As.
*/
package recordsdk
