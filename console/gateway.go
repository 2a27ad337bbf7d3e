package console

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// envelope is the JSON wrapper every facade endpoint responds with.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// HTTPGateway is the resty-backed Gateway implementation used against
// a running instance of the REST facade.
type HTTPGateway struct {
	client *resty.Client
}

// NewHTTPGateway builds a gateway for the facade at baseURL. token is
// the bearer token obtained from one of the login endpoints; empty for
// the public endpoints.
func NewHTTPGateway(baseURL, token string) *HTTPGateway {
	client := resty.New().SetBaseURL(baseURL)
	if token != "" {
		client.SetAuthToken(token)
	}
	return &HTTPGateway{client: client}
}

// decode unpacks the response envelope, turning transport failures and
// non-2xx statuses into errors before any data is touched.
func decode(resp *resty.Response, err error, out interface{}) error {
	if err != nil {
		return err
	}

	var env envelope
	if uerr := json.Unmarshal(resp.Body(), &env); uerr != nil {
		return fmt.Errorf("console: malformed response (%s): %w", resp.Status(), uerr)
	}

	if resp.IsError() || !env.Status {
		msg := env.Message
		if msg == "" {
			msg = resp.Status()
		}
		return fmt.Errorf("console: request failed: %s", msg)
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if uerr := json.Unmarshal(env.Data, out); uerr != nil {
			return fmt.Errorf("console: decoding data: %w", uerr)
		}
	}
	return nil
}

// List fetches one collection in store order.
func (g *HTTPGateway) List(ctx context.Context, path string) ([]Record, error) {
	resp, err := g.client.R().SetContext(ctx).Get(path)

	var records []Record
	if derr := decode(resp, err, &records); derr != nil {
		return nil, derr
	}
	return records, nil
}

// Insert POSTs a new record and returns the stored copy (with its id).
func (g *HTTPGateway) Insert(ctx context.Context, path string, fields Record) (Record, error) {
	resp, err := g.client.R().SetContext(ctx).SetBody(fields).Post(path)

	var rec Record
	if derr := decode(resp, err, &rec); derr != nil {
		return nil, derr
	}
	return rec, nil
}

// Update PUTs a full replacement of one record.
func (g *HTTPGateway) Update(ctx context.Context, path, id string, fields Record) (Record, error) {
	resp, err := g.client.R().SetContext(ctx).SetBody(fields).Put(path + "/" + id)

	var rec Record
	if derr := decode(resp, err, &rec); derr != nil {
		return nil, derr
	}
	return rec, nil
}

// Patch sends a partial (status-only) update; the id rides in the body.
func (g *HTTPGateway) Patch(ctx context.Context, path string, fields Record) (Record, error) {
	resp, err := g.client.R().SetContext(ctx).SetBody(fields).Patch(path)

	var rec Record
	if derr := decode(resp, err, &rec); derr != nil {
		return nil, derr
	}
	return rec, nil
}

// Delete removes one record by id.
func (g *HTTPGateway) Delete(ctx context.Context, path, id string) error {
	resp, err := g.client.R().SetContext(ctx).Delete(path + "/" + id)
	return decode(resp, err, nil)
}
