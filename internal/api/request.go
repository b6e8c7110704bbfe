package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "studywise-client/api"

// RequestOptions is the options bag of Request. Method defaults to GET.
// Body is sent as-is; callers serialize it.
type RequestOptions struct {
	Method  string
	Body    []byte
	Headers http.Header
}

// Request calls base+endpoint and returns the parsed JSON body of a 2xx
// response untouched. Every failure is logged and returned as *Error:
//
//   - body not JSON: KindParse, message is the status text
//   - non-2xx: KindRequest, message from the body's "error", then
//     "message", then "HTTP <status>"
//   - no response: KindTransport wrapping the cause
//
// Nothing is retried.
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions) (json.RawMessage, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		header[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
	}

	return c.send(ctx, method, endpoint, body, header, requestMessage)
}

// RequestJSON is Request followed by decoding into out. A 2xx body that does
// not fit out is a parse failure.
func (c *Client) RequestJSON(ctx context.Context, endpoint string, opts RequestOptions, out any) error {
	raw, err := c.Request(ctx, endpoint, opts)
	if err != nil {
		return err
	}
	return c.decode(raw, opts.Method, endpoint, out)
}

func (c *Client) decode(raw json.RawMessage, method, endpoint string, out any) error {
	if out == nil {
		return nil
	}
	if method == "" {
		method = http.MethodGet
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return c.fail(&Error{
			Kind:     KindParse,
			Method:   method,
			Endpoint: endpoint,
			Status:   http.StatusOK,
			Message:  "unexpected response shape",
			Err:      err,
		})
	}
	return nil
}

// requestMessage is the non-2xx message rule of JSON calls.
func requestMessage(status int, body []byte) string {
	for _, field := range []string{"error", "message"} {
		if r := gjson.GetBytes(body, field); r.Exists() && r.String() != "" {
			return r.String()
		}
	}
	return statusMessage(status)
}

func (c *Client) send(ctx context.Context, method, endpoint string, body io.Reader, header http.Header, failMessage func(int, []byte) string) (json.RawMessage, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, method+" "+endpoint, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("studywise.endpoint", endpoint),
	)

	raw, err := c.roundTrip(ctx, method, endpoint, body, header, failMessage)
	if err != nil {
		if status := StatusOf(err); status != 0 {
			span.SetAttributes(attribute.Int("http.status_code", status))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, c.fail(err)
	}
	return raw, nil
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint string, body io.Reader, header http.Header, failMessage func(int, []byte) string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Method: method, Endpoint: endpoint, Message: err.Error(), Err: err}
	}
	req.Header = header
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Method: method, Endpoint: endpoint, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Method: method, Endpoint: endpoint, Status: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode == http.StatusNoContent {
		data = []byte("null")
	}

	var parsed json.RawMessage
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &Error{
			Kind:     KindParse,
			Method:   method,
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Message:  parseMessage(resp.StatusCode),
			Err:      err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Kind:     KindRequest,
			Method:   method,
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Message:  failMessage(resp.StatusCode, parsed),
		}
	}
	return parsed, nil
}

// reject logs an argument error found before any request was built.
func (c *Client) reject(method, endpoint string, err error) error {
	c.log.Error("api", "request not sent", map[string]interface{}{
		"endpoint": endpoint,
		"method":   method,
		"error":    err.Error(),
	})
	return err
}

func (c *Client) fail(err error) error {
	details := map[string]interface{}{"error": err.Error()}
	if apiErr, ok := err.(*Error); ok {
		details["endpoint"] = apiErr.Endpoint
		details["method"] = apiErr.Method
		details["status"] = apiErr.Status
		details["kind"] = apiErr.Kind.String()
		if apiErr.Err != nil {
			details["cause"] = apiErr.Err.Error()
		}
	}
	c.log.Error("api", "request failed", details)
	return err
}
