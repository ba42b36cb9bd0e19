package clients

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const EnvHTTPClientTimeout = "KTB_HTTP_CLIENT_TIMEOUT"

// HTTPClient is the shared client, its timeout is env-tunable.
var HTTPClient = &http.Client{
	Timeout: func(env string) time.Duration {
		if s, ok := os.LookupEnv(env); ok {
			if v, err := time.ParseDuration(s); err == nil {
				return v
			}
		}
		return 5 * time.Second
	}(EnvHTTPClientTimeout),
}

// SendRequest wraps HTTP methods
func SendRequest(httpMethod string, requestURL string,
	headers map[string]string, formValues map[string]string, body []byte) (int, []byte, error) {
	return SendRequestWithContext(context.Background(), httpMethod, requestURL, headers, formValues, body)
}

// SendRequestWithContext wraps HTTP methods
func SendRequestWithContext(ctx context.Context, httpMethod string, requestURL string,
	headers map[string]string, formValues map[string]string, body []byte) (int, []byte, error) {

	req := Req{
		URL:     requestURL,
		Method:  httpMethod,
		Headers: headers,
		Form:    QueryBuilder(formValues),
		Payload: body,
	}
	_ = req.SendWithContext(ctx)
	return req.Status, req.Response, req.Err
}

// Req defines request context
type Req struct {
	Err      error
	Form     QueryBuilder
	Headers  map[string]string
	Method   string
	Payload  []byte
	Response []byte
	Status   int
	URL      string

	client   *http.Client
	duration time.Duration
}

// SetClient sets http.Client to use
func (q *Req) SetClient(c *http.Client) *Req {
	q.client = c
	return q
}

// Send sends request
func (q *Req) Send() error {
	return q.SendWithContext(context.Background())
}

// SendWithContext sends request.
// Form values go to the query string on GET and to an urlencoded body
// otherwise; an explicit Payload wins over a Form body.
func (q *Req) SendWithContext(ctx context.Context) error {
	body := q.Payload
	requestURL := q.URL
	if len(q.Form) > 0 {
		if q.Method == http.MethodGet {
			requestURL = q.Form.Concat(requestURL)
		} else if body == nil {
			body = []byte(q.Form.Encode())
		}
	}

	var bodyBuf io.Reader
	if body != nil {
		bodyBuf = bytes.NewBuffer(body)
	}
	request, err := http.NewRequestWithContext(ctx, q.Method, requestURL, bodyBuf)
	if err != nil {
		q.Status, q.Err = -1, err
		return err
	}
	for k, v := range q.Headers {
		request.Header.Add(k, v)
	}

	client := q.client
	if client == nil {
		client = HTTPClient
	}

	t0 := time.Now()
	response, err := client.Do(request)
	q.duration = time.Since(t0).Truncate(time.Millisecond)
	if err != nil {
		q.Status, q.Err = -1, err
		q.log()
		return err
	}

	defer response.Body.Close()
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		q.Status, q.Err = -1, err
		q.log()
		return err
	}
	q.Status, q.Response = response.StatusCode, responseBody
	q.log()
	return nil
}

func (q *Req) log() {
	e := log.Debug()
	if q.Err != nil || q.Status >= 400 {
		e = log.Warn()
	}
	e.Str("method", q.Method).
		Str("url", q.URL).
		Int("status", q.Status).
		Dur("duration", q.duration).
		Err(q.Err).
		Msg("http request")
}
