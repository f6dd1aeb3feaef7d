package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultDialTimeout    = 4 * time.Second
	defaultRequestTimeout = 4 * time.Second
)

// Client represents the middleman for executing JSON-RPC calls to remote
// ledger nodes. Client is thread-safe and can be used from multiple
// goroutines.
type Client struct {
	cli      *http.Client
	endpoint *url.URL
	ctx      context.Context
	opts     Options
	requestF func(*Request) (*Response, error)
}

// Options defines options for the RPC client. All values are optional. If
// any duration is not specified, a default of 4 seconds will be used.
type Options struct {
	DialTimeout    time.Duration
	RequestTimeout time.Duration
	// Limit total number of connections per host. No limit by default.
	MaxConnsPerHost int
}

// Request represents a JSON-RPC request to a ledger node: a command with a
// single object of command-specific parameters.
type Request struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params,omitempty"`
}

// Response represents a JSON-RPC response. The node wraps every result into
// a "result" object carrying a status and, on failure, an error code.
type Response struct {
	Result json.RawMessage `json:"result"`
}

// Error represents an error returned by the node for a particular request.
type Error struct {
	Code    string `json:"error"`
	Message string `json:"error_message,omitempty"`
	Request string `json:"request,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s (%s)", e.Code, e.Message)
}

// resultStatus is the part of every result object used to detect failures.
type resultStatus struct {
	Status string `json:"status"`
	Error
}

// New returns a new Client ready to use.
func New(ctx context.Context, endpoint string, opts Options) (*Client, error) {
	cl := new(Client)
	if err := initClient(ctx, cl, endpoint, opts); err != nil {
		return nil, err
	}
	return cl, nil
}

func initClient(ctx context.Context, cl *Client, endpoint string, opts Options) error {
	url, err := url.Parse(endpoint)
	if err != nil {
		return err
	}

	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}

	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}

	cl.ctx = ctx
	cl.cli = &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.DialTimeout,
			}).DialContext,
			MaxConnsPerHost: opts.MaxConnsPerHost,
		},
		Timeout: opts.RequestTimeout,
	}
	cl.endpoint = url
	cl.opts = opts
	cl.requestF = cl.makeHTTPRequest
	return nil
}

// Close closes unused underlying network connections.
func (c *Client) Close() {
	c.cli.CloseIdleConnections()
}

func (c *Client) performRequest(method string, params interface{}, v interface{}) error {
	var r = Request{
		Method: method,
	}
	if params != nil {
		r.Params = []interface{}{params}
	}

	raw, err := c.requestF(&r)
	if err != nil {
		return err
	}
	if raw == nil || raw.Result == nil {
		return errors.New("no result returned")
	}
	var status resultStatus
	if err := json.Unmarshal(raw.Result, &status); err != nil {
		return fmt.Errorf("failed to decode result status: %w", err)
	}
	if status.Status == "error" {
		e := status.Error
		return &e
	}
	return json.Unmarshal(raw.Result, v)
}

func (c *Client) makeHTTPRequest(r *Request) (*Response, error) {
	var (
		buf = new(bytes.Buffer)
		raw = new(Response)
	)

	if err := json.NewEncoder(buf).Encode(r); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.endpoint.String(), buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// The node doesn't return 200 for all errors, but it does provide a
	// JSON body with the details in most cases.
	err = json.NewDecoder(resp.Body).Decode(raw)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			err = fmt.Errorf("HTTP %d/%s", resp.StatusCode, http.StatusText(resp.StatusCode))
		} else {
			err = fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return raw, err
}

// Ping attempts to create a connection to the endpoint and returns an error
// if it couldn't.
func (c *Client) Ping() error {
	conn, err := net.DialTimeout("tcp", c.endpoint.Host, defaultDialTimeout)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}
