package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Clientが参照するトークン保存先（persistence.TokenStore）
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	ClearCredentials(ctx context.Context) error
}

// 1リクエストごとに呼ばれる（メトリクス用）。通信失敗はstatus 0。
type RequestObserver func(method string, status int, elapsed time.Duration)

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger

	observe        RequestObserver
	onUnauthorized func(ctx context.Context)
	newRequestID   func() string

	Auth       *AuthService
	Products   *ProductService
	Categories *CategoryService
	Cart       *CartService
	Orders     *OrderService
	Reviews    *ReviewService
	Wishlist   *WishlistService
	Addresses  *AddressService
	Payment    *PaymentService
	Admin      *AdminService
	Upload     *UploadService
}

type Option func(*Client)

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// otelhttpでトランスポートを包む
func WithTracing() Option {
	return func(c *Client) {
		base := c.http.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.http.Transport = otelhttp.NewTransport(base)
	}
}

func WithRequestObserver(fn RequestObserver) Option {
	return func(c *Client) { c.observe = fn }
}

// 401を受け取ったとき（資格情報を消した後）に呼ばれる
func WithOnUnauthorized(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) { c.newRequestID = fn }
}

// DI
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	// 管理者APIはセッションCookieで認証する
	jar, _ := cookiejar.New(nil)

	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: timeout, Jar: jar},
		logger:       slog.New(slog.DiscardHandler),
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{c: c}
	c.Products = &ProductService{c: c}
	c.Categories = &CategoryService{c: c}
	c.Cart = &CartService{c: c}
	c.Orders = &OrderService{c: c}
	c.Reviews = &ReviewService{c: c}
	c.Wishlist = &WishlistService{c: c}
	c.Addresses = &AddressService{c: c}
	c.Payment = &PaymentService{c: c}
	c.Admin = &AdminService{c: c}
	c.Upload = &UploadService{c: c}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any

	// multipart等、JSON以外のボディ
	rawBody     io.Reader
	contentType string

	header http.Header
	// レスポンスの包みから取り出すキー
	key string
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return unknownError(err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.record(r.method, StatusNetwork, start)
		if ctx.Err() != nil {
			return unknownError(ctx.Err())
		}
		c.logger.WarnContext(ctx, "api request failed",
			slog.String("method", r.method), slog.String("path", r.path), slog.Any("error", err))
		return networkError(err)
	}
	defer func() { _ = resp.Body.Close() }()
	c.record(r.method, resp.StatusCode, start)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.handleErrorResponse(ctx, r, resp.StatusCode, body)
	}

	if msg, failed := envelopeFailure(body); failed {
		return &Error{Message: msg, Status: resp.StatusCode, Data: json.RawMessage(body)}
	}

	if err := decodeBody(body, r.key, out); err != nil {
		return unknownError(err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	contentType := r.contentType
	switch {
	case r.rawBody != nil:
		body = r.rawBody
	case r.body != nil:
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, err
	}

	for k, vs := range r.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", c.newRequestID())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.logger.WarnContext(ctx, "failed to read token", slog.Any("error", err))
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) handleErrorResponse(ctx context.Context, r request, status int, body []byte) error {
	msg, data := errorMessage(body)
	apiErr := &Error{Message: msg, Status: status, Data: data}

	c.logger.WarnContext(ctx, "api error response",
		slog.String("method", r.method), slog.String("path", r.path),
		slog.Int("status", status), slog.String("message", msg))

	if status == http.StatusUnauthorized {
		apiErr.err = ErrUnauthorized
		if c.tokens != nil {
			if err := c.tokens.ClearCredentials(ctx); err != nil {
				c.logger.WarnContext(ctx, "failed to clear credentials", slog.Any("error", err))
			}
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
	}
	return apiErr
}

func (c *Client) record(method string, status int, start time.Time) {
	if c.observe != nil {
		c.observe(method, status, time.Since(start))
	}
}
