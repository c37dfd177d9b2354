package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) get(ctx context.Context, path string, query url.Values, key string, out any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query, key: key}, out)
}

func (c *Client) post(ctx context.Context, path string, body any, key string, out any) error {
	return c.do(ctx, request{method: http.MethodPost, path: path, body: body, key: key}, out)
}

func (c *Client) put(ctx context.Context, path string, body any, key string, out any) error {
	return c.do(ctx, request{method: http.MethodPut, path: path, body: body, key: key}, out)
}

func (c *Client) delete(ctx context.Context, path string, body any) error {
	return c.do(ctx, request{method: http.MethodDelete, path: path, body: body}, nil)
}

func pathID(v int64) string {
	return strconv.FormatInt(v, 10)
}

// 一覧系のクエリパラメータ。ゼロ値は送らない。
type ListParams struct {
	Page     int
	Limit    int
	Category string
	Status   string
	Sort     string
	// 上記以外をそのまま付ける
	Extra url.Values
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	for k, vs := range p.Extra {
		for _, s := range vs {
			v.Add(k, s)
		}
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	return v
}
