// Package rest implements the domain repositories on the backend's REST
// interface, which follows PostgREST conventions.
package rest

import (
	"context"
	"net/http"
	"net/url"

	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/infra/backend"

	"github.com/google/uuid"
)

const (
	restPath = "/rest/v1/"

	headerPrefer         = "Prefer"
	returnRepresentation = "return=representation"
)

// table issues the select/insert/update/delete calls of one collection.
type table[Row any] struct {
	name   string
	client *backend.Client
	tokens service.TokenSource
}

func newTable[Row any](name string, client *backend.Client, tokens service.TokenSource) *table[Row] {
	return &table[Row]{name: name, client: client, tokens: tokens}
}

func (t *table[Row]) request(op, method string, query url.Values) backend.Request {
	return backend.Request{
		Operation: t.name + "." + op,
		Method:    method,
		Path:      restPath + t.name,
		Query:     query,
		Token:     t.tokens.AccessToken(),
	}
}

func (t *table[Row]) list(ctx context.Context, order repository.OrderBy) ([]*Row, error) {
	query := url.Values{
		"select": {"*"},
		"order":  {order.Column + "." + order.Direction()},
	}

	var rows []*Row
	if _, err := t.client.Do(ctx, t.request("list", http.MethodGet, query), &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// findByID returns nil when no visible row has the id.
func (t *table[Row]) findByID(ctx context.Context, id uuid.UUID) (*Row, error) {
	query := url.Values{
		"select": {"*"},
		"id":     {eq(id)},
	}

	var rows []*Row
	if _, err := t.client.Do(ctx, t.request("get", http.MethodGet, query), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return rows[0], nil
}

func (t *table[Row]) insert(ctx context.Context, values any) (*Row, error) {
	req := t.request("insert", http.MethodPost, url.Values{"select": {"*"}})
	req.Header = http.Header{headerPrefer: {returnRepresentation}}
	req.JSON = values

	var rows []*Row
	if _, err := t.client.Do(ctx, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return rows[0], nil
}

// update returns nil when no visible row has the id.
func (t *table[Row]) update(ctx context.Context, id uuid.UUID, patch any) (*Row, error) {
	req := t.request("update", http.MethodPatch, url.Values{"select": {"*"}, "id": {eq(id)}})
	req.Header = http.Header{headerPrefer: {returnRepresentation}}
	req.JSON = patch

	var rows []*Row
	if _, err := t.client.Do(ctx, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return rows[0], nil
}

func (t *table[Row]) delete(ctx context.Context, id uuid.UUID) error {
	_, err := t.client.Do(ctx, t.request("delete", http.MethodDelete, url.Values{"id": {eq(id)}}), nil)

	return err
}

func eq(id uuid.UUID) string {
	return "eq." + id.String()
}
