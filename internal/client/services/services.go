// Package services contains the typed bindings for the ManageMyMoney REST
// resources. Each service is a thin mapping from a method call to one API
// request plus response unwrapping; no business logic lives here.
package services

import (
	"context"
	"net/url"
)

// Caller is the slice of the HTTP core the services need. *api.Client
// satisfies it; tests substitute fakes.
type Caller interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string) error
}
