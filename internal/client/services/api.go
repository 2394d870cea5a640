package services

import "context"

// API is the transport surface the services use. *client.Client
// satisfies it.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
}

// Expirer ends the session when err says the server no longer accepts
// it. *session.Manager satisfies it.
type Expirer interface {
	EndIfUnauthorized(ctx context.Context, err error) error
}

// caller routes every domain call's error through the Expirer.
type caller struct {
	api     API
	expirer Expirer
}

func (c caller) get(ctx context.Context, path string, out any) error {
	return c.expirer.EndIfUnauthorized(ctx, c.api.Get(ctx, path, out))
}

func (c caller) post(ctx context.Context, path string, body, out any) error {
	return c.expirer.EndIfUnauthorized(ctx, c.api.Post(ctx, path, body, out))
}

func (c caller) patch(ctx context.Context, path string, body, out any) error {
	return c.expirer.EndIfUnauthorized(ctx, c.api.Patch(ctx, path, body, out))
}
