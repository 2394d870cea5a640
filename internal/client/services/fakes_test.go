package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/neatdog/neatdog/internal/client/client"
	"github.com/neatdog/neatdog/internal/client/codec"
	"github.com/neatdog/neatdog/internal/client/models"
	"github.com/neatdog/neatdog/internal/client/session"
)

type apiCall struct {
	Method string
	Path   string
	Body   any
}

// fakeAPI answers from Responses (raw wire JSON keyed by "METHOD path") or
// fails with Err.
type fakeAPI struct {
	mu        sync.Mutex
	Calls     []apiCall
	Responses map[string]string
	Err       error
}

func (f *fakeAPI) do(method, path string, body, out any) error {
	f.mu.Lock()
	f.Calls = append(f.Calls, apiCall{Method: method, Path: path, Body: body})
	raw, ok := f.Responses[method+" "+path]
	f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}
	if !ok {
		return &client.StatusError{Code: http.StatusNotFound, Detail: "Not Found", HasDetail: true}
	}
	if out == nil {
		return nil
	}
	return codec.Unmarshal([]byte(raw), out)
}

func (f *fakeAPI) Get(_ context.Context, path string, out any) error {
	return f.do(http.MethodGet, path, nil, out)
}

func (f *fakeAPI) Post(_ context.Context, path string, body, out any) error {
	return f.do(http.MethodPost, path, body, out)
}

func (f *fakeAPI) Patch(_ context.Context, path string, body, out any) error {
	return f.do(http.MethodPatch, path, body, out)
}

func (f *fakeAPI) last() apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[len(f.Calls)-1]
}

type fakeExpirer struct {
	Seen []error
}

func (f *fakeExpirer) EndIfUnauthorized(_ context.Context, err error) error {
	f.Seen = append(f.Seen, err)
	return err
}

type fakeSessions struct {
	LoginErr, SignupErr, RestoreErr, RefreshErr error

	LoginCalls, SignupCalls, LogoutCalls int
	LastName                             string
	Cur                                  *session.Session
}

func (f *fakeSessions) Login(context.Context, string, string) (models.User, error) {
	f.LoginCalls++
	return models.User{ID: 1}, f.LoginErr
}

func (f *fakeSessions) Signup(_ context.Context, _, _, name string) (models.User, error) {
	f.SignupCalls++
	f.LastName = name
	return models.User{ID: 1, Name: name}, f.SignupErr
}

func (f *fakeSessions) Logout(context.Context) { f.LogoutCalls++ }

func (f *fakeSessions) Restore(context.Context) error { return f.RestoreErr }

func (f *fakeSessions) Refresh(context.Context) error { return f.RefreshErr }

func (f *fakeSessions) Current() (session.Session, bool) {
	if f.Cur == nil {
		return session.Session{}, false
	}
	return *f.Cur, true
}
