// Package session owns the client's authentication state.
//
// A Manager is either unauthenticated or authenticated as one user with one
// token pair. Login, Signup, Refresh, Restore and Logout are serialized; the
// current state is published as an immutable snapshot, so readers (the
// transport attaching a bearer token, the UI showing who is signed in) never
// observe a half-applied transition.
//
// The token pair is persisted in a credstore.Store under the access_token
// and refresh_token keys so a later process can Restore it.
package session
