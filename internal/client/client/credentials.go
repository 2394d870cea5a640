package client

import "golang.org/x/oauth2"

// CredentialSource reports the credential to attach to outgoing requests.
type CredentialSource interface {
	// Credential returns the active credential, or nil when there is none.
	Credential() *oauth2.Token
}

// StaticCredential is a CredentialSource that always reports the same token.
type StaticCredential struct {
	Token *oauth2.Token
}

func (s StaticCredential) Credential() *oauth2.Token { return s.Token }

type noCredential struct{}

func (noCredential) Credential() *oauth2.Token { return nil }
