package cmdutil

import (
	"context"
	"errors"

	"github.com/marckohlbrugge/tempmail-cli/internal/auth"
	"github.com/marckohlbrugge/tempmail-cli/internal/iostreams"
	"github.com/marckohlbrugge/tempmail-cli/internal/notify"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
)

// Factory provides dependencies for commands.
type Factory struct {
	IOStreams   *iostreams.IOStreams
	Credentials *auth.CredentialSource

	// Options applied to every store the factory creates.
	StoreOptions []store.Option

	creds *auth.Credentials
}

// NewFactory creates a new Factory with default dependencies.
func NewFactory() *Factory {
	return &Factory{
		IOStreams:   iostreams.System(),
		Credentials: auth.NewCredentialSource(),
	}
}

// SetCredentials fixes the credentials, bypassing env, config and keychain.
func (f *Factory) SetCredentials(creds auth.Credentials) {
	f.creds = &creds
}

// Creds returns the credentials to connect with.
func (f *Factory) Creds() (auth.Credentials, error) {
	if f.creds != nil {
		return *f.creds, nil
	}
	if f.Credentials == nil {
		return auth.Credentials{}, NewAuthError(auth.ErrNotAuthenticated.Error())
	}
	creds, err := f.Credentials.Get()
	if errors.Is(err, auth.ErrNotAuthenticated) {
		return auth.Credentials{}, NewAuthError(err.Error())
	}
	return creds, err
}

// NewStore creates a disconnected store reporting to the terminal.
func (f *Factory) NewStore(confirmer notify.Confirmer, opts ...store.Option) *store.Store {
	if confirmer == nil {
		confirmer = f.IOStreams
	}
	all := append(append([]store.Option{}, f.StoreOptions...), opts...)
	return store.New(f.IOStreams, confirmer, all...)
}

// Connect creates a store and opens a session with the configured
// server. A failed connection has already been reported, so it yields
// SilentError.
func (f *Factory) Connect(ctx context.Context, confirmer notify.Confirmer, opts ...store.Option) (*store.Store, error) {
	creds, err := f.Creds()
	if err != nil {
		return nil, err
	}

	s := f.NewStore(confirmer, opts...)
	if !s.Connect(ctx, creds.Server, creds.Key) {
		return nil, SilentError
	}
	return s, nil
}

// ConnectOnce connects without a push connection, for one-shot commands.
func (f *Factory) ConnectOnce(ctx context.Context, confirmer notify.Confirmer) (*store.Store, error) {
	return f.Connect(ctx, confirmer, store.WithoutPush())
}
