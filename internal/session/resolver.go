package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

var (
	ErrNotConfigured     = errors.New("NOT_CONFIGURED")
	ErrInvalidAccountSID = errors.New("INVALID_ACCOUNT_SID")
	ErrAuthFailed        = errors.New("AUTH_FAILED")
)

// ClientFactory builds a provider client from a credential pair.
type ClientFactory func(accountSID, authToken string) telco.API

// Resolver hands out validated provider clients. Cached handles are probed
// before every use; credentials can be revoked by the provider at any time,
// so no handle is trusted without a fresh probe.
type Resolver struct {
	store   *Store
	factory ClientFactory
	logger  *zap.Logger
}

func NewResolver(store *Store, factory ClientFactory, logger *zap.Logger) *Resolver {
	return &Resolver{store: store, factory: factory, logger: logger}
}

// Resolve returns a probed client for the user, lazily reconstructing it from
// the stored credential pair when the cached handle is missing or stale.
// A session whose credentials fail validation is evicted entirely and
// ErrNotConfigured is returned. Transport-level failures (timeout, network)
// are returned as-is and evict nothing.
func (r *Resolver) Resolve(ctx context.Context, userID int64) (telco.API, error) {
	lock := r.store.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	return r.resolve(ctx, userID)
}

func (r *Resolver) resolve(ctx context.Context, userID int64) (telco.API, error) {
	if client := r.store.Client(userID); client != nil {
		_, err := client.FetchAccount(ctx)
		if err == nil {
			return client, nil
		}

		if _, ok := telco.AsRestError(err); !ok {
			return nil, err
		}

		r.logger.Info("Cached provider client seems invalid, re-initializing",
			zap.Int64("userID", userID),
			zap.Error(err))
		r.store.ClearClient(userID)
	}

	accountSID, authToken, ok := r.store.Credentials(userID)
	if !ok {
		return nil, ErrNotConfigured
	}

	client := r.factory(accountSID, authToken)
	_, err := client.FetchAccount(ctx)
	if err == nil {
		r.store.SetClient(userID, client)
		return client, nil
	}

	if _, ok := telco.AsRestError(err); !ok {
		return nil, err
	}

	r.logger.Error("Failed to initialize provider client, evicting session",
		zap.Int64("userID", userID),
		zap.Error(err))
	r.store.Delete(userID)

	return nil, ErrNotConfigured
}

// Configure validates the credential format locally, stores the pair, and
// immediately attempts resolution. A pair that fails provider validation is
// kept stored so the user can correct it with another /configure.
func (r *Resolver) Configure(ctx context.Context, userID int64, accountSID, authToken string) error {
	if !ValidAccountSID(accountSID) {
		return ErrInvalidAccountSID
	}

	lock := r.store.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	r.store.SetCredentials(userID, accountSID, authToken)

	_, err := r.resolve(ctx, userID)
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotConfigured) {
		r.store.SetCredentials(userID, accountSID, authToken)
		return ErrAuthFailed
	}

	return err
}
