package partsledger

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/etnz/partsledger/kv"
)

// MinPasswordLength is the shortest delete password accepted, in characters.
const MinPasswordLength = 4

// DeleteGate confirms destructive operations with a password.
//
// The first confirmation sets the password, later ones must repeat it. The
// password is kept in clear next to the data it guards: it prevents
// accidental deletes, it does not authenticate anyone.
type DeleteGate struct {
	store kv.Store
}

// NewDeleteGate returns the gate whose password lives in store.
func NewDeleteGate(store kv.Store) *DeleteGate {
	return &DeleteGate{store: store}
}

func (g *DeleteGate) stored(ctx context.Context) (string, error) {
	data, ok, err := g.store.Get(ctx, DeletePasswordKey)
	if err != nil || !ok {
		return "", err
	}
	var password string
	if err := json.Unmarshal(data, &password); err != nil {
		return "", fmt.Errorf("could not decode %q: %w", DeletePasswordKey, err)
	}
	return password, nil
}

// IsSet reports whether a password has already been chosen.
func (g *DeleteGate) IsSet(ctx context.Context) (bool, error) {
	password, err := g.stored(ctx)
	return password != "", err
}

// Confirm returns nil when the delete may proceed.
//
// When no password is set yet, password becomes the password provided it is
// long enough and equal to confirmation. Otherwise confirmation is ignored
// and password must match the stored one.
func (g *DeleteGate) Confirm(ctx context.Context, password, confirmation string) error {
	stored, err := g.stored(ctx)
	if err != nil {
		return err
	}

	if stored != "" {
		if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
			return ErrIncorrectPassword
		}
		return nil
	}

	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if password != confirmation {
		return ErrPasswordMismatch
	}
	data, err := json.Marshal(password)
	if err != nil {
		return err
	}
	if err := g.store.Set(ctx, DeletePasswordKey, data); err != nil {
		return fmt.Errorf("could not save the delete password: %w", err)
	}
	return nil
}
