// Package kv defines the persistence surface the storefront stores its two
// serialized records in: a string-keyed get/set/delete collaborator. Absence
// of a key is reported as ErrNotFound and is a valid no-data state.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is the minimal surface the cart and checkout records need.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Well-known record keys.
const (
	CartKey      = "cart-store"
	LastOrderKey = "last-order-record"
)
