// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-shop/internal/store"
)

// fakeSessions runs session bodies inline with a nil Querier and counts
// how many sessions were opened.
type fakeSessions struct {
	sessions int
	txs      int
	err      error
}

func (f *fakeSessions) WithSession(ctx context.Context, fn store.SessionFunc) error {
	f.sessions++
	if f.err != nil {
		return f.err
	}
	return fn(ctx, nil)
}

func (f *fakeSessions) WithTx(ctx context.Context, fn store.SessionFunc) error {
	f.txs++
	if f.err != nil {
		return f.err
	}
	return fn(ctx, nil)
}
