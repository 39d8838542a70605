package mock

import (
	"context"

	"github.com/jboczar/digest"
)

var _ digest.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of digest.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*digest.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*digest.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
