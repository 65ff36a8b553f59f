package profile

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Future is a deferred credential result. Futures returned by this package
// are complete on creation, but callers should use Poll, Done or Wait as they
// would for any asynchronous credential source.
type Future struct {
	done  chan struct{}
	creds aws.Credentials
	err   error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) complete(creds aws.Credentials, err error) {
	f.creds, f.err = creds, err
	close(f.done)
}

// CompletedFuture returns a future already holding creds or err.
func CompletedFuture(creds aws.Credentials, err error) *Future {
	f := newFuture()
	f.complete(creds, err)
	return f
}

// Done is closed once the result is available.
func (f *Future) Done() <-chan struct{} { return f.done }

// Poll returns the result without blocking. ready is false while the result
// is pending.
func (f *Future) Poll() (creds aws.Credentials, ready bool, err error) {
	select {
	case <-f.done:
		return f.creds, true, f.err
	default:
		return aws.Credentials{}, false, nil
	}
}

// Wait blocks until the result is available or ctx is done.
func (f *Future) Wait(ctx context.Context) (aws.Credentials, error) {
	if creds, ready, err := f.Poll(); ready {
		return creds, err
	}
	select {
	case <-f.done:
		return f.creds, f.err
	case <-ctx.Done():
		return aws.Credentials{}, ctx.Err()
	}
}
