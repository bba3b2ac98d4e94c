package testutil

import (
	"context"
	"sync/atomic"

	"github.com/arthur-debert/residue/pkg/types"
)

// FakeEnumerator returns fixed records. When Block is set, Features waits for
// it to close and ignores ctx, like a call stuck inside the OS.
type FakeEnumerator struct {
	Records []types.FeatureRecord
	Err     error
	Block   chan struct{}

	calls atomic.Int32
}

// Features implements types.FeatureEnumerator
func (f *FakeEnumerator) Features(ctx context.Context) ([]types.FeatureRecord, error) {
	f.calls.Add(1)
	if f.Block != nil {
		<-f.Block
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Records, nil
}

// Calls reports how many times Features ran
func (f *FakeEnumerator) Calls() int {
	return int(f.calls.Load())
}

// FakeVersion reports a fixed OS version
type FakeVersion struct {
	V   types.OSVersion
	Err error
}

// Version implements types.OSVersionProvider
func (f FakeVersion) Version() (types.OSVersion, error) {
	return f.V, f.Err
}
