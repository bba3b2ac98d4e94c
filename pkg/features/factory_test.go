// pkg/features/factory_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testutil fakes
// PURPOSE: Version gate, bounded query and adaptation of OS features

package features_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/arthur-debert/residue/pkg/errors"
	"github.com/arthur-debert/residue/pkg/features"
	"github.com/arthur-debert/residue/pkg/testutil"
	"github.com/arthur-debert/residue/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var windows10 = testutil.FakeVersion{V: types.OSVersion{Major: 10, Minor: 0, Build: 19045}}

func TestFactory_Entries(t *testing.T) {
	enum := &testutil.FakeEnumerator{Records: []types.FeatureRecord{
		{Name: "TelnetClient", DisplayName: "Telnet Client", Enabled: true},
		{Name: "SMB1Protocol", DisplayName: "SMB 1.0", Enabled: false},
	}}

	f := features.NewFactory(enum, features.DismCommands{}, windows10, features.WithMachine(types.MachineTypeX86))
	entries, err := f.Entries()

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Telnet Client", entries[0].DisplayName)
	assert.Equal(t, types.MachineTypeX86, entries[0].Machine)
	assert.Equal(t, types.UninstallerKindWindowsFeature, entries[0].Kind)
}

func TestFactory_DefaultsToProcessBitness(t *testing.T) {
	enum := &testutil.FakeEnumerator{Records: []types.FeatureRecord{{Name: "NetFx3", Enabled: true}}}

	entries, err := features.NewFactory(enum, features.DismCommands{}, windows10).Entries()

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, types.CurrentProcessMachine(), entries[0].Machine)
}

func TestFactory_SkipsOldSystems(t *testing.T) {
	tests := []struct {
		name    string
		version testutil.FakeVersion
	}{
		{name: "vista", version: testutil.FakeVersion{V: types.OSVersion{Major: 6, Minor: 0}}},
		{name: "xp", version: testutil.FakeVersion{V: types.OSVersion{Major: 5, Minor: 1}}},
		{name: "unknown", version: testutil.FakeVersion{Err: stderrors.New("no version")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enum := &testutil.FakeEnumerator{Records: []types.FeatureRecord{{Name: "X", Enabled: true}}}

			entries, err := features.NewFactory(enum, features.DismCommands{}, tt.version).Entries()

			require.NoError(t, err)
			assert.Empty(t, entries)
			assert.Equal(t, 0, enum.Calls())
		})
	}
}

func TestFactory_QueryFailure(t *testing.T) {
	cause := stderrors.New("Invalid class")
	enum := &testutil.FakeEnumerator{Err: cause}

	entries, err := features.NewFactory(enum, features.DismCommands{}, windows10).Entries()

	assert.Nil(t, entries)
	assert.True(t, errors.IsErrorCode(err, errors.ErrQueryFailed))
	assert.ErrorIs(t, err, cause)
}

func TestFactory_QueryTimeout(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	enum := &testutil.FakeEnumerator{
		Records: []types.FeatureRecord{{Name: "Late", Enabled: true}},
		Block:   block,
	}

	start := time.Now()
	entries, err := features.NewFactory(enum, features.DismCommands{}, windows10,
		features.WithTimeout(30*time.Millisecond)).Entries()

	assert.Nil(t, entries)
	assert.True(t, errors.IsErrorCode(err, errors.ErrQueryTimedOut))
	assert.Less(t, time.Since(start), time.Second)
}
