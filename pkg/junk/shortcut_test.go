// pkg/junk/shortcut_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Correlate an uninstalled entry with the shortcut inventory

package junk_test

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/arthur-debert/residue/pkg/junk"
	"github.com/arthur-debert/residue/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startMenu = filepath.Join("machine", "Start Menu", "Programs")

func link(name, target string) types.Shortcut {
	return types.Shortcut{LinkPath: filepath.Join(startMenu, name), Target: target}
}

func foo() types.UninstallEntry {
	return types.UninstallEntry{
		DisplayName:         "Foo",
		InstallLocation:     `C:\Apps\Foo`,
		UninstallerLocation: `C:\ProgramData\Uninstallers\Foo`,
	}
}

func TestFindJunk_InstallLocation(t *testing.T) {
	links := []types.Shortcut{link("Foo.lnk", `C:\Apps\Foo\foo.exe`)}

	nodes := slices.Collect(junk.New(foo(), nil, links, junk.Options{}).FindJunk())

	require.Len(t, nodes, 1)
	assert.Equal(t, startMenu, nodes[0].Directory)
	assert.Equal(t, "Foo.lnk", nodes[0].Name)
	assert.Equal(t, "Foo", nodes[0].UninstallerName)
	assert.Equal(t, filepath.Join(startMenu, "Foo.lnk"), nodes[0].FullPath())
	assert.True(t, nodes[0].Confidence.Has(types.ConfidenceExplicitConnection))
	assert.False(t, nodes[0].Confidence.Has(types.ConfidenceDirectoryStillUsed))
}

func TestFindJunk_WindowsLinkPathSplitsOnAnyHost(t *testing.T) {
	desktopLink := types.Shortcut{LinkPath: `C:\Users\Public\Desktop\Foo.lnk`, Target: `C:\Apps\Foo\foo.exe`}

	nodes := slices.Collect(junk.New(foo(), nil, []types.Shortcut{desktopLink}, junk.Options{}).FindJunk())

	require.Len(t, nodes, 1)
	assert.Equal(t, `C:\Users\Public\Desktop`, nodes[0].Directory)
	assert.Equal(t, "Foo.lnk", nodes[0].Name)
	assert.Equal(t, desktopLink.LinkPath, nodes[0].FullPath())
}

func TestFindJunk_SharedInstallLocation(t *testing.T) {
	links := []types.Shortcut{link("Foo.lnk", `C:\Apps\Foo\foo.exe`)}
	e2 := types.UninstallEntry{DisplayName: "Foo Helper", InstallLocation: `c:\apps\foo\`}

	shared := slices.Collect(junk.New(foo(), []types.UninstallEntry{e2}, links, junk.Options{}).FindJunk())
	require.Len(t, shared, 1)
	assert.True(t, shared[0].Confidence.Has(types.ConfidenceExplicitConnection))
	assert.True(t, shared[0].Confidence.Has(types.ConfidenceDirectoryStillUsed))

	alone := slices.Collect(junk.New(foo(), nil, links, junk.Options{}).FindJunk())
	require.Len(t, alone, 1)
	assert.False(t, alone[0].Confidence.Has(types.ConfidenceDirectoryStillUsed))
}

func TestFindJunk_UninstallerLocation(t *testing.T) {
	links := []types.Shortcut{link("Uninstall Foo.lnk", `C:\ProgramData\Uninstallers\Foo\unins000.exe`)}
	sharesInstall := types.UninstallEntry{DisplayName: "Other", InstallLocation: `C:\Apps\Foo`}
	sharesUninstaller := types.UninstallEntry{DisplayName: "Other", UninstallerLocation: `C:\ProgramData\Uninstallers\Foo`}

	tests := []struct {
		name      string
		others    []types.UninstallEntry
		stillUsed bool
	}{
		{name: "no others", stillUsed: false},
		{name: "install location shared only", others: []types.UninstallEntry{sharesInstall}, stillUsed: false},
		{name: "uninstaller location shared", others: []types.UninstallEntry{sharesUninstaller}, stillUsed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := slices.Collect(junk.New(foo(), tt.others, links, junk.Options{}).FindJunk())

			require.Len(t, nodes, 1)
			assert.Equal(t, tt.stillUsed, nodes[0].Confidence.Has(types.ConfidenceDirectoryStillUsed))
		})
	}
}

func TestFindJunk_InstallLocationCheckedFirst(t *testing.T) {
	e := types.UninstallEntry{
		DisplayName:         "Foo",
		InstallLocation:     `C:\Apps\Foo`,
		UninstallerLocation: `C:\Apps\Foo\uninst`,
	}
	// only the uninstaller location is shared, so the result tells which
	// branch produced the candidate
	others := []types.UninstallEntry{{DisplayName: "Bar", UninstallerLocation: `C:\Apps\Foo\uninst`}}
	links := []types.Shortcut{link("Remove Foo.lnk", `C:\Apps\Foo\uninst\remove.exe`)}

	nodes := slices.Collect(junk.New(e, others, links, junk.Options{}).FindJunk())

	require.Len(t, nodes, 1)
	assert.False(t, nodes[0].Confidence.Has(types.ConfidenceDirectoryStillUsed))
}

func TestFindJunk_NoMatch(t *testing.T) {
	links := []types.Shortcut{
		link("Bar.lnk", `C:\Apps\Bar\bar.exe`),
		link("Notes.lnk", `D:\Docs\notes.txt`),
	}

	nodes := slices.Collect(junk.New(foo(), nil, links, junk.Options{}).FindJunk())

	assert.Empty(t, nodes)
}

func TestFindJunk_EmptyLocationsNeverMatch(t *testing.T) {
	e := types.UninstallEntry{DisplayName: "Ghost"}
	others := []types.UninstallEntry{{DisplayName: "Other"}}
	links := []types.Shortcut{link("Any.lnk", `C:\Apps\Any\any.exe`)}

	nodes := slices.Collect(junk.New(e, others, links, junk.Options{}).FindJunk())

	assert.Empty(t, nodes)
}

func TestFindJunk_CaseInsensitive(t *testing.T) {
	e := types.UninstallEntry{DisplayName: "Foo", InstallLocation: `c:\apps\foo`}
	others := []types.UninstallEntry{{DisplayName: "Foo 2", InstallLocation: `C:\APPS\FOO`}}
	links := []types.Shortcut{link("Foo.lnk", `C:\Apps\Foo\Foo.EXE`)}

	nodes := slices.Collect(junk.New(e, others, links, junk.Options{}).FindJunk())

	require.Len(t, nodes, 1)
	assert.True(t, nodes[0].Confidence.Has(types.ConfidenceDirectoryStillUsed))
}

func TestFindJunk_PrefixSibling(t *testing.T) {
	links := []types.Shortcut{link("Foo2.lnk", `C:\Apps\Foo2\foo2.exe`)}

	tests := []struct {
		name string
		mode junk.MatchMode
		want int
	}{
		{name: "substring matches sibling", mode: junk.MatchSubstring, want: 1},
		{name: "default is substring", mode: "", want: 1},
		{name: "boundary rejects sibling", mode: junk.MatchBoundary, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := slices.Collect(junk.New(foo(), nil, links, junk.Options{Mode: tt.mode}).FindJunk())
			assert.Len(t, nodes, tt.want)
		})
	}
}

func TestFindJunk_BoundaryStillMatchesInside(t *testing.T) {
	links := []types.Shortcut{
		link("Foo.lnk", `C:\Apps\Foo\bin\foo.exe`),
		link("Folder.lnk", `C:\Apps\Foo`),
	}

	nodes := slices.Collect(junk.New(foo(), nil, links, junk.Options{Mode: junk.MatchBoundary}).FindJunk())

	assert.Len(t, nodes, 2)
}

func TestFindJunk_InventoryOrder(t *testing.T) {
	links := []types.Shortcut{
		link("c.lnk", `C:\Apps\Foo\c.exe`),
		link("skip.lnk", `C:\Apps\Bar\bar.exe`),
		link("a.lnk", `C:\Apps\Foo\a.exe`),
		link("b.lnk", `C:\ProgramData\Uninstallers\Foo\b.exe`),
	}

	var names []string
	for node := range junk.New(foo(), nil, links, junk.Options{}).FindJunk() {
		names = append(names, node.Name)
	}

	assert.Equal(t, []string{"c.lnk", "a.lnk", "b.lnk"}, names)
}

func TestFindJunk_StopsEarlyAndRestarts(t *testing.T) {
	links := []types.Shortcut{
		link("a.lnk", `C:\Apps\Foo\a.exe`),
		link("b.lnk", `C:\Apps\Foo\b.exe`),
	}
	finder := junk.New(foo(), nil, links, junk.Options{})

	var first []string
	for node := range finder.FindJunk() {
		first = append(first, node.Name)
		break
	}

	assert.Equal(t, []string{"a.lnk"}, first)
	assert.Len(t, slices.Collect(finder.FindJunk()), 2)
	assert.Equal(t, `C:\Apps\Foo\a.exe`, links[0].Target)
}

func TestParseMatchMode(t *testing.T) {
	mode, err := junk.ParseMatchMode("")
	require.NoError(t, err)
	assert.Equal(t, junk.MatchSubstring, mode)

	mode, err = junk.ParseMatchMode(" Boundary ")
	require.NoError(t, err)
	assert.Equal(t, junk.MatchBoundary, mode)

	_, err = junk.ParseMatchMode("regex")
	assert.Error(t, err)
}
