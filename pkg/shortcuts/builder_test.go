// pkg/shortcuts/builder_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero memory filesystem, testutil
// PURPOSE: Inventory enumeration, filtering and fault isolation

package shortcuts_test

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/residue/pkg/paths"
	"github.com/arthur-debert/residue/pkg/shortcuts"
	"github.com/arthur-debert/residue/pkg/testutil"
	"github.com/arthur-debert/residue/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkPaths(inventory []types.Shortcut) []string {
	out := make([]string, 0, len(inventory))
	for _, s := range inventory {
		out = append(out, s.LinkPath)
	}
	return out
}

func TestBuild_CollectsAllLocations(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(types.FolderPrograms, testutil.FileTree{
		"Foo": testutil.FileTree{
			"Foo.lnk":       `C:\Apps\Foo\foo.exe`,
			"Uninstall.lnk": `C:\Apps\Foo\unins000.exe`,
			"readme.txt":    "not a link",
		},
	})
	env.WithFileTree(types.FolderCommonPrograms, testutil.FileTree{
		"Bar.LNK": `C:\Apps\Bar\bar.exe`,
	})
	env.WithFileTree(types.FolderDesktop, testutil.FileTree{
		"Foo.lnk": `C:\Apps\Foo\foo.exe`,
	})
	env.WithFileTree(types.FolderCommonDesktop, testutil.FileTree{
		"Baz.lnk": `C:\Apps\Baz\baz.exe`,
	})

	inventory := shortcuts.NewBuilder(env.FS, env.Folders, testutil.ContentResolver{FS: env.FS}).Build()

	assert.Equal(t, []types.Shortcut{
		{LinkPath: env.Path("Users", "me", "AppData", "Roaming", "Microsoft", "Windows", "Start Menu", "Programs", "Foo", "Foo.lnk"), Target: `C:\Apps\Foo\foo.exe`},
		{LinkPath: env.Path("Users", "me", "AppData", "Roaming", "Microsoft", "Windows", "Start Menu", "Programs", "Foo", "Uninstall.lnk"), Target: `C:\Apps\Foo\unins000.exe`},
		{LinkPath: env.Path("ProgramData", "Microsoft", "Windows", "Start Menu", "Programs", "Bar.LNK"), Target: `C:\Apps\Bar\bar.exe`},
		{LinkPath: env.Path("Users", "me", "Desktop", "Foo.lnk"), Target: `C:\Apps\Foo\foo.exe`},
		{LinkPath: env.Path("Users", "Public", "Desktop", "Baz.lnk"), Target: `C:\Apps\Baz\baz.exe`},
	}, inventory)
}

func TestBuild_DesktopIsNotRecursive(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(types.FolderDesktop, testutil.FileTree{
		"Top.lnk": `C:\Apps\Top\top.exe`,
		"Games": testutil.FileTree{
			"Nested.lnk": `C:\Apps\Nested\nested.exe`,
		},
	})

	inventory := shortcuts.NewBuilder(env.FS, env.Folders, testutil.ContentResolver{FS: env.FS}).Build()

	require.Len(t, inventory, 1)
	assert.Equal(t, `C:\Apps\Top\top.exe`, inventory[0].Target)
}

func TestBuild_ExcludesOSDirectoryTargets(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	osDir := env.Dir(types.FolderWindows)
	env.WithFileTree(types.FolderPrograms, testutil.FileTree{
		"Accessories": testutil.FileTree{
			"Notepad.lnk":    osDir + "/System32/notepad.exe",
			"Command.lnk":    osDir + "/system32/CMD.EXE",
			"Explorer.lnk":   osDir,
			"AppsFolder.lnk": osDir + "Apps/thing.exe",
		},
	})

	inventory := shortcuts.NewBuilder(env.FS, env.Folders, testutil.ContentResolver{FS: env.FS}).Build()

	require.Len(t, inventory, 1)
	assert.Equal(t, osDir+"Apps/thing.exe", inventory[0].Target)
	for _, s := range inventory {
		assert.False(t, paths.IsSubPath(osDir, s.Target), s.Target)
	}
}

func TestBuild_DropsUnresolvableLinks(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	desktop := env.Dir(types.FolderDesktop)
	env.WithFileTree(types.FolderDesktop, testutil.FileTree{
		"good.lnk":   "",
		"broken.lnk": "",
		"empty.lnk":  "",
		"panic.lnk":  "",
	})

	resolver := &testutil.FakeResolver{
		Targets: map[string]string{
			filepath.Join(desktop, "good.lnk"):  `C:\Apps\Good\good.exe`,
			filepath.Join(desktop, "empty.lnk"): "",
		},
		Failures: map[string]error{
			filepath.Join(desktop, "broken.lnk"): stderrors.New("corrupt link"),
		},
		Panics: map[string]bool{
			filepath.Join(desktop, "panic.lnk"): true,
		},
	}

	inventory := shortcuts.NewBuilder(env.FS, env.Folders, resolver).Build()

	require.Len(t, inventory, 1)
	assert.Equal(t, `C:\Apps\Good\good.exe`, inventory[0].Target)
	assert.Equal(t, 1, resolver.Calls(filepath.Join(desktop, "broken.lnk")))
	assert.Equal(t, 1, resolver.Calls(filepath.Join(desktop, "panic.lnk")))
}

func TestBuild_InaccessibleFolderContributesNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(types.FolderPrograms, testutil.FileTree{
		"Foo.lnk": `C:\Apps\Foo\foo.exe`,
	})
	env.WithFileTree(types.FolderDesktop, testutil.FileTree{
		"Bar.lnk": `C:\Apps\Bar\bar.exe`,
	})
	env.RemoveFolder(types.FolderCommonPrograms)
	env.RemoveFolder(types.FolderCommonDesktop)

	var inventory []types.Shortcut
	require.NotPanics(t, func() {
		inventory = shortcuts.NewBuilder(env.FS, env.Folders, testutil.ContentResolver{FS: env.FS}).Build()
	})

	require.Len(t, inventory, 2)
	assert.Equal(t, `C:\Apps\Foo\foo.exe`, inventory[0].Target)
	assert.Equal(t, `C:\Apps\Bar\bar.exe`, inventory[1].Target)
}

func TestBuild_UnknownFolderContributesNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(types.FolderDesktop, testutil.FileTree{
		"Bar.lnk": `C:\Apps\Bar\bar.exe`,
	})
	delete(env.Folders, types.FolderPrograms)
	delete(env.Folders, types.FolderWindows)

	inventory := shortcuts.NewBuilder(env.FS, env.Folders, testutil.ContentResolver{FS: env.FS}).Build()

	require.Len(t, inventory, 1)
	assert.Equal(t, `C:\Apps\Bar\bar.exe`, inventory[0].Target)
}

func TestBuild_CollapsesDuplicatePaths(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.Folders[types.FolderCommonDesktop] = env.Dir(types.FolderDesktop)
	env.WithFileTree(types.FolderDesktop, testutil.FileTree{
		"Foo.lnk": `C:\Apps\Foo\foo.exe`,
	})

	resolver := &testutil.FakeResolver{Targets: map[string]string{
		filepath.Join(env.Dir(types.FolderDesktop), "Foo.lnk"): `C:\Apps\Foo\foo.exe`,
	}}
	inventory := shortcuts.NewBuilder(env.FS, env.Folders, resolver).Build()

	assert.Len(t, linkPaths(inventory), 1)
	assert.Equal(t, 1, resolver.Calls(filepath.Join(env.Dir(types.FolderDesktop), "Foo.lnk")))
}

func TestBuild_CustomExtension(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(types.FolderDesktop, testutil.FileTree{
		"Foo.lnk":     `C:\Apps\Foo\foo.exe`,
		"Bar.desktop": "/opt/bar/bar",
	})

	inventory := shortcuts.NewBuilder(env.FS, env.Folders, testutil.ContentResolver{FS: env.FS},
		shortcuts.WithExtension("desktop")).Build()

	require.Len(t, inventory, 1)
	assert.Equal(t, "/opt/bar/bar", inventory[0].Target)
}
