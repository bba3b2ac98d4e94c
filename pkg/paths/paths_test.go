package paths_test

import (
	"testing"

	"github.com/arthur-debert/residue/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Setenv("RESIDUE_TEST_ROOT", `D:\Tools`)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
		{name: "backslashes", in: `C:\Apps\Foo`, want: "C:/Apps/Foo"},
		{name: "trailing separator", in: `C:\Apps\Foo\`, want: "C:/Apps/Foo"},
		{name: "quoted", in: `"C:\Program Files\Foo"`, want: "C:/Program Files/Foo"},
		{name: "dot segments", in: `C:\Apps\.\Foo\..\Bar`, want: "C:/Apps/Bar"},
		{name: "env var", in: `%RESIDUE_TEST_ROOT%\bin`, want: "D:/Tools/bin"},
		{name: "unknown env var kept", in: `%RESIDUE_NOT_SET_ANYWHERE%\bin`, want: "%RESIDUE_NOT_SET_ANYWHERE%/bin"},
		{name: "unc share", in: `\\server\share\app`, want: "//server/share/app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.Normalize(tt.in))
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "case insensitive", a: `C:\Apps\Foo`, b: `c:\apps\foo`, want: true},
		{name: "separator insensitive", a: `C:\Apps\Foo`, b: "C:/Apps/Foo/", want: true},
		{name: "different directories", a: `C:\Apps\Foo`, b: `C:\Apps\Foo2`, want: false},
		{name: "parent is not equal", a: `C:\Apps`, b: `C:\Apps\Foo`, want: false},
		{name: "both empty", a: "", b: "", want: false},
		{name: "one empty", a: `C:\Apps\Foo`, b: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.Equal(tt.a, tt.b))
		})
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, paths.ContainsFold(`C:\Apps\Foo\foo.exe`, `C:\Apps\Foo`))
	assert.True(t, paths.ContainsFold(`c:\apps\foo\foo.exe`, `C:\APPS\FOO\`))
	assert.True(t, paths.ContainsFold(`C:\Apps\Foo2\foo.exe`, `C:\Apps\Foo`))
	assert.False(t, paths.ContainsFold(`C:\Apps\Bar\bar.exe`, `C:\Apps\Foo`))
	assert.False(t, paths.ContainsFold(`C:\Apps\Foo\foo.exe`, ""))
}

func TestContainsBoundary(t *testing.T) {
	assert.True(t, paths.ContainsBoundary(`C:\Apps\Foo\foo.exe`, `C:\Apps\Foo`))
	assert.True(t, paths.ContainsBoundary(`C:\Apps\Foo`, `c:\apps\foo`))
	assert.False(t, paths.ContainsBoundary(`C:\Apps\Foo2\foo.exe`, `C:\Apps\Foo`))
	assert.True(t, paths.ContainsBoundary(`C:\Apps\Foo2\Apps\Foo\x.exe`, `Apps\Foo`))
	assert.False(t, paths.ContainsBoundary(`C:\Apps\Foo\foo.exe`, ""))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		dir, base string
	}{
		{name: "windows path", path: `C:\Users\Public\Desktop\Foo.lnk`, dir: `C:\Users\Public\Desktop`, base: "Foo.lnk"},
		{name: "slash path", path: "/machine/Desktop/Foo.lnk", dir: "/machine/Desktop", base: "Foo.lnk"},
		{name: "mixed separators", path: `C:\Apps/Foo\foo.lnk`, dir: `C:\Apps/Foo`, base: "foo.lnk"},
		{name: "drive root", path: `C:\Foo.lnk`, dir: `C:\`, base: "Foo.lnk"},
		{name: "slash root", path: "/Foo.lnk", dir: "/", base: "Foo.lnk"},
		{name: "bare name", path: "Foo.lnk", dir: ".", base: "Foo.lnk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, base := paths.Split(tt.path)
			assert.Equal(t, tt.dir, dir)
			assert.Equal(t, tt.base, base)
		})
	}
}

func TestIsSubPath(t *testing.T) {
	tests := []struct {
		name          string
		parent, child string
		want          bool
	}{
		{name: "direct child", parent: `C:\Windows`, child: `C:\Windows\explorer.exe`, want: true},
		{name: "nested child", parent: `C:\Windows`, child: `c:\windows\System32\cmd.exe`, want: true},
		{name: "same path", parent: `C:\Windows`, child: `C:\Windows\`, want: true},
		{name: "sibling with prefix", parent: `C:\Windows`, child: `C:\WindowsApps\app.exe`, want: false},
		{name: "unrelated", parent: `C:\Windows`, child: `C:\Apps\Foo\foo.exe`, want: false},
		{name: "empty parent", parent: "", child: `C:\Apps`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.IsSubPath(tt.parent, tt.child))
		})
	}
}
