package paths

import (
	"os"
	"path"
	"regexp"
	"strings"
)

var windowsEnvPattern = regexp.MustCompile(`%([^%\s]+)%`)

// Normalize expands ~ and %VAR% references, unifies separators to '/', and
// cleans the result. Empty input stays empty.
func Normalize(p string) string {
	p = strings.TrimSpace(p)
	p = strings.Trim(p, `"`)
	if p == "" {
		return ""
	}

	p = expandHome(p)
	p = expandWindowsEnv(p)
	p = strings.ReplaceAll(p, `\`, "/")

	// path.Clean would fold the UNC prefix into a single slash
	unc := strings.HasPrefix(p, "//")
	p = path.Clean(p)
	if unc && !strings.HasPrefix(p, "//") {
		p = "/" + p
	}
	return p
}

// Equal reports whether two paths name the same location, ignoring case.
// An empty path is never equal to anything.
func Equal(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.EqualFold(na, nb)
}

// ContainsFold reports whether haystack contains needle as a substring,
// ignoring case. An empty needle never matches.
func ContainsFold(haystack, needle string) bool {
	h, n := foldForMatch(haystack), foldForMatch(needle)
	if n == "" {
		return false
	}
	return strings.Contains(h, n)
}

// ContainsBoundary is ContainsFold restricted to matches that end on a path
// separator or at the end of haystack, so "C:\Apps\Foo" does not match
// "C:\Apps\Foo2\foo.exe".
func ContainsBoundary(haystack, needle string) bool {
	h, n := foldForMatch(haystack), foldForMatch(needle)
	if n == "" {
		return false
	}
	for offset := 0; ; {
		i := strings.Index(h[offset:], n)
		if i < 0 {
			return false
		}
		end := offset + i + len(n)
		if end == len(h) || h[end] == '/' {
			return true
		}
		offset += i + 1
	}
}

// IsSubPath reports whether child is parent itself or lies below it
func IsSubPath(parent, child string) bool {
	p, c := foldForMatch(parent), foldForMatch(child)
	if p == "" || c == "" {
		return false
	}
	if c == p {
		return true
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return strings.HasPrefix(c, p)
}

// Split separates the last element of p on either separator, whatever the
// host OS. The directory keeps its original separators. A drive or
// filesystem root keeps its trailing separator.
func Split(p string) (dir, name string) {
	i := strings.LastIndexAny(p, `\/`)
	if i < 0 {
		return ".", p
	}
	dir = p[:i]
	if dir == "" || strings.HasSuffix(dir, ":") {
		dir = p[:i+1]
	}
	return dir, p[i+1:]
}

func foldForMatch(p string) string {
	return strings.ToLower(Normalize(p))
}

// ExpandEnv replaces %VAR% references with their values and leaves unknown
// variables verbatim. Separators are not touched.
func ExpandEnv(p string) string {
	return expandWindowsEnv(p)
}

func expandWindowsEnv(p string) string {
	if !strings.Contains(p, "%") {
		return p
	}
	return windowsEnvPattern.ReplaceAllStringFunc(p, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return m
	})
}

// expandHome expands the ~ prefix to the user's home directory
func expandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	if len(p) > 1 && p[1] != '/' && p[1] != '\\' {
		return p
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return homeDir + p[1:]
}
