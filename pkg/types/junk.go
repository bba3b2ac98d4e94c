package types

import (
	"path/filepath"
	"strings"
)

// JunkNode is a proposed removable artifact. Nothing is deleted by the code
// that produces it; the caller decides what to do with the confidence.
type JunkNode struct {
	Directory       string     `json:"directory"`
	Name            string     `json:"name"`
	UninstallerName string     `json:"uninstaller_name"`
	Confidence      Confidence `json:"confidence"`
}

// FullPath joins the containing directory and the artifact name. A
// directory written with backslashes only is joined with a backslash on
// every host.
func (n JunkNode) FullPath() string {
	if strings.Contains(n.Directory, `\`) && !strings.Contains(n.Directory, "/") {
		if strings.HasSuffix(n.Directory, `\`) {
			return n.Directory + n.Name
		}
		return n.Directory + `\` + n.Name
	}
	return filepath.Join(n.Directory, n.Name)
}
