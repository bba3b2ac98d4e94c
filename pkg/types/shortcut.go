package types

// Shortcut is a shell link resolved to its target path
type Shortcut struct {
	LinkPath string `json:"link_path"`
	Target   string `json:"target"`
}

func (s Shortcut) String() string {
	return s.Target
}
