package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/residue/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7FB5E6"})
	nameStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)

	levelStyles = map[types.ConfidenceLevel]lipgloss.Style{
		types.ConfidenceLevelBad:          lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B00020", Dark: "#FF6B6B"}),
		types.ConfidenceLevelQuestionable: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#F2C94C"}),
		types.ConfidenceLevelGood:         lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1E7B34", Dark: "#6FCF97"}),
		types.ConfidenceLevelVeryGood:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1E7B34", Dark: "#27AE60"}),
	}
)

// renderer writes command results as styled text or JSON
type renderer struct {
	w      io.Writer
	styled bool
}

// newRenderer styles output only for terminals without NO_COLOR
func newRenderer(w io.Writer) *renderer {
	styled := false
	if f, ok := w.(*os.File); ok && os.Getenv("NO_COLOR") == "" {
		styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &renderer{w: w, styled: styled}
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *renderer) json(v interface{}) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *renderer) entries(list []types.UninstallEntry) {
	fmt.Fprintln(r.w, r.style(titleStyle, fmt.Sprintf("OS features (%d enabled)", len(list))))
	for _, e := range list {
		fmt.Fprintf(r.w, "  %s  %s\n", r.style(nameStyle, e.DisplayName), r.style(faintStyle, e.RatingID))
		fmt.Fprintf(r.w, "    uninstall: %s\n", e.UninstallString)
		if e.ReinstallString != "" {
			fmt.Fprintf(r.w, "    reinstall: %s\n", r.style(faintStyle, e.ReinstallString))
		}
	}
}

func (r *renderer) shortcuts(list []types.Shortcut) {
	fmt.Fprintln(r.w, r.style(titleStyle, fmt.Sprintf("Shortcuts (%d)", len(list))))
	for _, s := range list {
		fmt.Fprintf(r.w, "  %s\n    -> %s\n", s.LinkPath, r.style(faintStyle, s.Target))
	}
}

// junk groups candidates by uninstaller, keeping first appearance order
func (r *renderer) junk(nodes []types.JunkNode) {
	if len(nodes) == 0 {
		fmt.Fprintln(r.w, "No leftover shortcuts found.")
		return
	}

	var order []string
	groups := make(map[string][]types.JunkNode)
	for _, n := range nodes {
		if _, ok := groups[n.UninstallerName]; !ok {
			order = append(order, n.UninstallerName)
		}
		groups[n.UninstallerName] = append(groups[n.UninstallerName], n)
	}

	for i, name := range order {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintln(r.w, r.style(titleStyle, fmt.Sprintf("Leftovers of %s (%d)", name, len(groups[name]))))
		for _, n := range groups[name] {
			level := n.Confidence.Level()
			badge := fmt.Sprintf("[%s %+d]", level, n.Confidence.Score())
			fmt.Fprintf(r.w, "  %s %s\n", r.style(levelStyles[level], badge), n.FullPath())
			for _, p := range n.Confidence.Parts() {
				fmt.Fprintf(r.w, "      %s\n", r.style(faintStyle, fmt.Sprintf("%+d %s", p.Change, p.Reason)))
			}
		}
	}
}

// junkView is the JSON shape of a candidate
type junkView struct {
	Path            string                 `json:"path"`
	Directory       string                 `json:"directory"`
	Name            string                 `json:"name"`
	UninstallerName string                 `json:"uninstaller_name"`
	Score           int                    `json:"score"`
	Level           types.ConfidenceLevel  `json:"level"`
	Confidence      []types.ConfidencePart `json:"confidence"`
}

func junkViews(nodes []types.JunkNode) []junkView {
	views := make([]junkView, 0, len(nodes))
	for _, n := range nodes {
		views = append(views, junkView{
			Path:            n.FullPath(),
			Directory:       n.Directory,
			Name:            n.Name,
			UninstallerName: n.UninstallerName,
			Score:           n.Confidence.Score(),
			Level:           n.Confidence.Level(),
			Confidence:      n.Confidence.Parts(),
		})
	}
	return views
}
