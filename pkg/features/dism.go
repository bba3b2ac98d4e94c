package features

import "fmt"

// DefaultDismExecutable is used when DismCommands.Executable is empty
const DefaultDismExecutable = "dism.exe"

// DismCommands formats DISM command lines for optional features
type DismCommands struct {
	Executable string
}

// UninstallCommand implements types.CommandBuilder
func (d DismCommands) UninstallCommand(feature string, silent bool) string {
	return d.command("disable", feature, silent)
}

// EnableCommand implements types.ReinstallCommandBuilder
func (d DismCommands) EnableCommand(feature string, silent bool) string {
	return d.command("enable", feature, silent)
}

func (d DismCommands) command(action, feature string, silent bool) string {
	exe := d.Executable
	if exe == "" {
		exe = DefaultDismExecutable
	}
	cmd := fmt.Sprintf("%s /online /%s-feature /featurename:%s", exe, action, feature)
	if silent {
		cmd += " /quiet /norestart"
	}
	return cmd
}
