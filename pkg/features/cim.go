package features

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/arthur-debert/residue/pkg/types"
)

// Win32_OptionalFeature reports InstallState 1 for enabled features
const installStateEnabled = 1

const cimScript = "Get-CimInstance -ClassName Win32_OptionalFeature | " +
	"Select-Object Name,Caption,Description,InstallState | ConvertTo-Json -Compress"

// CommandRunner runs an external command and returns its stdout
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// CIMEnumerator lists optional features through PowerShell and CIM. The
// PowerShell process is tied to ctx, so a timed out query kills it.
type CIMEnumerator struct {
	run CommandRunner
}

// NewCIMEnumerator creates an enumerator. A nil runner executes commands
// on the host.
func NewCIMEnumerator(run CommandRunner) *CIMEnumerator {
	if run == nil {
		run = runCommand
	}
	return &CIMEnumerator{run: run}
}

// Features implements types.FeatureEnumerator
func (e *CIMEnumerator) Features(ctx context.Context) ([]types.FeatureRecord, error) {
	out, err := e.run(ctx, "powershell.exe", "-NoProfile", "-NonInteractive", "-Command", cimScript)
	if err != nil {
		return nil, err
	}
	return parseCIMFeatures(out)
}

type cimFeature struct {
	Name         string `json:"Name"`
	Caption      string `json:"Caption"`
	Description  string `json:"Description"`
	InstallState int    `json:"InstallState"`
}

func parseCIMFeatures(data []byte) ([]types.FeatureRecord, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var items []cimFeature
	// ConvertTo-Json emits a bare object when there is a single result
	if data[0] == '{' {
		var one cimFeature
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, fmt.Errorf("failed to decode feature: %w", err)
		}
		items = append(items, one)
	} else if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode features: %w", err)
	}

	records := make([]types.FeatureRecord, 0, len(items))
	for _, it := range items {
		if it.Name == "" {
			continue
		}
		display := it.Caption
		if display == "" {
			display = it.Name
		}
		records = append(records, types.FeatureRecord{
			Name:        it.Name,
			DisplayName: display,
			Description: it.Description,
			Enabled:     it.InstallState == installStateEnabled,
		})
	}
	return records, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s terminated: %w", name, ctx.Err())
		}
		return nil, fmt.Errorf("%s failed: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
