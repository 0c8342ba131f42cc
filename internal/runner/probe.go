package runner

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Status reports whether a supported analyzer is installed and which version
// responds on PATH.
type Status struct {
	Tool      string `json:"tool"`
	Binary    string `json:"binary"`
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
}

// lookPath is swappable in tests.
var lookPath = exec.LookPath

// Probe checks every supported tool for availability. Version lookups are
// best-effort with a short timeout; a tool that is present but does not
// answer --version is still reported as available.
func Probe(ctx context.Context, cmd CommandRunner) []Status {
	if cmd == nil {
		cmd = ExecRunner{}
	}
	out := make([]Status, 0, len(tools))
	for _, t := range tools {
		st := Status{Tool: t.Name, Binary: t.Binary}
		if _, err := lookPath(t.Binary); err == nil {
			st.Available = true
			st.Version = probeVersion(ctx, cmd, t.Binary)
		}
		out = append(out, st)
	}
	return out
}

func probeVersion(ctx context.Context, cmd CommandRunner, binary string) string {
	vctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	stdout, _, exitCode, err := cmd.Run(vctx, binary, "--version")
	if err != nil || exitCode != 0 {
		return ""
	}
	return firstLine(strings.TrimSpace(string(stdout)))
}
