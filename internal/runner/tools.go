package runner

import "strings"

// Tool describes one supported external analyzer: how to invoke it against a
// target project and which exit codes count as a successful run. Most linters
// exit non-zero when they find issues, so "success" is tool-specific.
type Tool struct {
	Name   string
	Binary string
	// Args builds the command line for a target path. exclude holds
	// directory-shaped ignore rules forwarded to the tool itself.
	Args func(target string, exclude []string) []string
	// SuccessExit reports whether the exit code means the tool ran to
	// completion (findings or not) rather than crashed.
	SuccessExit func(code int) bool
}

var tools = []Tool{
	{
		Name:   "flake8",
		Binary: "flake8",
		Args: func(target string, exclude []string) []string {
			args := []string{target}
			if len(exclude) > 0 {
				args = append(args, "--exclude", strings.Join(exclude, ","))
			}
			return args
		},
		// 0 = clean, 1 = findings
		SuccessExit: func(code int) bool { return code == 0 || code == 1 },
	},
	{
		Name:   "pylint",
		Binary: "pylint",
		Args: func(target string, exclude []string) []string {
			args := []string{target, "--output-format=json"}
			if len(exclude) > 0 {
				args = append(args, "--ignore", strings.Join(exclude, ","))
			}
			return args
		},
		// Exit code is a bitmask; bit 32 is a usage error, everything
		// below it means messages were issued.
		SuccessExit: func(code int) bool { return code >= 0 && code&32 == 0 },
	},
	{
		Name:   "pyre-check",
		Binary: "pyre",
		Args: func(target string, exclude []string) []string {
			return []string{"--output=json", "--source-directory", target, "check"}
		},
		// 0 = clean, 1 = type errors found
		SuccessExit: func(code int) bool { return code == 0 || code == 1 },
	},
}

// Lookup resolves a tool by name. "pyre" is accepted as an alias for
// "pyre-check".
func Lookup(name string) (Tool, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "pyre" {
		name = "pyre-check"
	}
	for _, t := range tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Names returns the supported tool names in registration order.
func Names() []string {
	out := make([]string, len(tools))
	for i, t := range tools {
		out[i] = t.Name
	}
	return out
}
