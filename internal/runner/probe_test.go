package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type versionRunner struct {
	versions map[string]string
}

func (v versionRunner) Run(_ context.Context, binary string, args ...string) ([]byte, []byte, int, error) {
	out, ok := v.versions[binary]
	if !ok {
		return nil, nil, 1, nil
	}
	return []byte(out + "\n"), nil, 0, nil
}

func TestProbe(t *testing.T) {
	orig := lookPath
	lookPath = func(file string) (string, error) {
		if file == "flake8" || file == "pylint" {
			return "/usr/bin/" + file, nil
		}
		return "", errors.New("not found")
	}
	defer func() { lookPath = orig }()

	cmd := versionRunner{versions: map[string]string{
		"flake8": "7.1.1 (mccabe: 0.7.0) CPython 3.12",
	}}
	statuses := Probe(context.Background(), cmd)
	require.Len(t, statuses, 3)

	byTool := map[string]Status{}
	for _, st := range statuses {
		byTool[st.Tool] = st
	}

	require.True(t, byTool["flake8"].Available)
	require.Equal(t, "7.1.1 (mccabe: 0.7.0) CPython 3.12", byTool["flake8"].Version)

	// present but --version fails: still available, version blank
	require.True(t, byTool["pylint"].Available)
	require.Empty(t, byTool["pylint"].Version)

	require.False(t, byTool["pyre-check"].Available)
	require.Empty(t, byTool["pyre-check"].Version)
}
