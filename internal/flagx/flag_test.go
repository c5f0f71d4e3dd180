package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "http://localhost:3000", "-x", "ignored", "pos"}
	got := FilterArgs(args, []string{"-a"})
	require.Equal(t, []string{"-a", "http://localhost:3000"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "-a=addr", "-b=nope"}
	got := FilterArgs(args, []string{"--config", "-a"})
	require.Equal(t, []string{"--config=conf.json", "-a=addr"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	// A flag directly followed by another flag has no value to capture.
	args := []string{"-a", "-b", "val"}
	got := FilterArgs(args, []string{"-a", "-b"})
	require.Equal(t, []string{"-a", "-b", "val"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestJsonConfigFlags_ShortAndLong(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cmd", "-c", "short.json"}
	require.Equal(t, "short.json", JsonConfigFlags())

	os.Args = []string{"cmd", "-config=long.json"}
	require.Equal(t, "long.json", JsonConfigFlags())

	os.Args = []string{"cmd", "-a", "addr"}
	require.Equal(t, "", JsonConfigFlags())
}
