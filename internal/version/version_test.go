package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildDate, info.BuildDate)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.2.3", GitCommit: "abcdef0", BuildDate: "2026-01-01", GoVersion: "go1.25.0"}

	s := info.String()

	assert.Contains(t, s, "snapdeploy v1.2.3")
	assert.Contains(t, s, "abcdef0")
	assert.Contains(t, s, "2026-01-01")
}
