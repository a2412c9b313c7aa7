package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSnapshot = `{"application":"koku","components":[{"name":"koku","containerImage":"quay.io/koku@sha256:abc123","source":{"git":{"url":"https://example.com/r","revision":"deadbeef1234"}}}]}`

// executeCommand runs the root command with the given args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestParamsCmd(t *testing.T) {
	t.Run("prints the token line from SNAPSHOT", func(t *testing.T) {
		t.Setenv("SNAPSHOT", testSnapshot)

		out, err := executeCommand(t, "params")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out,
			"--set-template-ref koku=deadbeef1234 "+
				"--set-parameter koku/IMAGE=quay.io/koku "+
				"--set-parameter koku/IMAGE_TAG=deadbee "+
				"--set-parameter koku/DBM_IMAGE=quay.io/koku "+
				"--set-parameter koku/DBM_IMAGE_TAG=deadbee "+
				"--set-parameter koku/DBM_INVOCATION="),
			"unexpected output: %s", out)
		assert.Regexp(t, regexp.MustCompile(`DBM_INVOCATION=\d{1,2}\n$`), out)
	})

	t.Run("applies the pr tag prefix", func(t *testing.T) {
		t.Setenv("SNAPSHOT", testSnapshot)
		t.Setenv("PR_NUMBER", "42")

		out, err := executeCommand(t, "params")

		require.NoError(t, err)
		assert.Contains(t, out, "koku/IMAGE_TAG=pr-42-deadbee")
		assert.Contains(t, out, "koku/DBM_IMAGE_TAG=pr-42-deadbee")
	})

	t.Run("applies the component name override", func(t *testing.T) {
		t.Setenv("SNAPSHOT", testSnapshot)
		t.Setenv("BONFIRE_COMPONENT_NAME", "koku-mig")

		out, err := executeCommand(t, "params")

		require.NoError(t, err)
		assert.Contains(t, out, "koku-mig=deadbeef1234")
		assert.Contains(t, out, "koku-mig/IMAGE=quay.io/koku")
		assert.NotContains(t, out, " koku/")
	})

	t.Run("reads a YAML snapshot file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "snapshot.yaml")
		content := `
application: koku
components:
  - name: koku
    containerImage: quay.io/koku@sha256:abc123
    source:
      git:
        url: https://example.com/r
        revision: deadbeef1234
`
		require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

		out, err := executeCommand(t, "params", "--snapshot-file", file)

		require.NoError(t, err)
		assert.Contains(t, out, "--set-template-ref koku=deadbeef1234")
	})

	t.Run("fails with missing-context code when SNAPSHOT unset", func(t *testing.T) {
		_, err := executeCommand(t, "params")

		require.Error(t, err)
		assert.Equal(t, ExitMissingContext, ExitCodeFromError(err))
	})

	t.Run("fails with validation code on malformed snapshot", func(t *testing.T) {
		t.Setenv("SNAPSHOT", `{"application":"koku"}`)

		_, err := executeCommand(t, "params")

		require.Error(t, err)
		assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	})

	t.Run("fails with validation code on bad image reference", func(t *testing.T) {
		t.Setenv("SNAPSHOT", `{"application":"koku","components":[{"name":"koku","containerImage":"quay.io/koku","source":{"git":{"url":"https://example.com/r","revision":"abc"}}}]}`)

		_, err := executeCommand(t, "params")

		require.Error(t, err)
		assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	})
}

func TestDeployCmdDryRun(t *testing.T) {
	t.Setenv("SNAPSHOT", testSnapshot)
	t.Setenv("APP_NAME", "koku")

	out, err := executeCommand(t, "deploy", "ephemeral-xyz", "pipeline-run-1", "--dry-run")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "bonfire deploy --source appsre"), "unexpected output: %s", out)
	assert.Contains(t, out, "--namespace ephemeral-xyz")
	assert.Contains(t, out, "--set-parameter rbac/MIN_REPLICAS=1")
	assert.Contains(t, out, "--set-template-ref koku=deadbeef1234")
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), " koku"), "app name should be final: %s", out)
}

func TestDeployCmdArgs(t *testing.T) {
	_, err := executeCommand(t, "deploy", "only-namespace")

	require.Error(t, err)
}

func TestLabelsCmdArgs(t *testing.T) {
	_, err := executeCommand(t, "labels", "not-a-number")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an integer")
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "snapdeploy")
}
