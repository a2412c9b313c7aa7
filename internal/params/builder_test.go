package params

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-koku/snapdeploy/internal/snapshot"
)

// fixedSource returns the same value on every draw.
type fixedSource int

func (f fixedSource) IntN(_ int) (int, error) { return int(f), nil }

// failingSource simulates an unreadable random source.
type failingSource struct{}

func (failingSource) IntN(_ int) (int, error) { return 0, fmt.Errorf("entropy exhausted") }

func makeSnapshot(components ...snapshot.Component) *snapshot.Snapshot {
	return &snapshot.Snapshot{Application: "koku", Components: components}
}

func makeComponent(name, image, digest, revision string) snapshot.Component {
	return snapshot.Component{
		Name:           name,
		ContainerImage: snapshot.ImageRef{Image: image, Digest: digest},
		Source: snapshot.Source{Git: snapshot.GitRef{
			URL:      "https://github.com/project-koku/koku",
			Revision: revision,
		}},
	}
}

func TestBuild(t *testing.T) {
	t.Run("emits six pairs per component in fixed order", func(t *testing.T) {
		snap := makeSnapshot(makeComponent("koku", "quay.io/koku", "abc123", "deadbeef1234"))

		tokens, err := Build(snap, Options{Rand: fixedSource(42)})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"--set-template-ref", "koku=deadbeef1234",
			"--set-parameter", "koku/IMAGE=quay.io/koku",
			"--set-parameter", "koku/IMAGE_TAG=deadbee",
			"--set-parameter", "koku/DBM_IMAGE=quay.io/koku",
			"--set-parameter", "koku/DBM_IMAGE_TAG=deadbee",
			"--set-parameter", "koku/DBM_INVOCATION=42",
		}, tokens)
	})

	t.Run("prepends pr prefix to tags only", func(t *testing.T) {
		snap := makeSnapshot(makeComponent("koku", "quay.io/koku", "abc", "deadbeef1234"))

		tokens, err := Build(snap, Options{PRNumber: "123", Rand: fixedSource(0)})

		require.NoError(t, err)
		assert.Contains(t, tokens, "koku/IMAGE_TAG=pr-123-deadbee")
		assert.Contains(t, tokens, "koku/DBM_IMAGE_TAG=pr-123-deadbee")
		// The template ref keeps the full, unprefixed revision.
		assert.Contains(t, tokens, "koku=deadbeef1234")
		assert.Contains(t, tokens, "koku/IMAGE=quay.io/koku")
	})

	t.Run("omits pr prefix when number is empty", func(t *testing.T) {
		snap := makeSnapshot(makeComponent("koku", "quay.io/koku", "abc", "deadbeef1234"))

		tokens, err := Build(snap, Options{Rand: fixedSource(0)})

		require.NoError(t, err)
		for _, token := range tokens {
			assert.NotContains(t, token, "pr-")
		}
	})

	t.Run("name override applies to every component", func(t *testing.T) {
		snap := makeSnapshot(
			makeComponent("koku", "quay.io/a", "1", "aaaaaaaaaa"),
			makeComponent("validator", "quay.io/b", "2", "bbbbbbbbbb"),
		)

		tokens, err := Build(snap, Options{ComponentName: "override", Rand: fixedSource(0)})

		require.NoError(t, err)
		for _, token := range tokens {
			if strings.Contains(token, "=") {
				assert.True(t, strings.HasPrefix(token, "override=") || strings.HasPrefix(token, "override/"),
					"token %q should use the override name", token)
			}
		}
	})

	t.Run("short revision passes through untruncated", func(t *testing.T) {
		snap := makeSnapshot(makeComponent("koku", "quay.io/koku", "abc", "ab12"))

		tokens, err := Build(snap, Options{Rand: fixedSource(0)})

		require.NoError(t, err)
		assert.Contains(t, tokens, "koku/IMAGE_TAG=ab12")
	})

	t.Run("duplicate names produce independent pairs in order", func(t *testing.T) {
		snap := makeSnapshot(
			makeComponent("koku", "quay.io/a", "1", "aaaaaaaaaa"),
			makeComponent("koku", "quay.io/b", "2", "bbbbbbbbbb"),
		)

		tokens, err := Build(snap, Options{Rand: fixedSource(0)})

		require.NoError(t, err)
		require.Len(t, tokens, 24)
		assert.Equal(t, "koku=aaaaaaaaaa", tokens[1])
		assert.Equal(t, "koku=bbbbbbbbbb", tokens[13])
		assert.Equal(t, "koku/IMAGE=quay.io/a", tokens[3])
		assert.Equal(t, "koku/IMAGE=quay.io/b", tokens[15])
	})

	t.Run("empty snapshot yields no tokens", func(t *testing.T) {
		tokens, err := Build(makeSnapshot(), Options{Rand: fixedSource(0)})

		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("surfaces random source failure", func(t *testing.T) {
		snap := makeSnapshot(makeComponent("koku", "quay.io/koku", "abc", "deadbeef"))

		_, err := Build(snap, Options{Rand: failingSource{}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invocation")
	})
}

func TestBuildDefaultSource(t *testing.T) {
	// With a nil source the crypto-backed default draws a value in [0, 100).
	snap := makeSnapshot(makeComponent("koku", "quay.io/koku", "abc", "deadbeef1234"))

	tokens, err := Build(snap, Options{})

	require.NoError(t, err)
	require.Len(t, tokens, 12)
	value := strings.TrimPrefix(tokens[11], "koku/DBM_INVOCATION=")
	n, err := strconv.Atoi(value)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, 100)
}

func TestCryptoSourceBounds(t *testing.T) {
	source := CryptoSource{}
	for range 200 {
		n, err := source.IntN(100)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 100)
	}
}

func TestLine(t *testing.T) {
	assert.Equal(t, "--set-parameter a/IMAGE=x", Line([]string{"--set-parameter", "a/IMAGE=x"}))
	assert.Empty(t, Line(nil))
}
