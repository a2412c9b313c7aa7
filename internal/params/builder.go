// Package params expands a parsed snapshot into bonfire deploy parameters.
package params

import (
	"fmt"
	"strings"

	"github.com/project-koku/snapdeploy/internal/snapshot"
)

// shortRevisionLen is the short-SHA convention used for image tags.
const shortRevisionLen = 7

// invocationBound is the exclusive upper bound for DBM_INVOCATION draws.
const invocationBound = 100

// Options carries the contextual inputs for one expansion.
type Options struct {
	// PRNumber, when non-empty, prepends "pr-<number>-" to every image tag.
	PRNumber string

	// ComponentName, when non-empty, replaces every component's own name in the
	// emitted parameters. It is a uniform override, not per-component.
	ComponentName string

	// Rand supplies the DBM_INVOCATION draw. Nil selects the crypto/rand-backed
	// default source.
	Rand IntSource
}

// Build expands each component of the snapshot, in manifest order, into six
// flag/value pairs and returns them as one flat token list. Order matters
// downstream: bonfire applies later flags as overrides of earlier ones, so the
// list is never sorted or deduplicated. Components with duplicate names each
// produce their own pairs.
//
// Build performs no validation; the snapshot is trusted as parsed. The only
// failure mode is a read error from the random source.
func Build(snap *snapshot.Snapshot, opts Options) ([]string, error) {
	source := opts.Rand
	if source == nil {
		source = CryptoSource{}
	}

	prefix := ""
	if opts.PRNumber != "" {
		prefix = fmt.Sprintf("pr-%s-", opts.PRNumber)
	}

	tokens := make([]string, 0, 12*len(snap.Components))
	for _, component := range snap.Components {
		name := component.Name
		if opts.ComponentName != "" {
			name = opts.ComponentName
		}

		revision := component.Source.Git.Revision
		tag := prefix + shortRevision(revision)
		image := component.ContainerImage.Image

		// DBM_INVOCATION distinguishes parallel deployments of the same
		// component; it has no security purpose beyond non-predictability.
		invocation, err := source.IntN(invocationBound)
		if err != nil {
			return nil, fmt.Errorf("drawing invocation value: %w", err)
		}

		tokens = append(tokens,
			"--set-template-ref", fmt.Sprintf("%s=%s", name, revision),
			"--set-parameter", fmt.Sprintf("%s/IMAGE=%s", name, image),
			"--set-parameter", fmt.Sprintf("%s/IMAGE_TAG=%s", name, tag),
			"--set-parameter", fmt.Sprintf("%s/DBM_IMAGE=%s", name, image),
			"--set-parameter", fmt.Sprintf("%s/DBM_IMAGE_TAG=%s", name, tag),
			"--set-parameter", fmt.Sprintf("%s/DBM_INVOCATION=%d", name, invocation),
		)
	}
	return tokens, nil
}

// Line joins tokens with single spaces for shell consumption. No quoting is
// applied, so values must not contain whitespace.
func Line(tokens []string) string {
	return strings.Join(tokens, " ")
}

// shortRevision returns the first seven characters of a commit hash, or the
// whole string when it is shorter.
func shortRevision(revision string) string {
	if len(revision) < shortRevisionLen {
		return revision
	}
	return revision[:shortRevisionLen]
}
