// Package snapshot provides the application snapshot manifest model.
//
// A snapshot describes one application as an ordered list of components, each
// pinned to a digest-addressed container image and a git revision. Snapshots
// arrive as a JSON blob (typically via the SNAPSHOT environment variable) and
// are read-only after parsing.
package snapshot

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/project-koku/snapdeploy/internal/errors"
)

// DigestSeparator splits a pinned image reference into image path and digest.
const DigestSeparator = "@sha256:"

// GitRef identifies the source revision a component was built from.
type GitRef struct {
	// URL is the repository URL.
	URL string `json:"url"`

	// Revision is the full commit hash. Only its first seven characters are
	// used for image tags; shorter values pass through untruncated.
	Revision string `json:"revision"`
}

// Source wraps the git reference of a component.
type Source struct {
	Git GitRef `json:"git"`
}

// ImageRef is a digest-pinned container image, split on the @sha256: separator.
type ImageRef struct {
	// Image is the registry path without the digest.
	Image string `json:"image"`

	// Digest is the hex SHA-256 content digest, without the algorithm prefix.
	Digest string `json:"sha"`
}

// ParseImageRef splits a raw "<image>@sha256:<digest>" string into an ImageRef.
// Exactly one occurrence of the separator is required.
func ParseImageRef(raw string) (ImageRef, error) {
	parts := strings.Split(raw, DigestSeparator)
	if len(parts) != 2 {
		return ImageRef{}, errors.NewInvalidImageError(
			fmt.Sprintf("expected exactly one %q separator", DigestSeparator), "", raw)
	}
	return ImageRef{Image: parts[0], Digest: parts[1]}, nil
}

// String re-joins the reference into its wire form.
func (r ImageRef) String() string {
	return r.Image + DigestSeparator + r.Digest
}

// MarshalJSON emits the joined wire form so that a parsed snapshot
// re-serializes to its original shape.
func (r ImageRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Component is one deployable unit within a snapshot.
type Component struct {
	Name           string   `json:"name"`
	ContainerImage ImageRef `json:"containerImage"`
	Source         Source   `json:"source"`
}

// Snapshot is the root manifest for one application.
type Snapshot struct {
	Application string      `json:"application"`
	Components  []Component `json:"components"`
}

// Parse decodes and validates a JSON snapshot. Validation is all-or-nothing:
// one invalid component fails the whole parse and no partial Snapshot is
// returned. Duplicate component names are permitted.
func Parse(raw []byte) (*Snapshot, error) {
	var root struct {
		Application *string           `json:"application"`
		Components  []json.RawMessage `json:"components"`
	}
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, errors.NewMalformedInputError(
			fmt.Sprintf("snapshot is not a valid JSON object: %v", err), "", "")
	}
	if root.Application == nil {
		return nil, errors.NewMalformedInputError("missing required field", "application", "")
	}
	if root.Components == nil {
		return nil, errors.NewMalformedInputError("missing required field", "components", "")
	}

	snap := &Snapshot{
		Application: *root.Application,
		Components:  make([]Component, 0, len(root.Components)),
	}
	for i, rawComponent := range root.Components {
		component, err := parseComponent(i, rawComponent)
		if err != nil {
			return nil, err
		}
		snap.Components = append(snap.Components, component)
	}
	return snap, nil
}

// ParseYAML decodes a YAML snapshot by converting it to JSON first, so file
// and environment inputs share one validation path.
func ParseYAML(raw []byte) (*Snapshot, error) {
	converted, err := yaml.YAMLToJSON(raw)
	if err != nil {
		return nil, errors.NewMalformedInputError(
			fmt.Sprintf("snapshot is not valid YAML: %v", err), "", "")
	}
	return Parse(converted)
}

// parseComponent decodes one component in two phases: first the raw
// containerImage string is rewritten into its split form, then the remaining
// fields are validated structurally.
func parseComponent(index int, raw json.RawMessage) (Component, error) {
	fieldPath := fmt.Sprintf("components[%d]", index)

	var loose map[string]json.RawMessage
	if err := json.Unmarshal(raw, &loose); err != nil || loose == nil {
		return Component{}, errors.NewInvalidImageError(
			"component is not of mapping type", fieldPath, compactValue(raw))
	}

	rawImage, ok := loose["containerImage"]
	if !ok {
		return Component{}, errors.NewMalformedInputError(
			"missing required field", fieldPath+".containerImage", "")
	}
	var imageString string
	if err := json.Unmarshal(rawImage, &imageString); err != nil {
		return Component{}, errors.NewMalformedInputError(
			"containerImage is not a string", fieldPath+".containerImage", compactValue(rawImage))
	}
	image, err := ParseImageRef(imageString)
	if err != nil {
		return Component{}, errors.NewInvalidImageError(
			fmt.Sprintf("expected exactly one %q separator", DigestSeparator),
			fieldPath+".containerImage", imageString)
	}

	var body struct {
		Name   *string `json:"name"`
		Source *struct {
			Git *struct {
				URL      *string `json:"url"`
				Revision *string `json:"revision"`
			} `json:"git"`
		} `json:"source"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Component{}, errors.NewMalformedInputError(
			fmt.Sprintf("component has wrong-typed fields: %v", err), fieldPath, compactValue(raw))
	}
	if body.Name == nil {
		return Component{}, errors.NewMalformedInputError(
			"missing required field", fieldPath+".name", "")
	}
	if body.Source == nil || body.Source.Git == nil {
		return Component{}, errors.NewMalformedInputError(
			"missing required field", fieldPath+".source.git", "")
	}
	git := body.Source.Git
	if git.URL == nil {
		return Component{}, errors.NewMalformedInputError(
			"missing required field", fieldPath+".source.git.url", "")
	}
	if parsed, err := url.Parse(*git.URL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Component{}, errors.NewMalformedInputError(
			"not an absolute URL", fieldPath+".source.git.url", *git.URL)
	}
	if git.Revision == nil {
		return Component{}, errors.NewMalformedInputError(
			"missing required field", fieldPath+".source.git.revision", "")
	}

	return Component{
		Name:           *body.Name,
		ContainerImage: image,
		Source:         Source{Git: GitRef{URL: *git.URL, Revision: *git.Revision}},
	}, nil
}

// compactValue renders an offending raw value for error output, truncated so a
// pathological blob does not flood the terminal.
func compactValue(raw json.RawMessage) string {
	s := string(raw)
	if len(s) > 120 {
		s = s[:117] + "..."
	}
	return s
}
