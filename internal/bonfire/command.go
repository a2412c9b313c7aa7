// Package bonfire assembles and runs the external bonfire deploy invocation.
//
// Everything here is thin glue: values are passed through to bonfire
// unvalidated, and bonfire's own behavior (retries, timeouts, orchestration)
// is its own concern.
package bonfire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/project-koku/snapdeploy/internal/config"
)

// Binary is the deployment tool invoked for every deploy.
const Binary = "bonfire"

// nsRequesterEnv tells bonfire who reserved the target namespace.
const nsRequesterEnv = "BONFIRE_NS_REQUESTER"

// Invocation is a fully-assembled external command.
type Invocation struct {
	// Path is the executable name, resolved via PATH.
	Path string

	// Args is the full argument list, excluding the executable name.
	Args []string

	// Env holds extra KEY=VALUE entries appended to the process environment.
	Env []string
}

// Command assembles the complete bonfire deploy argument list: the fixed
// deployment head, koku-only credential parameters, component selection,
// pass-through extra arguments, the per-component snapshot parameters, and
// the application name as the final positional. Argument order is load-bearing
// for bonfire's later-flag-wins override semantics.
func Command(cfg config.Deploy, namespace, requester string, componentOptions []string) Invocation {
	args := []string{
		"deploy",
		"--source", "appsre",
		"--ref-env", cfg.RefEnv,
		"--namespace", namespace,
		"--timeout", strconv.Itoa(cfg.Timeout),
		"--optional-deps-method", cfg.OptionalDepsMethod,
		"--frontends", cfg.Frontends,
		"--set-parameter", "rbac/MIN_REPLICAS=1",
	}

	args = append(args, credentialParameters(cfg)...)

	for _, component := range strings.Fields(cfg.Components) {
		args = append(args, "--component", component)
	}
	for _, component := range strings.Fields(cfg.ComponentsWithResources) {
		args = append(args, "--no-remove-resources", component)
	}

	args = append(args, strings.Fields(cfg.ExtraArgs)...)
	args = append(args, componentOptions...)
	args = append(args, cfg.AppName)

	return Invocation{
		Path: Binary,
		Args: args,
		Env:  []string{nsRequesterEnv + "=" + requester},
	}
}

// credentialParameters emits the ephemeral cloud credential parameters that
// only the koku application consumes. Values are forwarded as-is, empty or not.
func credentialParameters(cfg config.Deploy) []string {
	if cfg.AppName != "koku" {
		return nil
	}
	return []string{
		"--set-parameter", fmt.Sprintf("koku/AWS_CREDENTIALS_EPH=%s", cfg.Credentials.AWS),
		"--set-parameter", fmt.Sprintf("koku/GCP_CREDENTIALS_EPH=%s", cfg.Credentials.GCP),
		"--set-parameter", fmt.Sprintf("koku/OCI_CREDENTIALS_EPH=%s", cfg.Credentials.OCI),
		"--set-parameter", fmt.Sprintf("koku/OCI_CONFIG_EPH=%s", cfg.Credentials.OCIConfig),
	}
}

// String renders the invocation as a single shell-style line, for --dry-run
// output and logging. No quoting is applied.
func (i Invocation) String() string {
	return i.Path + " " + strings.Join(i.Args, " ")
}
