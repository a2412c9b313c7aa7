// Package config provides process-start configuration for snapdeploy.
//
// The core packages (snapshot, params, bonfire) never read ambient state; the
// environment is read exactly once here and passed down by value.
package config

// Default values matching the historical deploy script behavior.
const (
	DefaultTimeout          = 900
	DefaultRefEnv           = "insights-production"
	DefaultFrontends        = "false"
	DefaultOptionalDeps     = "hybrid"
	DefaultGitHubOwner      = "project-koku"
	DefaultGitHubRepository = "koku"
)

// Credentials holds the ephemeral cloud credential blobs forwarded to koku
// deployments. They are pass-through values and are never validated or logged.
type Credentials struct {
	AWS       string
	GCP       string
	OCI       string
	OCIConfig string
}

// Deploy is the full deployment context, populated once at process start.
type Deploy struct {
	// Snapshot is the raw snapshot JSON blob. Env: SNAPSHOT.
	Snapshot string

	// PRNumber selects the pr-<number>- tag prefix when set. Env: PR_NUMBER.
	PRNumber string

	// ComponentName uniformly renames every component in the emitted
	// parameters. Env: BONFIRE_COMPONENT_NAME.
	ComponentName string

	// AppName is the application bonfire deploys. Env: APP_NAME.
	AppName string

	// Timeout is the bonfire deploy timeout in seconds. Env: DEPLOY_TIMEOUT.
	Timeout int

	// RefEnv is the bonfire reference environment. Env: REF_ENV.
	RefEnv string

	// Frontends is passed verbatim to bonfire --frontends. Env: DEPLOY_FRONTENDS.
	Frontends string

	// OptionalDepsMethod is passed to --optional-deps-method.
	// Env: OPTIONAL_DEPS_METHOD.
	OptionalDepsMethod string

	// ExtraArgs holds whitespace-separated extra bonfire arguments, passed
	// through unvalidated. Env: EXTRA_DEPLOY_ARGS.
	ExtraArgs string

	// Components lists components to deploy, whitespace-separated.
	// Env: COMPONENTS.
	Components string

	// ComponentsWithResources lists components whose resource requests are
	// kept, whitespace-separated. Env: COMPONENTS_W_RESOURCES.
	ComponentsWithResources string

	// Credentials holds the koku-only ephemeral credentials.
	Credentials Credentials
}

// HasSnapshot reports whether a snapshot blob was supplied.
func (d Deploy) HasSnapshot() bool {
	return d.Snapshot != ""
}
