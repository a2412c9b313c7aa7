package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Loader reads the deployment context from the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader bound to the deployment environment variables.
// The variable names are bare (no prefix) for compatibility with the pipeline
// definitions that have always exported SNAPSHOT, PR_NUMBER and friends.
func NewLoader() *Loader {
	v := viper.New()

	_ = v.BindEnv("snapshot", "SNAPSHOT")
	_ = v.BindEnv("pr_number", "PR_NUMBER")
	_ = v.BindEnv("bonfire_component_name", "BONFIRE_COMPONENT_NAME")
	_ = v.BindEnv("app_name", "APP_NAME")
	_ = v.BindEnv("deploy_timeout", "DEPLOY_TIMEOUT")
	_ = v.BindEnv("ref_env", "REF_ENV")
	_ = v.BindEnv("deploy_frontends", "DEPLOY_FRONTENDS")
	_ = v.BindEnv("optional_deps_method", "OPTIONAL_DEPS_METHOD")
	_ = v.BindEnv("extra_deploy_args", "EXTRA_DEPLOY_ARGS")
	_ = v.BindEnv("components", "COMPONENTS")
	_ = v.BindEnv("components_w_resources", "COMPONENTS_W_RESOURCES")
	_ = v.BindEnv("aws_credentials_eph", "AWS_CREDENTIALS_EPH")
	_ = v.BindEnv("gcp_credentials_eph", "GCP_CREDENTIALS_EPH")
	_ = v.BindEnv("oci_credentials_eph", "OCI_CREDENTIALS_EPH")
	_ = v.BindEnv("oci_config_eph", "OCI_CONFIG_EPH")

	v.SetDefault("deploy_timeout", DefaultTimeout)
	v.SetDefault("ref_env", DefaultRefEnv)
	v.SetDefault("deploy_frontends", DefaultFrontends)
	v.SetDefault("optional_deps_method", DefaultOptionalDeps)

	return &Loader{v: v}
}

// Load materializes the deployment context from the bound environment.
func (l *Loader) Load() (*Deploy, error) {
	timeout := l.v.GetInt("deploy_timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("DEPLOY_TIMEOUT must be a positive integer, got %q",
			l.v.GetString("deploy_timeout"))
	}

	return &Deploy{
		Snapshot:                l.v.GetString("snapshot"),
		PRNumber:                l.v.GetString("pr_number"),
		ComponentName:           l.v.GetString("bonfire_component_name"),
		AppName:                 l.v.GetString("app_name"),
		Timeout:                 timeout,
		RefEnv:                  l.v.GetString("ref_env"),
		Frontends:               l.v.GetString("deploy_frontends"),
		OptionalDepsMethod:      l.v.GetString("optional_deps_method"),
		ExtraArgs:               l.v.GetString("extra_deploy_args"),
		Components:              l.v.GetString("components"),
		ComponentsWithResources: l.v.GetString("components_w_resources"),
		Credentials: Credentials{
			AWS:       l.v.GetString("aws_credentials_eph"),
			GCP:       l.v.GetString("gcp_credentials_eph"),
			OCI:       l.v.GetString("oci_credentials_eph"),
			OCIConfig: l.v.GetString("oci_config_eph"),
		},
	}, nil
}

// LoadDeploy is the package-level convenience used by the commands.
func LoadDeploy() (*Deploy, error) {
	return NewLoader().Load()
}
