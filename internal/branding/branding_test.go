package branding

import "testing"

func TestIdentity(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "aemx"},
		{"HomeDir", HomeDir(), ".aemx"},
		{"EnvPrefix", EnvPrefix(), "AEMX"},
		{"GitHubRepo", GitHubRepo(), "aem-labs/aemx"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if Description() == "" || DisplayName() == "" {
		t.Error("description and display name should not be empty")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("log_level"); got != "AEMX_LOG_LEVEL" {
		t.Errorf("EnvVar() = %q, want AEMX_LOG_LEVEL", got)
	}
}
