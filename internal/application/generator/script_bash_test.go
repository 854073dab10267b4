package generator

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diillson/mawsh-go/internal/domain/entity"
	"github.com/diillson/mawsh-go/internal/shared/types"
)

// requireBash returns a bash with associative array support or skips the test.
func requireBash(t *testing.T) string {
	t.Helper()
	bash, err := exec.LookPath("bash")
	if err != nil {
		t.Skip("bash not found in PATH")
	}
	if err := exec.Command(bash, "-c", "declare -A m=([k]=v)").Run(); err != nil {
		t.Skip("bash without associative arrays")
	}
	return bash
}

func writeScript(t *testing.T, script entity.GeneratedScript) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mawsh.sh")
	if err := os.WriteFile(path, []byte(script.String()+"\n"), 0o600); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func runBash(t *testing.T, bash string, args ...string) string {
	t.Helper()
	out, err := exec.Command(bash, args...).Output()
	if err != nil {
		t.Fatalf("bash %v: %v (output %q)", args, err, out)
	}
	return string(out)
}

// roleArn sources the script with the dispatcher output discarded and calls role_arn.
func roleArn(t *testing.T, bash, path, profile string) string {
	t.Helper()
	return runBash(t, bash, "-c", `source "$1" >/dev/null; role_arn "$2"`, "mawsh", path, profile)
}

func TestScript_RoleArnUnderBash(t *testing.T) {
	bash := requireBash(t)

	tests := []struct {
		name     string
		quoting  string
		profiles []entity.Profile
		missing  string
	}{
		{
			name:    "verbatim",
			quoting: types.QuotingNone,
			profiles: []entity.Profile{
				{Name: "prod", Account: "111111111111"},
				{Name: "dev", Account: "222222222222"},
				{Name: "prod-eu_1", Account: "333333333333"},
			},
			missing: "staging",
		},
		{
			name:    "shell quoted",
			quoting: types.QuotingShell,
			profiles: []entity.Profile{
				{Name: "prod", Account: "111111111111"},
				{Name: "bad]name", Account: "222222222222"},
				{Name: "with space", Account: "1111  2222"},
				{Name: "it's", Account: "333333333333"},
				{Name: "subst", Account: "$(echo injected)"},
				{Name: "x\nEOF\necho INJECTED\ncat <<EOF", Account: "444444444444"},
			},
			missing: "staging",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := types.DefaultConfig()
			cfg.Quoting = tt.quoting
			path := writeScript(t, New(cfg).Generate(entity.NewProfileMapping(tt.profiles...)))

			for _, p := range tt.profiles {
				if got := roleArn(t, bash, path, p.Name); got != p.Account+"\n" {
					t.Errorf("role_arn %q = %q, want %q", p.Name, got, p.Account+"\n")
				}
			}
			if got := roleArn(t, bash, path, tt.missing); got != "\n" {
				t.Errorf("role_arn %q = %q, want an empty line", tt.missing, got)
			}
		})
	}
}

func TestScript_DispatcherUnderBash(t *testing.T) {
	bash := requireBash(t)
	path := writeScript(t, New(types.DefaultConfig()).Generate(prodDev()))

	for _, action := range []string{"exec", "login", "role-arn"} {
		if got := runBash(t, bash, path, action, "prod"); got != action+"\n" {
			t.Errorf("%s: got %q", action, got)
		}
	}

	help := runBash(t, bash, path, "--help")
	if !strings.Contains(help, "profiles:\n  - dev\n  - prod\n\npositional arguments:") {
		t.Errorf("unexpected help output:\n%s", help)
	}

	usage := runBash(t, bash, path, "unknown")
	if !strings.HasPrefix(usage, "usage: mawsh ") || strings.Contains(usage, "profiles:") {
		t.Errorf("unexpected usage output:\n%s", usage)
	}
}

func TestScript_ShellQuotedHelpCannotBeHijacked(t *testing.T) {
	bash := requireBash(t)

	cfg := types.DefaultConfig()
	cfg.Quoting = types.QuotingShell
	mapping := entity.NewProfileMapping(
		entity.Profile{Name: "x\nEOF\necho INJECTED\ncat <<EOF", Account: "111111111111"},
		entity.Profile{Name: "dev", Account: "222222222222"},
	)
	path := writeScript(t, New(cfg).Generate(mapping))

	help := runBash(t, bash, path, "--help")
	for _, line := range strings.Split(help, "\n") {
		if line == "INJECTED" {
			t.Fatalf("profile name was executed as code:\n%s", help)
		}
	}
	if !strings.Contains(help, "profiles:\n  - dev\n  - x\nEOF\necho INJECTED\ncat <<EOF\n\npositional arguments:") {
		t.Errorf("profile names should be printed literally:\n%s", help)
	}
}

func TestHelpBlock_ShellModeMatchesVerbatimOutput(t *testing.T) {
	bash := requireBash(t)

	shellCfg := types.DefaultConfig()
	shellCfg.Quoting = types.QuotingShell

	for _, mapping := range []entity.ProfileMapping{prodDev(), entity.NewProfileMapping()} {
		verbatim := runBash(t, bash, writeScript(t, New(types.DefaultConfig()).Generate(mapping)), "-h")
		quoted := runBash(t, bash, writeScript(t, New(shellCfg).Generate(mapping)), "-h")
		if verbatim != quoted {
			t.Errorf("help output differs between quoting modes:\n--- none ---\n%s\n--- shell ---\n%s", verbatim, quoted)
		}
	}
}
