package types

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestConfigPrecedence(t *testing.T) {
	file := &Config{
		Repository:   "org/accounts",
		TokenFile:    "/etc/mawsh/token",
		RoleSuffixes: []string{"viewonly"},
		Timeout:      5,
	}
	args := &CLIArgs{GitHubToken: "/tmp/token"}

	got := DefaultConfig().Merge(file).ApplyArgs(args)

	if got.Repository != "org/accounts" {
		t.Errorf("file should override default repository, got %q", got.Repository)
	}
	if got.TokenFile != "/tmp/token" {
		t.Errorf("flag should override file token, got %q", got.TokenFile)
	}
	if got.FilePath != "accounts.json" {
		t.Errorf("unset fields keep their default, got %q", got.FilePath)
	}
	if !reflect.DeepEqual(got.RoleSuffixes, []string{"viewonly"}) {
		t.Errorf("role suffixes = %v", got.RoleSuffixes)
	}
	if !reflect.DeepEqual(got.Actions, []string{"exec", "login", "role-arn"}) {
		t.Errorf("actions = %v", got.Actions)
	}
	if got.Timeout != 5 {
		t.Errorf("timeout = %d", got.Timeout)
	}
	if got.Source != SourceGitHub {
		t.Errorf("source = %q", got.Source)
	}
}

func TestConfigMerge_DoesNotAlias(t *testing.T) {
	file := &Config{Actions: []string{"exec"}}
	merged := DefaultConfig().Merge(file)

	file.Actions[0] = "changed"
	if merged.Actions[0] != "exec" {
		t.Errorf("merged config shares the source slice")
	}

	if got := DefaultConfig().Merge(nil); !reflect.DeepEqual(got, DefaultConfig()) {
		t.Errorf("merging nil must be a no-op")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "s3 ok", mutate: func(c *Config) { c.Source = SourceS3; c.S3Bucket = "b" }},
		{name: "s3 without bucket", mutate: func(c *Config) { c.Source = SourceS3 }, wantErr: "s3_bucket"},
		{name: "unknown source", mutate: func(c *Config) { c.Source = "gitlab" }, wantErr: "unsupported source"},
		{name: "github without repository", mutate: func(c *Config) { c.Repository = "" }, wantErr: "repository"},
		{name: "quoting", mutate: func(c *Config) { c.Quoting = "html" }, wantErr: "quoting"},
		{name: "no suffixes", mutate: func(c *Config) { c.RoleSuffixes = nil }, wantErr: "role_suffixes"},
		{name: "no actions", mutate: func(c *Config) { c.Actions = []string{} }, wantErr: "actions"},
		{name: "blank action", mutate: func(c *Config) { c.Actions = []string{"exec", " "} }, wantErr: "empty names"},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -1 }, wantErr: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestErrorKinds(t *testing.T) {
	cred := &CredentialReadError{Path: "/x", Err: os.ErrNotExist}
	if !errors.Is(cred, ErrCredentialRead) || !errors.Is(cred, os.ErrNotExist) {
		t.Errorf("credential error must match both its kind and cause")
	}

	dl := &DownloadConfigError{Source: "https://api/accounts.json", StatusCode: 404}
	if !errors.Is(dl, ErrDownloadConfig) {
		t.Errorf("download error must match ErrDownloadConfig")
	}
	if !strings.Contains(dl.Error(), "error during download of https://api/accounts.json") || !strings.Contains(dl.Error(), "404") {
		t.Errorf("unexpected message %q", dl.Error())
	}

	out := &OutputWriteError{Path: "mawsh.sh", Err: os.ErrPermission}
	if !errors.Is(out, ErrOutputWrite) || !errors.Is(out, os.ErrPermission) {
		t.Errorf("output error must match both its kind and cause")
	}

	if !errors.Is(&InvalidProfileError{Profile: "p", Reason: "r"}, ErrInvalidProfile) {
		t.Errorf("invalid profile error must match ErrInvalidProfile")
	}
	if !errors.Is(&MalformedConfigError{Err: errors.New("x")}, ErrMalformedConfig) {
		t.Errorf("malformed error must match ErrMalformedConfig")
	}
}
