package types

import (
	"fmt"
	"strings"
)

// Fontes suportadas para o mapeamento de perfis.
const (
	SourceGitHub = "github"
	SourceS3     = "s3"
)

// Modos de escape aplicados ao gerar o script.
const (
	QuotingNone  = "none"
	QuotingShell = "shell"
)

// Config represents the application configuration that can be loaded from a file.
// Values are passed by copy into every component; nothing reads them globally.
type Config struct {
	Source         string   `json:"source" yaml:"source" toml:"source"`
	GitHubAPI      string   `json:"github_api" yaml:"github_api" toml:"github_api"`
	Repository     string   `json:"repository" yaml:"repository" toml:"repository"`
	FilePath       string   `json:"file_path" yaml:"file_path" toml:"file_path"`
	MediaType      string   `json:"media_type" yaml:"media_type" toml:"media_type"`
	TokenFile      string   `json:"token_file" yaml:"token_file" toml:"token_file"`
	S3Bucket       string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Key          string   `json:"s3_key" yaml:"s3_key" toml:"s3_key"`
	S3Region       string   `json:"s3_region" yaml:"s3_region" toml:"s3_region"`
	AWSProfile     string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	ProgramName    string   `json:"program_name" yaml:"program_name" toml:"program_name"`
	ScriptName     string   `json:"script_name" yaml:"script_name" toml:"script_name"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
	RoleSuffixes   []string `json:"role_suffixes" yaml:"role_suffixes" toml:"role_suffixes"`
	Actions        []string `json:"actions" yaml:"actions" toml:"actions"`
	Quoting        string   `json:"quoting" yaml:"quoting" toml:"quoting"`
	StrictAccounts bool     `json:"strict_accounts" yaml:"strict_accounts" toml:"strict_accounts"`
	Timeout        int      `json:"timeout" yaml:"timeout" toml:"timeout"`
}

// DefaultConfig returns the settings used when neither a file nor a flag overrides them.
func DefaultConfig() Config {
	return Config{
		Source:       SourceGitHub,
		GitHubAPI:    "https://api.github.com/repos",
		Repository:   "mozilla-it/itsre-accounts",
		FilePath:     "accounts.json",
		MediaType:    "application/vnd.github.v3.raw",
		TokenFile:    "~/.config/mawsh/GITHUB_TOKEN",
		S3Key:        "accounts.json",
		ProgramName:  "mawsh",
		ScriptName:   "mawsh.sh",
		RoleSuffixes: []string{"admin", "readonly", "poweruser", "viewonly"},
		Actions:      []string{"exec", "login", "role-arn"},
		Quoting:      QuotingNone,
	}
}

// Merge returns a copy of c with every non-zero field of o applied on top.
func (c Config) Merge(o *Config) Config {
	if o == nil {
		return c
	}

	setString := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	setString(&c.Source, o.Source)
	setString(&c.GitHubAPI, o.GitHubAPI)
	setString(&c.Repository, o.Repository)
	setString(&c.FilePath, o.FilePath)
	setString(&c.MediaType, o.MediaType)
	setString(&c.TokenFile, o.TokenFile)
	setString(&c.S3Bucket, o.S3Bucket)
	setString(&c.S3Key, o.S3Key)
	setString(&c.S3Region, o.S3Region)
	setString(&c.AWSProfile, o.AWSProfile)
	setString(&c.ProgramName, o.ProgramName)
	setString(&c.ScriptName, o.ScriptName)
	setString(&c.Dir, o.Dir)
	setString(&c.Quoting, o.Quoting)

	if len(o.RoleSuffixes) > 0 {
		c.RoleSuffixes = append([]string(nil), o.RoleSuffixes...)
	}
	if len(o.Actions) > 0 {
		c.Actions = append([]string(nil), o.Actions...)
	}
	if o.StrictAccounts {
		c.StrictAccounts = true
	}
	if o.Timeout > 0 {
		c.Timeout = o.Timeout
	}

	return c
}

// ApplyArgs overrides settings with the values given on the command line.
func (c Config) ApplyArgs(args *CLIArgs) Config {
	if args == nil {
		return c
	}
	return c.Merge(&Config{
		Source:    args.Source,
		TokenFile: args.GitHubToken,
	})
}

// Validate checks the settings before any component is built from them.
func (c Config) Validate() error {
	switch c.Source {
	case SourceGitHub:
		if c.Repository == "" || c.FilePath == "" {
			return fmt.Errorf("github source requires repository and file_path")
		}
	case SourceS3:
		if c.S3Bucket == "" || c.S3Key == "" {
			return fmt.Errorf("s3 source requires s3_bucket and s3_key")
		}
	default:
		return fmt.Errorf("unsupported source: %q (expected %s or %s)", c.Source, SourceGitHub, SourceS3)
	}

	switch c.Quoting {
	case QuotingNone, QuotingShell:
	default:
		return fmt.Errorf("unsupported quoting mode: %q", c.Quoting)
	}

	if len(c.RoleSuffixes) == 0 {
		return fmt.Errorf("role_suffixes must not be empty")
	}
	if len(c.Actions) == 0 {
		return fmt.Errorf("actions must not be empty")
	}
	for _, a := range c.Actions {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("actions must not contain empty names")
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	return nil
}
