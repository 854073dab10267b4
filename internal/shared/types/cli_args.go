package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	GitHubToken string
	Source      string
	Quiet       bool
	Execute     bool
	ScriptArgs  []string
}
