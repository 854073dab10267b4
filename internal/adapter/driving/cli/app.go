package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/diillson/mawsh-go/pkg/version"

	"github.com/diillson/mawsh-go/internal/adapter/driven/aws"
	"github.com/diillson/mawsh-go/internal/adapter/driven/github"
	"github.com/diillson/mawsh-go/internal/adapter/driven/shell"
	"github.com/diillson/mawsh-go/internal/application/generator"
	"github.com/diillson/mawsh-go/internal/application/usecase"
	"github.com/diillson/mawsh-go/internal/domain/repository"
	"github.com/diillson/mawsh-go/internal/shared/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// quieter é implementado por consoles que podem suprimir mensagens informativas.
type quieter interface {
	SetQuiet(quiet bool)
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	version    string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// args replaces os.Args[1:] when set; forwarded is what followed -x.
	args      []string
	forwarded []string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, console types.ConsoleInterface) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,
		console:    console,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "mawsh [flags] [-x [script args...]]",
		Short: "Generate a bash script to look up AWS IAM roles for named profiles",
		Long: `mawsh downloads the profile → account mapping from its remote source and
renders it into a self-contained bash script.

Without --execute the script is printed to stdout. With --execute it is
written to disk and run, and every argument after the flags is forwarded.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flags stop at the first positional argument so script options pass through.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().BoolP("execute", "x", false, "Write the script to disk and run it, forwarding the remaining arguments")
	rootCmd.Flags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON settings file (default: ~/.config/mawsh/config.toml if present)")
	rootCmd.Flags().StringP("github-token", "G", "", "Path to the file holding the GitHub token (default: ~/.config/mawsh/GITHUB_TOKEN)")
	rootCmd.Flags().StringP("source", "s", "", "Where to fetch the profile mapping from: github or s3")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress the banner and informational messages")
	rootCmd.Flags().BoolP("version", "v", false, "Print the version, check for a newer release and exit")

	app.rootCmd = rootCmd
	return app
}

// SetIO redireciona a entrada e as saídas usadas pelo script executado.
func (app *CLIApp) SetIO(stdin io.Reader, stdout, stderr io.Writer) {
	app.stdin = stdin
	app.stdout = stdout
	app.stderr = stderr
	app.rootCmd.SetOut(stdout)
	app.rootCmd.SetErr(stderr)
}

// SetArgs overrides os.Args[1:] for the next Execute.
func (app *CLIApp) SetArgs(args []string) {
	app.args = args
}

// Execute runs the CLI application. SIGINT and SIGTERM cancel the run.
func (app *CLIApp) Execute() error {
	args := app.args
	if args == nil {
		args = os.Args[1:]
	}
	own, forwarded := app.splitForwarded(args)
	app.forwarded = forwarded
	app.rootCmd.SetArgs(own)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.rootCmd.ExecuteContext(ctx)
}

// splitForwarded cuts args right after the first -x/--execute. Everything past
// it belongs to the generated script, including -h and unknown flags, and is
// never parsed by mawsh.
func (app *CLIApp) splitForwarded(args []string) (own, forwarded []string) {
	flags := app.rootCmd.Flags()
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-x" || arg == "--execute":
			return args[:i+1], args[i+1:]
		case arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-"):
			// Flag parsing stops here anyway.
			return args, nil
		case strings.HasPrefix(arg, "--"):
			if !strings.Contains(arg, "=") && takesValue(flags.Lookup(arg[2:])) {
				i++
			}
		case len(arg) == 2:
			if takesValue(flags.ShorthandLookup(arg[1:])) {
				i++
			}
		}
	}
	return args, nil
}

// takesValue reports whether f consumes the next argument as its value.
func takesValue(f *pflag.Flag) bool {
	return f != nil && f.NoOptDefVal == ""
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command, args []string) *types.CLIArgs {
	execute, _ := cmd.Flags().GetBool("execute")
	configFile, _ := cmd.Flags().GetString("config-file")
	githubToken, _ := cmd.Flags().GetString("github-token")
	source, _ := cmd.Flags().GetString("source")
	quiet, _ := cmd.Flags().GetBool("quiet")

	scriptArgs := args
	if len(app.forwarded) > 0 {
		scriptArgs = append(append([]string(nil), args...), app.forwarded...)
	}

	return &types.CLIArgs{
		ConfigFile:  configFile,
		GitHubToken: githubToken,
		Source:      source,
		Quiet:       quiet,
		Execute:     execute,
		ScriptArgs:  scriptArgs,
	}
}

// loadConfig resolves settings: defaults, then the settings file, then flags.
func (app *CLIApp) loadConfig(args *types.CLIArgs) (types.Config, error) {
	cfg := types.DefaultConfig()

	path := args.ConfigFile
	if path == "" {
		path = app.configRepo.DefaultConfigFile()
	}
	if path != "" {
		fileCfg, err := app.configRepo.LoadConfigFile(path)
		if err != nil {
			return types.Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
		app.console.LogInfo("Using settings from %s", path)
	}

	cfg = cfg.ApplyArgs(args)

	// Set default directory to current working directory if not specified
	if cfg.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return types.Config{}, err
		}
		cfg.Dir = cwd
	} else {
		absDir, err := filepath.Abs(cfg.Dir)
		if err != nil {
			return types.Config{}, err
		}
		cfg.Dir = absDir
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// newProfileRepository picks the mapping source named in the settings.
func newProfileRepository(cfg types.Config) repository.ProfileRepository {
	if cfg.Source == types.SourceS3 {
		return aws.NewS3ProfileRepository(cfg)
	}
	return github.NewProfileRepository(cfg)
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
		return app.printVersion(cmd)
	}

	cliArgs := app.parseArgs(cmd, args)

	if q, ok := app.console.(quieter); ok {
		q.SetQuiet(cliArgs.Quiet)
	}

	if !cliArgs.Quiet {
		// Exibe o banner de boas-vindas
		displayWelcomeBanner(app.stderr)
	}

	cfg, err := app.loadConfig(cliArgs)
	if err != nil {
		return err
	}

	useCase := usecase.NewScriptUseCase(
		cfg,
		newProfileRepository(cfg),
		shell.NewScriptRepository(cfg.Dir, app.stdin, app.stdout, app.stderr),
		generator.New(cfg),
		app.console,
	)

	return useCase.Run(cmd.Context(), cliArgs)
}

// printVersion imprime a versão e verifica se há um release mais recente.
// It is the only place mawsh talks to the releases API.
func (app *CLIApp) printVersion(cmd *cobra.Command) error {
	fmt.Fprintf(cmd.OutOrStdout(), "mawsh version: %s\n", version.FormatVersion())
	version.CheckLatestVersion(cmd.Context(), app.stderr, app.version)
	return nil
}
