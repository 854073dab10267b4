package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/diillson/mawsh-go/internal/adapter/driven/config"
	"github.com/diillson/mawsh-go/internal/adapter/driving/cli"
	"github.com/diillson/mawsh-go/internal/shared/types"
	"github.com/diillson/mawsh-go/pkg/console"
	"github.com/diillson/mawsh-go/pkg/version"
)

func main() {
	// Inicializa os repositórios
	configRepo := config.NewConfigRepository("")
	consoleImpl := console.NewConsole()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, configRepo, consoleImpl)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		// O script executado já reportou seu próprio erro; apenas propaga o código.
		var exitErr *types.ScriptExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
