package cli

import (
	"fmt"
	"io"

	"github.com/diillson/mawsh-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
// Vai para w (stderr) para não se misturar ao script impresso em stdout.
func displayWelcomeBanner(w io.Writer) {
	banner := `
   _ __ ___   __ ___      _____| |__
  | '_ ` + "`" + ` _ \ / _` + "`" + ` \ \ /\ / / __| '_ \
  | | | | | | (_| |\ V  V /\__ \ | | |
  |_| |_| |_|\__,_| \_/\_/ |___/_| |_|
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintln(w, red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Fprintln(w, blue(fmt.Sprintf("mawsh (v%s)", formattedVersion)))
}
