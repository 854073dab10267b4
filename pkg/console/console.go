package console

import (
	"fmt"
	"io"
	"os"

	"github.com/diillson/mawsh-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
// Print* write to out (the generated script); Log* and Status write to logOut.
type Console struct {
	out    io.Writer
	logOut io.Writer
	quiet  bool

	info    *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	error   *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
}

// NewConsole cria um novo Console escrevendo em stdout e registrando logs em stderr.
func NewConsole() *Console {
	return NewConsoleWithWriters(os.Stdout, os.Stderr)
}

// NewConsoleWithWriters cria um Console com destinos explícitos.
func NewConsoleWithWriters(out, logOut io.Writer) *Console {
	return &Console{
		out:     out,
		logOut:  logOut,
		info:    pterm.Info.WithWriter(logOut),
		warning: pterm.Warning.WithWriter(logOut),
		error:   pterm.Error.WithWriter(logOut),
		success: pterm.Success.WithWriter(logOut),
	}
}

// SetQuiet suprime mensagens de informação, sucesso e o spinner de status.
func (c *Console) SetQuiet(quiet bool) {
	c.quiet = quiet
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	if c.quiet {
		return
	}
	c.info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	c.warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	c.error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	if c.quiet {
		return
	}
	c.success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	if c.quiet {
		return &statusHandle{}
	}
	spinner, _ := pterm.DefaultSpinner.
		WithWriter(c.logOut).
		WithRemoveWhenDone(true).
		Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}
