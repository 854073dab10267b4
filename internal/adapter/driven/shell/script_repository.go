package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/diillson/mawsh-go/internal/domain/entity"
	"github.com/diillson/mawsh-go/internal/domain/repository"
	"github.com/diillson/mawsh-go/internal/shared/types"
)

const scriptMode = 0o755

// ScriptRepositoryImpl implementa o ScriptRepository sobre o sistema de arquivos local.
type ScriptRepositoryImpl struct {
	dir    string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewScriptRepository cria um ScriptRepository. Relative script paths are
// resolved against dir; an empty dir means the working directory.
func NewScriptRepository(dir string, stdin io.Reader, stdout, stderr io.Writer) repository.ScriptRepository {
	return &ScriptRepositoryImpl{
		dir:    dir,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

func (r *ScriptRepositoryImpl) resolve(path string) (string, error) {
	if !filepath.IsAbs(path) && r.dir != "" {
		path = filepath.Join(r.dir, path)
	}
	return filepath.Abs(path)
}

// WriteScript writes the script with a trailing newline and makes it executable.
// It returns the absolute path written.
func (r *ScriptRepositoryImpl) WriteScript(path string, script entity.GeneratedScript) (string, error) {
	abs, err := r.resolve(path)
	if err != nil {
		return "", &types.OutputWriteError{Path: path, Err: err}
	}

	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, scriptMode)
	if err != nil {
		return "", &types.OutputWriteError{Path: abs, Err: err}
	}

	if _, err := io.WriteString(f, script.String()+"\n"); err != nil {
		f.Close()
		return "", &types.OutputWriteError{Path: abs, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &types.OutputWriteError{Path: abs, Err: err}
	}

	// OpenFile only applies the mode on creation.
	if err := os.Chmod(abs, scriptMode); err != nil {
		return "", &types.OutputWriteError{Path: abs, Err: err}
	}

	return abs, nil
}

// ExecuteScript runs the script with args, wiring the repository's stdio to it.
func (r *ScriptRepositoryImpl) ExecuteScript(ctx context.Context, path string, args []string) error {
	abs, err := r.resolve(path)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, abs, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return &types.ScriptExitError{Path: abs, ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to execute %s: %w", abs, err)
	}

	return nil
}
