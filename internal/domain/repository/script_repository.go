package repository

import (
	"context"

	"github.com/diillson/mawsh-go/internal/domain/entity"
)

// ScriptRepository persists a generated script and hands it to the shell.
type ScriptRepository interface {
	WriteScript(path string, script entity.GeneratedScript) (string, error)
	ExecuteScript(ctx context.Context, path string, args []string) error
}
