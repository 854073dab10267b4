package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diillson/mawsh-go/internal/domain/entity"
	"github.com/diillson/mawsh-go/internal/shared/types"
)

func script(body string) entity.GeneratedScript {
	return entity.GeneratedScript{Sections: []entity.ScriptSection{
		{Name: entity.SectionShebang, Body: "#!/bin/sh"},
		{Name: entity.SectionDispatcher, Body: body},
	}}
}

func TestWriteScript(t *testing.T) {
	dir := t.TempDir()
	repo := NewScriptRepository(dir, nil, nil, nil)

	path, err := repo.WriteScript("mawsh.sh", script(`echo "$@"`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "mawsh.sh") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "#!/bin/sh\n\necho \"$@\"\n" {
		t.Errorf("contents = %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("script is not executable: %v", info.Mode())
	}
}

func TestWriteScript_OverwritesAndRestoresMode(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "mawsh.sh")
	if err := os.WriteFile(existing, []byte("old contents that are longer than the new ones"), 0o600); err != nil {
		t.Fatal(err)
	}

	repo := NewScriptRepository(dir, nil, nil, nil)
	if _, err := repo.WriteScript("mawsh.sh", script("true")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(existing)
	if string(data) != "#!/bin/sh\n\ntrue\n" {
		t.Errorf("file not truncated: %q", data)
	}
	info, _ := os.Stat(existing)
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestWriteScript_Error(t *testing.T) {
	repo := NewScriptRepository(filepath.Join(t.TempDir(), "missing", "dir"), nil, nil, nil)

	_, err := repo.WriteScript("mawsh.sh", script("true"))
	if !errors.Is(err, types.ErrOutputWrite) {
		t.Fatalf("expected output write error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected cause to be kept, got %v", err)
	}
}

func TestExecuteScript_ForwardsArgs(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	repo := NewScriptRepository(dir, strings.NewReader(""), &stdout, &stderr)

	if _, err := repo.WriteScript("mawsh.sh", script(`echo "$1:$2"`)); err != nil {
		t.Fatal(err)
	}

	if err := repo.ExecuteScript(context.Background(), "mawsh.sh", []string{"role-arn", "prod"}); err != nil {
		t.Fatalf("unexpected error: %v (stderr %q)", err, stderr.String())
	}
	if got := stdout.String(); got != "role-arn:prod\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestExecuteScript_ExitCode(t *testing.T) {
	dir := t.TempDir()
	repo := NewScriptRepository(dir, nil, &bytes.Buffer{}, &bytes.Buffer{})

	if _, err := repo.WriteScript("mawsh.sh", script("exit 3")); err != nil {
		t.Fatal(err)
	}

	err := repo.ExecuteScript(context.Background(), "mawsh.sh", nil)
	var exitErr *types.ScriptExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ScriptExitError, got %v", err)
	}
	if exitErr.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", exitErr.ExitCode)
	}
}

func TestExecuteScript_Missing(t *testing.T) {
	repo := NewScriptRepository(t.TempDir(), nil, nil, nil)

	err := repo.ExecuteScript(context.Background(), "nope.sh", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var exitErr *types.ScriptExitError
	if errors.As(err, &exitErr) {
		t.Errorf("a missing script is not an exit status: %v", err)
	}
}
