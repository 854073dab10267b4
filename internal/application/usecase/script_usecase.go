package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/mawsh-go/internal/domain/entity"
	"github.com/diillson/mawsh-go/internal/domain/repository"
	"github.com/diillson/mawsh-go/internal/shared/types"
)

// ScriptGenerator renders a mapping into a script.
type ScriptGenerator interface {
	Generate(mapping entity.ProfileMapping) entity.GeneratedScript
}

// ScriptUseCase fetches the profile mapping, renders it and either prints or runs the result.
type ScriptUseCase struct {
	cfg         types.Config
	profileRepo repository.ProfileRepository
	scriptRepo  repository.ScriptRepository
	generator   ScriptGenerator
	console     types.ConsoleInterface
}

// NewScriptUseCase creates a new script use case.
func NewScriptUseCase(
	cfg types.Config,
	profileRepo repository.ProfileRepository,
	scriptRepo repository.ScriptRepository,
	generator ScriptGenerator,
	console types.ConsoleInterface,
) *ScriptUseCase {
	return &ScriptUseCase{
		cfg:         cfg,
		profileRepo: profileRepo,
		scriptRepo:  scriptRepo,
		generator:   generator,
		console:     console,
	}
}

// LoadProfiles downloads and validates the profile mapping.
func (uc *ScriptUseCase) LoadProfiles(ctx context.Context) (entity.ProfileMapping, error) {
	status := uc.console.Status("Downloading profile mapping...")
	result, err := uc.profileRepo.FetchProfiles(ctx)
	status.Stop()
	if err != nil {
		return entity.ProfileMapping{}, err
	}
	if result == nil {
		return entity.ProfileMapping{}, fmt.Errorf("profile source returned no result")
	}

	if !result.OK() {
		return entity.ProfileMapping{}, &types.DownloadConfigError{
			Source:     result.Source,
			StatusCode: result.StatusCode,
			Body:       result.Body,
		}
	}

	mapping, err := entity.DecodeProfileMapping(result.Body)
	if err != nil {
		return entity.ProfileMapping{}, err
	}

	if odd := mapping.NonStandardAccounts(); len(odd) > 0 {
		if uc.cfg.StrictAccounts {
			account, _ := mapping.Account(odd[0])
			return entity.ProfileMapping{}, &types.InvalidProfileError{
				Profile: odd[0],
				Reason:  "account " + account + " is not a 12-digit AWS account number",
			}
		}
		uc.console.LogWarning("Profiles with non-standard account ids: %s", strings.Join(odd, ", "))
	}

	uc.console.LogInfo("Loaded %d profiles from %s", mapping.Len(), result.Source)
	return mapping, nil
}

// Generate returns the complete script for the current remote mapping.
func (uc *ScriptUseCase) Generate(ctx context.Context) (entity.GeneratedScript, error) {
	mapping, err := uc.LoadProfiles(ctx)
	if err != nil {
		return entity.GeneratedScript{}, err
	}
	return uc.generator.Generate(mapping), nil
}

// Run prints the script, or with args.Execute writes it and runs it with args.ScriptArgs.
func (uc *ScriptUseCase) Run(ctx context.Context, args *types.CLIArgs) error {
	script, err := uc.Generate(ctx)
	if err != nil {
		return err
	}

	if !args.Execute {
		if len(args.ScriptArgs) > 0 {
			uc.console.LogWarning("Ignoring arguments %v: they are only forwarded with --execute", args.ScriptArgs)
		}
		uc.console.Println(script.String())
		return nil
	}

	path, err := uc.scriptRepo.WriteScript(uc.cfg.ScriptName, script)
	if err != nil {
		return err
	}
	uc.console.LogSuccess("Script written to %s", path)

	return uc.scriptRepo.ExecuteScript(ctx, path, args.ScriptArgs)
}
