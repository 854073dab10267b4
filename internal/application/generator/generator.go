// Package generator renders a profile mapping into a self-contained bash script.
package generator

import (
	"fmt"
	"strings"

	"github.com/diillson/mawsh-go/internal/domain/entity"
	"github.com/diillson/mawsh-go/internal/shared/types"
)

// Generator renders scripts for one set of settings. It holds no mutable state.
type Generator struct {
	programName string
	vocabulary  entity.Vocabulary
	quote       Quoter
	heredoc     string
	quoted      bool
}

// New creates a Generator from the settings.
func New(cfg types.Config) *Generator {
	g := &Generator{
		programName: cfg.ProgramName,
		vocabulary:  entity.NewVocabulary(cfg.RoleSuffixes, cfg.Actions),
		quote:       QuoterFor(cfg.Quoting),
		heredoc:     "EOF",
	}
	if cfg.Quoting == types.QuotingShell {
		g.heredoc = "'EOF'"
		g.quoted = true
	}
	return g
}

// Generate produces the whole script: shebang, usage, help, lookup table and dispatcher.
func (g *Generator) Generate(mapping entity.ProfileMapping) entity.GeneratedScript {
	return entity.GeneratedScript{
		Sections: []entity.ScriptSection{
			{Name: entity.SectionShebang, Body: shebang},
			{Name: entity.SectionUsage, Body: g.UsageBlock()},
			{Name: entity.SectionHelp, Body: g.HelpBlock(mapping)},
			{Name: entity.SectionLookup, Body: g.LookupBlock(mapping)},
			{Name: entity.SectionDispatcher, Body: g.DispatcherBlock()},
		},
	}
}

// Synopsis returns the one-line usage text.
func (g *Generator) Synopsis() string {
	return fmt.Sprintf("usage: %s [-h] [-G FILEPATH] [-r %s] [%s] profile",
		g.programName,
		g.vocabulary.JoinedRoleSuffixes(),
		g.vocabulary.JoinedActions(),
	)
}

// UsageBlock renders the usage() function.
func (g *Generator) UsageBlock() string {
	return render(usageTemplate, usageData{
		Heredoc:  g.heredoc,
		Synopsis: g.Synopsis(),
	})
}

// HelpBlock renders the help() function. Profiles are listed sorted.
//
// With shell quoting the names never appear inside the heredoc: they are
// printf arguments, so a name holding a newline and EOF cannot end it early.
func (g *Generator) HelpBlock(mapping entity.ProfileMapping) string {
	names := mapping.SortedNames()

	var quotedNames string
	if g.quoted && len(names) > 0 {
		quoted := make([]string, len(names))
		for i, name := range names {
			quoted[i] = g.quote(name)
		}
		quotedNames = strings.Join(quoted, " ")
	}

	return render(helpTemplate, helpData{
		Heredoc:           g.heredoc,
		Synopsis:          g.Synopsis(),
		Profiles:          names,
		QuotedProfiles:    quotedNames,
		Actions:           g.vocabulary.JoinedActions(),
		RoleSuffixes:      g.vocabulary.JoinedRoleSuffixes(),
		DefaultRoleSuffix: string(g.vocabulary.DefaultRoleSuffix()),
	})
}

// LookupBlock renders role_arn() with the mapping as an associative array,
// entries in mapping order.
func (g *Generator) LookupBlock(mapping entity.ProfileMapping) string {
	value := "${P2A[$profile]}"
	if g.quoted {
		value = `"` + value + `"`
	}
	return render(lookupTemplate, lookupData{Entries: g.associativeArray(mapping), Value: value})
}

// DispatcherBlock renders the top-level case statement over $1.
func (g *Generator) DispatcherBlock() string {
	actions := g.vocabulary.Actions()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return render(dispatcherTemplate, dispatcherData{Actions: names})
}

func (g *Generator) associativeArray(mapping entity.ProfileMapping) string {
	entries := mapping.Entries()
	if len(entries) == 0 {
		return ""
	}

	pairs := make([]string, len(entries))
	for i, p := range entries {
		pairs[i] = fmt.Sprintf("[%s]=%s", g.quote(p.Name), g.quote(p.Account))
	}
	return " " + strings.Join(pairs, " ") + " "
}
