package entity

import "strings"

// RoleSuffix selects which IAM role variant to target in an account.
type RoleSuffix string

// Action is an operation understood by the generated script's dispatcher.
type Action string

// Vocabulary holds the role suffixes and actions baked into a script, in declared order.
type Vocabulary struct {
	roleSuffixes []RoleSuffix
	actions      []Action
}

// NewVocabulary copies the given names into a Vocabulary.
func NewVocabulary(roleSuffixes, actions []string) Vocabulary {
	v := Vocabulary{
		roleSuffixes: make([]RoleSuffix, 0, len(roleSuffixes)),
		actions:      make([]Action, 0, len(actions)),
	}
	for _, s := range roleSuffixes {
		v.roleSuffixes = append(v.roleSuffixes, RoleSuffix(s))
	}
	for _, a := range actions {
		v.actions = append(v.actions, Action(a))
	}
	return v
}

// RoleSuffixes returns the suffixes in declared order.
func (v Vocabulary) RoleSuffixes() []RoleSuffix {
	return append([]RoleSuffix(nil), v.roleSuffixes...)
}

// Actions returns the actions in declared order.
func (v Vocabulary) Actions() []Action {
	return append([]Action(nil), v.actions...)
}

// DefaultRoleSuffix is the first declared suffix.
func (v Vocabulary) DefaultRoleSuffix() RoleSuffix {
	if len(v.roleSuffixes) == 0 {
		return ""
	}
	return v.roleSuffixes[0]
}

// JoinedRoleSuffixes returns "admin,readonly,...".
func (v Vocabulary) JoinedRoleSuffixes() string {
	parts := make([]string, len(v.roleSuffixes))
	for i, s := range v.roleSuffixes {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}

// JoinedActions returns "exec|login|...".
func (v Vocabulary) JoinedActions() string {
	parts := make([]string, len(v.actions))
	for i, a := range v.actions {
		parts[i] = string(a)
	}
	return strings.Join(parts, "|")
}
