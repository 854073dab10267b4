package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/diillson/mawsh-go/internal/shared/types"
)

// Profile is a single profile name → account identifier entry.
type Profile struct {
	Name    string `json:"name"`
	Account string `json:"account"`
}

// ProfileMapping is the authoritative profile → account table. Entries keep the
// order in which they first appeared in the source document.
type ProfileMapping struct {
	order    []string
	accounts map[string]string
}

// NewProfileMapping builds a mapping from entries. A repeated name keeps its
// first position and takes the last account.
func NewProfileMapping(profiles ...Profile) ProfileMapping {
	m := ProfileMapping{accounts: make(map[string]string, len(profiles))}
	for _, p := range profiles {
		m.set(p.Name, p.Account)
	}
	return m
}

func (m *ProfileMapping) set(name, account string) {
	if _, exists := m.accounts[name]; !exists {
		m.order = append(m.order, name)
	}
	m.accounts[name] = account
}

// Len returns the number of profiles.
func (m ProfileMapping) Len() int {
	return len(m.order)
}

// Account returns the account identifier for a profile.
func (m ProfileMapping) Account(name string) (string, bool) {
	account, ok := m.accounts[name]
	return account, ok
}

// Entries returns the profiles in mapping order.
func (m ProfileMapping) Entries() []Profile {
	entries := make([]Profile, 0, len(m.order))
	for _, name := range m.order {
		entries = append(entries, Profile{Name: name, Account: m.accounts[name]})
	}
	return entries
}

// SortedNames returns the profile names in lexicographic order.
func (m ProfileMapping) SortedNames() []string {
	names := append([]string(nil), m.order...)
	sort.Strings(names)
	return names
}

// NonStandardAccounts lists, sorted by name, the profiles whose account is not
// a 12-digit AWS account number.
func (m ProfileMapping) NonStandardAccounts() []string {
	var names []string
	for _, name := range m.SortedNames() {
		if !IsAccountID(m.accounts[name]) {
			names = append(names, name)
		}
	}
	return names
}

// IsAccountID reports whether s looks like an AWS account number.
func IsAccountID(s string) bool {
	if len(s) != 12 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// DecodeProfileMapping parses a JSON object of string values into a mapping.
//
// Anything that is not a single JSON object yields a MalformedConfigError.
// Non-string values and empty keys yield an InvalidProfileError.
func DecodeProfileMapping(data []byte) (ProfileMapping, error) {
	if !json.Valid(data) {
		// Re-run the decoder only to get a precise syntax error.
		var probe interface{}
		err := json.Unmarshal(data, &probe)
		if err == nil {
			err = fmt.Errorf("invalid JSON document")
		}
		return ProfileMapping{}, &types.MalformedConfigError{Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return ProfileMapping{}, &types.MalformedConfigError{Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ProfileMapping{}, &types.MalformedConfigError{
			Err: fmt.Errorf("expected a JSON object, got %s", describeToken(tok)),
		}
	}

	mapping := ProfileMapping{accounts: make(map[string]string)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return ProfileMapping{}, &types.MalformedConfigError{Err: err}
		}
		name, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return ProfileMapping{}, &types.MalformedConfigError{Err: err}
		}

		if name == "" {
			return ProfileMapping{}, &types.InvalidProfileError{Profile: name, Reason: "profile name must not be empty"}
		}

		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '"' {
			return ProfileMapping{}, &types.InvalidProfileError{
				Profile: name,
				Reason:  fmt.Sprintf("account must be a string, got %s", raw),
			}
		}

		var account string
		if err := json.Unmarshal(raw, &account); err != nil {
			return ProfileMapping{}, &types.MalformedConfigError{Err: err}
		}

		mapping.set(name, account)
	}

	return mapping, nil
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "an array"
		}
		return v.String()
	case string:
		return "a string"
	case float64, json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
