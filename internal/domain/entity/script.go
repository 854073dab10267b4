package entity

import "strings"

// Nomes das seções do script gerado.
const (
	SectionShebang    = "shebang"
	SectionUsage      = "usage"
	SectionHelp       = "help"
	SectionLookup     = "lookup"
	SectionDispatcher = "dispatcher"
)

// ScriptSection is one named block of shell source.
type ScriptSection struct {
	Name string
	Body string
}

// GeneratedScript is the rendered script as an ordered list of sections.
type GeneratedScript struct {
	Sections []ScriptSection
}

// String joins all sections with a blank line between them.
func (s GeneratedScript) String() string {
	bodies := make([]string, len(s.Sections))
	for i, section := range s.Sections {
		bodies[i] = section.Body
	}
	return strings.Join(bodies, "\n\n")
}

// Section returns the body of the named section.
func (s GeneratedScript) Section(name string) (string, bool) {
	for _, section := range s.Sections {
		if section.Name == name {
			return section.Body, true
		}
	}
	return "", false
}
