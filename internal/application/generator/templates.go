package generator

import (
	"strings"
	"text/template"
)

const shebang = "#!/bin/bash"

var usageTemplate = template.Must(template.New("usage").Parse(`function usage() {
    cat <<{{ .Heredoc }}
{{ .Synopsis }}
EOF
}`))

var helpTemplate = template.Must(template.New("help").Parse(`function help() {
    cat <<{{ .Heredoc }}
{{ .Synopsis }}

profiles:{{ if .QuotedProfiles }}
EOF
    printf '  - %s\n' {{ .QuotedProfiles }}
    cat <<{{ .Heredoc }}{{ else }}{{ range .Profiles }}
  - {{ . }}{{ end }}{{ end }}

positional arguments:
  action                [{{ .Actions }}]
  profile               choose a profile to look up its role arn

optional arguments:
  -r|--role-suffix      [{{ .RoleSuffixes }}]
                        default="{{ .DefaultRoleSuffix }}"; select role suffix
  -h, --help            show this help message and exit
EOF
}`))

var lookupTemplate = template.Must(template.New("lookup").Parse(`function role_arn() {
    profile="$1"
    declare -A P2A=({{ .Entries }})
    echo {{ .Value }}
}`))

var dispatcherTemplate = template.Must(template.New("dispatcher").Parse(`case "$1" in
{{- range .Actions }}
({{ . }})
    echo "{{ . }}"
    ;;
{{- end }}
(-h|--help)
    help
    ;;
(*)
    usage
    ;;
esac`))

type usageData struct {
	Heredoc  string
	Synopsis string
}

type helpData struct {
	Heredoc           string
	Synopsis          string
	Profiles          []string
	QuotedProfiles    string
	Actions           string
	RoleSuffixes      string
	DefaultRoleSuffix string
}

type lookupData struct {
	Entries string
	Value   string
}

type dispatcherData struct {
	Actions []string
}

func render(t *template.Template, data interface{}) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		// Templates are parsed at init and only receive typed data.
		panic(err)
	}
	return b.String()
}
