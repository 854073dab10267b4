// Package version identifies the running mawsh build.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"golang.org/x/mod/semver"
)

const devVersion = "0.0.0-dev"

// Definidos via -ldflags "-X github.com/diillson/mawsh-go/pkg/version.Version=1.2.3".
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

// releasesURL é o endpoint consultado por LatestVersion.
var releasesURL = "https://api.github.com/repos/diillson/mawsh-go/releases/latest"

func init() {
	applyBuildInfo(debug.ReadBuildInfo())
}

// applyBuildInfo fills whatever ldflags left unset from the module and VCS
// stamps the go command embeds.
func applyBuildInfo(bi *debug.BuildInfo, ok bool) {
	if !ok || bi == nil {
		return
	}

	stamp := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		stamp[s.Key] = s.Value
	}

	if Commit == "" && len(stamp["vcs.revision"]) >= 7 {
		Commit = stamp["vcs.revision"][:7]
	}
	if BuildTime == "" {
		if ts, err := time.Parse(time.RFC3339, stamp["vcs.time"]); err == nil {
			BuildTime = ts.UTC().Format(time.RFC3339)
		}
	}

	// go install module@vX.Y.Z records the release in Main.Version.
	if Version == devVersion && semver.IsValid(bi.Main.Version) {
		Version = strings.TrimPrefix(bi.Main.Version, "v")
		if stamp["vcs.modified"] == "true" {
			Version += "-dirty"
		}
	}
}

// FormatVersion retorna a versão com commit e horário de build, quando conhecidos.
func FormatVersion() string {
	v := Version
	if v == "" {
		v = devVersion
	}

	var details []string
	if Commit != "" {
		details = append(details, "commit: "+Commit)
	}
	if BuildTime != "" {
		details = append(details, "built at: "+BuildTime)
	}
	if len(details) == 0 {
		return v + " (development)"
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}

// LatestVersion returns the tag of the newest published release without its
// "v" prefix.
func LatestVersion(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases API returned status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decoding release: %w", err)
	}
	if release.TagName == "" {
		return "", fmt.Errorf("release has no tag")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}

// IsNewer reports whether latest is a later semantic version than current.
// Unparseable versions are never newer.
func IsNewer(latest, current string) bool {
	l, c := "v"+strings.TrimPrefix(latest, "v"), "v"+strings.TrimPrefix(current, "v")
	if !semver.IsValid(l) || !semver.IsValid(c) {
		return false
	}
	return semver.Compare(l, c) > 0
}

// CheckLatestVersion avisa em w quando existe um release mais recente.
// Development builds are not checked.
func CheckLatestVersion(ctx context.Context, w io.Writer, current string) {
	if current == "" || strings.HasSuffix(current, "-dev") {
		return
	}

	latest, err := LatestVersion(ctx)
	if err != nil || !IsNewer(latest, current) {
		return
	}

	pterm.Warning.WithWriter(w).Printfln("A new version of mawsh is available: %s", latest)
	pterm.Info.WithWriter(w).Println("Please update using: go install github.com/diillson/mawsh-go/cmd/mawsh@latest")
}
