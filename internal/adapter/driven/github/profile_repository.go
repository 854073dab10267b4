package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/diillson/mawsh-go/internal/domain/entity"
	"github.com/diillson/mawsh-go/internal/domain/repository"
	"github.com/diillson/mawsh-go/internal/shared/types"
)

// tokenType is sent verbatim in the Authorization header: "token <value>".
const tokenType = "token"

// ProfileRepositoryImpl downloads the profile mapping through the GitHub contents API.
type ProfileRepositoryImpl struct {
	apiURL     string
	repository string
	filePath   string
	mediaType  string
	tokenFile  string
	timeout    time.Duration
	baseClient *http.Client
}

// Option customizes a ProfileRepositoryImpl.
type Option func(*ProfileRepositoryImpl)

// WithHTTPClient sets the client whose transport carries the authorized requests.
func WithHTTPClient(c *http.Client) Option {
	return func(r *ProfileRepositoryImpl) {
		r.baseClient = c
	}
}

// NewProfileRepository cria uma nova implementação do ProfileRepository para o GitHub.
func NewProfileRepository(cfg types.Config, opts ...Option) repository.ProfileRepository {
	r := &ProfileRepositoryImpl{
		apiURL:     strings.TrimRight(cfg.GitHubAPI, "/"),
		repository: strings.Trim(cfg.Repository, "/"),
		filePath:   strings.TrimLeft(cfg.FilePath, "/"),
		mediaType:  cfg.MediaType,
		tokenFile:  cfg.TokenFile,
		timeout:    time.Duration(cfg.Timeout) * time.Second,
		baseClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// URL returns the contents API endpoint of the mapping file.
func (r *ProfileRepositoryImpl) URL() string {
	return fmt.Sprintf("%s/%s/contents/%s", r.apiURL, r.repository, r.filePath)
}

// FetchProfiles reads the token and issues one authenticated GET for the raw file.
func (r *ProfileRepositoryImpl) FetchProfiles(ctx context.Context) (*entity.FetchResult, error) {
	token, err := ReadToken(r.tokenFile)
	if err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	url := r.URL()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", r.mediaType)

	res, err := r.client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	return &entity.FetchResult{
		Source:     url,
		StatusCode: res.StatusCode,
		Body:       body,
	}, nil
}

func (r *ProfileRepositoryImpl) client(ctx context.Context, token string) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, r.baseClient)
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   tokenType,
	})
	return oauth2.NewClient(ctx, src)
}

// ReadToken loads the bearer token from path, expanding a leading "~".
func ReadToken(path string) (string, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return "", &types.CredentialReadError{Path: path, Err: err}
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", &types.CredentialReadError{Path: expanded, Err: err}
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", &types.CredentialReadError{Path: expanded, Err: fmt.Errorf("file is empty")}
	}

	return token, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
