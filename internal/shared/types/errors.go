package types

import (
	"errors"
	"fmt"
)

var (
	ErrCredentialRead  = errors.New("unable to read credential file")
	ErrDownloadConfig  = errors.New("unable to download profile mapping")
	ErrMalformedConfig = errors.New("profile mapping is not a valid JSON object")
	ErrInvalidProfile  = errors.New("invalid profile entry")
	ErrOutputWrite     = errors.New("unable to write script file")
)

// CredentialReadError is returned when the token file is missing, unreadable or empty.
type CredentialReadError struct {
	Path string
	Err  error
}

func (e *CredentialReadError) Error() string {
	return fmt.Sprintf("%v %s: %v", ErrCredentialRead, e.Path, e.Err)
}

func (e *CredentialReadError) Unwrap() []error { return []error{ErrCredentialRead, e.Err} }

// DownloadConfigError carries the failed response of the mapping download.
type DownloadConfigError struct {
	Source     string
	StatusCode int
	Body       []byte
}

func (e *DownloadConfigError) Error() string {
	return fmt.Sprintf("error during download of %s: status %d", e.Source, e.StatusCode)
}

func (e *DownloadConfigError) Unwrap() error { return ErrDownloadConfig }

// MalformedConfigError wraps a failure to decode the fetched payload.
type MalformedConfigError struct {
	Err error
}

func (e *MalformedConfigError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMalformedConfig, e.Err)
}

func (e *MalformedConfigError) Unwrap() []error { return []error{ErrMalformedConfig, e.Err} }

// InvalidProfileError names the mapping entry that failed validation.
type InvalidProfileError struct {
	Profile string
	Reason  string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidProfile, e.Profile, e.Reason)
}

func (e *InvalidProfileError) Unwrap() error { return ErrInvalidProfile }

// OutputWriteError wraps a failure to persist the generated script.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("%v %s: %v", ErrOutputWrite, e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() []error { return []error{ErrOutputWrite, e.Err} }

// ScriptExitError reports a non-zero exit of the executed script.
type ScriptExitError struct {
	Path     string
	ExitCode int
}

func (e *ScriptExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Path, e.ExitCode)
}
