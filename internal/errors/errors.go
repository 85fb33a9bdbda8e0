package errors

import (
	"errors"
	"fmt"
)

// Error types for better error handling
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypePath       ErrorType = "path"
	ErrorTypeFileSystem ErrorType = "filesystem"
	ErrorTypeHub        ErrorType = "hub"
	ErrorTypeRemote     ErrorType = "remote"
	ErrorTypeGit        ErrorType = "git"
	ErrorTypeConfig     ErrorType = "config"
)

// Code identifies a specific failure within an ErrorType
type Code string

const (
	CodeEmptyName        Code = "empty_name"
	CodeNameTooLong      Code = "name_too_long"
	CodeReservedName     Code = "reserved_name"
	CodeInvalidCharacter Code = "invalid_character"

	CodePathResolution Code = "path_resolution"
	CodeIO             Code = "io"

	CodeAlreadyExists     Code = "already_exists"
	CodeNotFound          Code = "not_found"
	CodeInvalidRepository Code = "invalid_repository"

	CodeNotAGitRepository    Code = "not_a_git_repository"
	CodeRemoteAlreadyExists  Code = "remote_already_exists"
	CodeRemoteNotFound       Code = "remote_not_found"
	CodePushURLAlreadyExists Code = "push_url_already_exists"

	CodeGit    Code = "git"
	CodeConfig Code = "config"
)

// LocalHubError represents a structured error with context
type LocalHubError struct {
	Type    ErrorType
	Code    Code
	Message string
	Hint    string
	Err     error
}

func (e *LocalHubError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *LocalHubError) Unwrap() error {
	return e.Err
}

// UserFriendlyMessage returns a user-friendly error message with hint
func (e *LocalHubError) UserFriendlyMessage() string {
	msg := e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Hint != "" {
		msg += "\n\nSuggestion: " + e.Hint
	}
	return msg
}

// New creates a new LocalHubError
func New(errType ErrorType, code Code, message string) *LocalHubError {
	return &LocalHubError{
		Type:    errType,
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with context
func Wrap(errType ErrorType, code Code, message string, err error) *LocalHubError {
	return &LocalHubError{
		Type:    errType,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithHint adds a hint to an error
func WithHint(err *LocalHubError, hint string) *LocalHubError {
	err.Hint = hint
	return err
}

// HasCode reports whether any LocalHubError in err's chain carries code
func HasCode(err error, code Code) bool {
	var e *LocalHubError
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Err
	}
	return false
}

// Common error constructors

func InvalidName(code Code, message string) *LocalHubError {
	return New(ErrorTypeValidation, code, message)
}

func InvalidCharacter(name string, c rune) *LocalHubError {
	return WithHint(
		New(ErrorTypeValidation, CodeInvalidCharacter, fmt.Sprintf("Repository name cannot contain '%c'", c)),
		fmt.Sprintf("Remove '%c' from %q. Names may not contain / \\ : * ? \" < > |", c, name),
	)
}

func PathResolution(err error) *LocalHubError {
	return WithHint(
		Wrap(ErrorTypePath, CodePathResolution, "Cannot determine the hub directory", err),
		"Pass --hub-path or set LOCALHUB_HUB_PATH.",
	)
}

func IO(message string, err error) *LocalHubError {
	return Wrap(ErrorTypeFileSystem, CodeIO, message, err)
}

func RepositoryExists(name string) *LocalHubError {
	return WithHint(
		New(ErrorTypeHub, CodeAlreadyExists, fmt.Sprintf("Repository '%s' already exists", name)),
		fmt.Sprintf("Run 'localhub info %s' to inspect it or choose a different name.", name),
	)
}

func RepositoryNotFound(name string) *LocalHubError {
	return WithHint(
		New(ErrorTypeHub, CodeNotFound, fmt.Sprintf("Repository '%s' does not exist in hub", name)),
		fmt.Sprintf("Run 'localhub list' to see hub repositories or 'localhub create %s' to create it first.", name),
	)
}

func InvalidRepository(path string) *LocalHubError {
	return WithHint(
		New(ErrorTypeHub, CodeInvalidRepository, fmt.Sprintf("Path '%s' is not a valid Git repository", path)),
		"Inspect the directory manually; localhub only deletes bare repositories.",
	)
}

func NotAGitRepository(path string, err error) *LocalHubError {
	return WithHint(
		Wrap(ErrorTypeRemote, CodeNotAGitRepository, fmt.Sprintf("'%s' is not a Git repository", path), err),
		"Run 'git init' first or point --path at a working repository.",
	)
}

func RemoteExists(remoteName string) *LocalHubError {
	return WithHint(
		New(ErrorTypeRemote, CodeRemoteAlreadyExists, fmt.Sprintf("Remote '%s' already exists", remoteName)),
		fmt.Sprintf("Run 'localhub remove-remote %s' first or pick another name with --remote-name.", remoteName),
	)
}

func RemoteNotFound(remoteName string) *LocalHubError {
	return WithHint(
		New(ErrorTypeRemote, CodeRemoteNotFound, fmt.Sprintf("Remote '%s' not configured", remoteName)),
		"Run 'localhub list-remotes' to see configured remotes.",
	)
}

func PushURLExists(remoteName, url string) *LocalHubError {
	return New(ErrorTypeRemote, CodePushURLAlreadyExists,
		fmt.Sprintf("Push URL '%s' already exists for remote '%s'", url, remoteName))
}

func Git(message string, err error) *LocalHubError {
	return Wrap(ErrorTypeGit, CodeGit, message, err)
}

func InvalidConfiguration(key, reason string) *LocalHubError {
	return WithHint(
		New(ErrorTypeConfig, CodeConfig, fmt.Sprintf("Invalid configuration for '%s': %s", key, reason)),
		"Check ~/.localhub/config.yaml and LOCALHUB_* environment variables.",
	)
}
