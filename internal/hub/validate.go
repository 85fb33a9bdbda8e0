package hub

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/errors"
)

// invalidNameChars may not appear anywhere in a repository name
const invalidNameChars = `/\:*?"<>|`

// nameRule returns nil when name passes
type nameRule func(name string) *errors.LocalHubError

// nameRules are checked in order; the first failure wins.
var nameRules = []nameRule{
	notEmpty,
	notTooLong,
	notReserved,
	noInvalidCharacters,
}

// Validate checks a repository name before it touches the filesystem. It
// performs no normalization.
func Validate(name string) error {
	for _, rule := range nameRules {
		if err := rule(name); err != nil {
			return err
		}
	}
	return nil
}

func notEmpty(name string) *errors.LocalHubError {
	if name == "" {
		return errors.InvalidName(errors.CodeEmptyName, "Repository name cannot be empty")
	}
	return nil
}

func notTooLong(name string) *errors.LocalHubError {
	if utf8.RuneCountInString(name) > constants.MaxNameLength {
		return errors.InvalidName(errors.CodeNameTooLong,
			fmt.Sprintf("Repository name is too long (max %d characters)", constants.MaxNameLength))
	}
	return nil
}

func notReserved(name string) *errors.LocalHubError {
	if name == "." || name == ".." {
		return errors.InvalidName(errors.CodeReservedName, "Repository name cannot be '.' or '..'")
	}
	return nil
}

func noInvalidCharacters(name string) *errors.LocalHubError {
	if i := strings.IndexAny(name, invalidNameChars); i >= 0 {
		c, _ := utf8.DecodeRuneInString(name[i:])
		return errors.InvalidCharacter(name, c)
	}
	return nil
}
