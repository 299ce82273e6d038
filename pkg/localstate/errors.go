package localstate

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when there is no Local State file at the given path.
	ErrNotFound = errors.New("local state file not found")
	// ErrMalformed is returned when the file isn't a JSON object.
	ErrMalformed = errors.New("could not decode local state JSON")
	// ErrNoProfiles is returned when profile.info_cache is missing or empty.
	ErrNoProfiles = errors.New("no profiles found in local state")
	// ErrUnknownProfile matches any *UnknownProfileError.
	ErrUnknownProfile = errors.New("profile not found")
)

// UnknownProfileError is returned when removing a profile ID which
// isn't present in profile.info_cache.
type UnknownProfileError struct {
	ID string
	// Suggestions holds known profile IDs which look similar to ID.
	Suggestions []string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("profile %q not found", e.ID)
}

func (e *UnknownProfileError) Is(target error) bool {
	return target == ErrUnknownProfile
}
