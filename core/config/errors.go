package config

import "fmt"

// MissingSourceError reports a required configuration source that could not
// be read. Reaching the server loop without it would run the process on a
// half-empty configuration, so startup must abort.
type MissingSourceError struct {
	Path  string
	Cause error
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("config: required source %q: %v", e.Path, e.Cause)
}

func (e *MissingSourceError) Unwrap() error {
	return e.Cause
}
