package gcal

import "fmt"

// MissingTokenError indicates no cached OAuth token was found.
type MissingTokenError struct {
	Path string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("no calendar token at %s: authorize the app and place the token there", e.Path)
}

// CredentialsError indicates the OAuth client credentials file could not
// be read or parsed.
type CredentialsError struct {
	Path string
	Err  error
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("calendar credentials %s: %v", e.Path, e.Err)
}

func (e *CredentialsError) Unwrap() error {
	return e.Err
}
