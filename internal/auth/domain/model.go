package domain

import "errors"

var (
	// ErrProvider covers identity-provider failures: bad or expired
	// tokens, transport errors, anything the provider reports.
	ErrProvider = errors.New("auth: provider error")

	// ErrAccessDenied means the account authenticated successfully but
	// is not the allow-listed admin. The session is revoked before this
	// error is returned.
	ErrAccessDenied = errors.New("auth: access denied")
)

// Identity is an authorized admin account. It only exists after the
// allow-list check has passed; no intermediate "authenticated but
// unchecked" identity is ever handed out.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
