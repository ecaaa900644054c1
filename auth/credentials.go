package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Admin is a stored credential. Admins are created out-of-band; this
// system only ever reads them.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
}

type CredentialStore interface {
	GetAdminByUsername(ctx context.Context, username string) (Admin, error)
}

// Login checks the plaintext password against the stored bcrypt hash and
// issues a session token. An unknown username and a wrong password fail
// the same way. There is no lockout; attempts are unlimited.
func Login(ctx context.Context, store CredentialStore, signer *TokenSigner, username string, password string) (string, error) {
	admin, err := store.GetAdminByUsername(ctx, username)
	if err != nil {
		var authErr *Error
		if errors.As(err, &authErr) && authErr.Reason == REASON_ADMIN_DOES_NOT_EXIST {
			return "", NewInvalidCredentialsError(err)
		}

		return "", NewFailedToFetchError("Failed to look up admin", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", NewInvalidCredentialsError(err)
	}

	return signer.Issue(admin.ID, admin.Username)
}
