package service

// ICredentialGenerator issues one-time access passwords. The format is fixed by
// the emails already in customers' inboxes: an 8-digit decimal string in
// [10000000, 99999999].
type ICredentialGenerator interface {
	NewPassword() (string, error)
}
