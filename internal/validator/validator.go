package validator

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidAccountID = errors.New("invalid account id")
	ErrInvalidItemName  = errors.New("invalid item name")
)

// ValidateAccountID accepts any opaque non-empty identifier of reasonable
// length. Identifiers are supplied by the calling collaborator, never
// generated here.
func ValidateAccountID(accountID string) error {
	if accountID == "" || utf8.RuneCountInString(accountID) > 64 {
		return ErrInvalidAccountID
	}
	if strings.ContainsAny(accountID, " \t\n") {
		return ErrInvalidAccountID
	}
	return nil
}

func ValidateItemName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > 100 {
		return ErrInvalidItemName
	}
	return nil
}
