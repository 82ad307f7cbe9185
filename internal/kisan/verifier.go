// Package kisan implements the Kisan card checkpoint that runs before login.
//
// The check is a plain comparison against one configured 12 digit card number.
// It is not cryptographic, talks to no external registry and is trivially
// bypassable by anyone who knows the configured value.
package kisan

import "errors"

const CardLength = 12

var ErrInvalidCard = errors.New("invalid Kisan card number")

type Verifier struct {
	cardNumber string
}

func NewVerifier(cardNumber string) *Verifier {
	return &Verifier{cardNumber: cardNumber}
}

// IsValidCard reports whether code is exactly the configured card number.
func (v *Verifier) IsValidCard(code string) bool {
	if len(code) != CardLength || !digitsOnly(code) {
		return false
	}
	return code == v.cardNumber
}

// Verify is IsValidCard with an error for callers that propagate errors.
func (v *Verifier) Verify(code string) error {
	if !v.IsValidCard(code) {
		return ErrInvalidCard
	}
	return nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
