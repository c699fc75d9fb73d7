package utils

import (
	"strings"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
)

const (
	cnpjLength = 14
	cpfLength  = 11
)

// OnlyDigits strips every non-digit rune from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCNPJ returns the 14 digits of a company registration number,
// accepting punctuated input such as 12.345.678/0001-90.
func NormalizeCNPJ(raw string) (string, error) {
	digits := OnlyDigits(raw)
	if len(digits) != cnpjLength {
		return "", apperrors.NewValidationError("cnpj", "must have 14 digits")
	}
	return digits, nil
}

// NormalizeCPF returns the 11 digits of a personal registration number.
func NormalizeCPF(raw string) (string, error) {
	digits := OnlyDigits(raw)
	if len(digits) != cpfLength {
		return "", apperrors.NewValidationError("cpf", "must have 11 digits")
	}
	return digits, nil
}

// IsCNPJ reports whether raw normalises to a CNPJ.
func IsCNPJ(raw string) bool {
	_, err := NormalizeCNPJ(raw)
	return err == nil
}
