package services

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/denmor86/interview-market/internal/models"
)

var (
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	accountPattern = regexp.MustCompile(`^[0-9]{9,18}$`)
	vpaPattern     = regexp.MustCompile(`^[a-zA-Z0-9._-]{2,256}@[a-zA-Z]{2,64}$`)
	couponPattern  = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)
)

// NormalizeSkills - навыки в нижнем регистре без пробелов по краям и повторов
func NormalizeSkills(skills []string) []string {
	result := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" || slices.Contains(result, skill) {
			continue
		}
		result = append(result, skill)
	}
	return result
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}

// NormalizeCouponCode - код купона в верхнем регистре
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// maskTail - оставляет видимыми последние visible символов
func maskTail(value string, visible int) string {
	if len(value) <= visible {
		return value
	}
	return strings.Repeat("X", len(value)-visible) + value[len(value)-visible:]
}

// ValidateTransferDetails - проверка реквизитов; возвращает маскированного получателя для хранения
func ValidateTransferDetails(method string, details models.TransferDetails) (string, error) {
	holder := strings.TrimSpace(details.AccountHolder)
	switch method {
	case models.MethodBankTransfer:
		if holder == "" || utf8.RuneCountInString(holder) > 120 {
			return "", ErrInvalidTransferDetails
		}
		if !accountPattern.MatchString(details.AccountNumber) {
			return "", ErrInvalidTransferDetails
		}
		if !ifscPattern.MatchString(strings.ToUpper(details.IFSC)) {
			return "", ErrInvalidTransferDetails
		}
		return strings.ToUpper(details.IFSC) + " " + maskTail(details.AccountNumber, 4), nil
	case models.MethodUPI:
		if !vpaPattern.MatchString(details.VPA) {
			return "", ErrInvalidTransferDetails
		}
		name, handle, _ := strings.Cut(details.VPA, "@")
		return maskTail(name, 2) + "@" + handle, nil
	default:
		return "", ErrInvalidMethod
	}
}
