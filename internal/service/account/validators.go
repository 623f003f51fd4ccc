package account

import (
	"strings"
	"time"
)

const (
	minPasswordLength = 6
	minDriverAgeYears = 18
)

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLength
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isAdult(dateOfBirth, now time.Time) bool {
	adultAt := dateOfBirth.AddDate(minDriverAgeYears, 0, 0)
	return !adultAt.After(now)
}
