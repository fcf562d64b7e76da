package models

import (
	"strings"
	"time"

	"github.com/baharkarakas/blog-backend/internal/api/validate"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Created      time.Time `json:"created"`
}

// ValidateCredentials checks a registration form. The password is checked
// here rather than on the struct because only its hash is ever stored.
func ValidateCredentials(username, password string) error {
	var errs validate.Errs
	if e := validate.Required("username", username); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.Required("password", password); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.MaxLen("username", strings.TrimSpace(username), 64); e != nil {
		errs = append(errs, *e)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
