package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateRegister(email, displayName, password string) ValidationErrors {
	errs := make(ValidationErrors)

	// Email
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	// Display name is optional; it falls back to the email.
	displayName = strings.TrimSpace(displayName)
	if displayName != "" && len(displayName) > 100 {
		errs.Add("display_name", "Display name is too long")
	}

	// Password
	validatePassword(password, errs)

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidatePost(title, content, visibility, status string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(title) == "" {
		errs.Add("title", "Title is required")
	} else if len(title) > 200 {
		errs.Add("title", "Title is too long")
	}

	if strings.TrimSpace(content) == "" {
		errs.Add("content", "Content is required")
	}

	if visibility != "" && visibility != "free" && visibility != "premium" {
		errs.Add("visibility", "Visibility must be free or premium")
	}

	if status != "" && status != "draft" && status != "published" {
		errs.Add("status", "Status must be draft or published")
	}

	return errs
}

func ValidateProfileUpdate(displayName, bio, avatarURL *string) ValidationErrors {
	errs := make(ValidationErrors)

	if displayName != nil {
		name := strings.TrimSpace(*displayName)
		if name == "" {
			errs.Add("display_name", "Display name cannot be empty")
		} else if len(name) > 100 {
			errs.Add("display_name", "Display name is too long")
		}
	}

	if bio != nil && len(*bio) > 1000 {
		errs.Add("bio", "Bio is too long")
	}

	if avatarURL != nil && *avatarURL != "" {
		if u, err := url.Parse(*avatarURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs.Add("avatar_url", "Avatar URL must be a valid absolute URL")
		}
	}

	return errs
}

func validatePassword(password string, errs ValidationErrors) {
	if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
		return
	}

	var hasUpper, hasLower, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}

	missing := []string{}
	if !hasUpper {
		missing = append(missing, "one uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "one lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "one number")
	}

	if len(missing) > 0 {
		errs.Add("password", fmt.Sprintf("Password must contain at least %s", strings.Join(missing, ", ")))
	}
}
