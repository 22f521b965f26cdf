package auth

import (
	"unicode/utf8"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// Registration is the sign-up form. Role is accepted but never used.
type Registration struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateRegistration applies the sign-up rules in order and reports the
// first violation. A nil result does not create an account anywhere.
func ValidateRegistration(r Registration) error {
	switch {
	case r.Username == "" || r.Email == "" || r.Password == "":
		return &ValidationError{Message: "Todos os campos obrigatórios devem ser preenchidos."}
	case utf8.RuneCountInString(r.Username) < minUsernameLength:
		return &ValidationError{Message: "Nome de usuário deve ter pelo menos 3 caracteres."}
	case utf8.RuneCountInString(r.Password) < minPasswordLength:
		return &ValidationError{Message: "A senha deve ter pelo menos 6 caracteres."}
	case r.Password != r.ConfirmPassword:
		return &ValidationError{Message: "As senhas não coincidem."}
	}
	return nil
}
