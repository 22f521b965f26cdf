package auth

import (
	"errors"
)

type Role string

const (
	RoleAdministrator Role = "administrador"
	RoleOperator      Role = "operador"
	RoleTechnician    Role = "tecnico"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier checks a username/password pair and yields the account role.
type Verifier interface {
	Verify(username, password string) (Role, error)
}

type credential struct {
	password string
	role     Role
}

// StaticVerifier matches against a fixed, in-memory table. Passwords are
// compared as plaintext.
type StaticVerifier struct {
	users map[string]credential
}

func NewStaticVerifier() *StaticVerifier {
	return &StaticVerifier{
		users: map[string]credential{
			"admin":    {password: "admin123", role: RoleAdministrator},
			"operador": {password: "op123", role: RoleOperator},
			"tecnico":  {password: "tec123", role: RoleTechnician},
		},
	}
}

func (v *StaticVerifier) Verify(username, password string) (Role, error) {
	c, ok := v.users[username]
	if !ok || c.password != password {
		return "", ErrInvalidCredentials
	}
	return c.role, nil
}

// DemoAccount is a credential pair advertised in the startup banner.
type DemoAccount struct {
	Label    string
	Username string
	Password string
}

func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{Label: "Admin", Username: "admin", Password: "admin123"},
		{Label: "Operador", Username: "operador", Password: "op123"},
		{Label: "Técnico", Username: "tecnico", Password: "tec123"},
	}
}
