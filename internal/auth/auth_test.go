package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier()

	tests := []struct {
		name     string
		username string
		password string
		role     Role
		wantErr  bool
	}{
		{name: "admin", username: "admin", password: "admin123", role: RoleAdministrator},
		{name: "operator", username: "operador", password: "op123", role: RoleOperator},
		{name: "technician", username: "tecnico", password: "tec123", role: RoleTechnician},
		{name: "wrong password", username: "admin", password: "admin", wantErr: true},
		{name: "unknown user", username: "root", password: "admin123", wantErr: true},
		{name: "case sensitive user", username: "Admin", password: "admin123", wantErr: true},
		{name: "case sensitive password", username: "admin", password: "ADMIN123", wantErr: true},
		{name: "empty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := v.Verify(tt.username, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, role)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.role, role)
		})
	}
}

func TestDemoAccountsVerify(t *testing.T) {
	v := NewStaticVerifier()
	accounts := DemoAccounts()
	require.Len(t, accounts, 3)

	for _, a := range accounts {
		_, err := v.Verify(a.Username, a.Password)
		assert.NoError(t, err, a.Username)
	}
}

func TestValidateRegistration(t *testing.T) {
	valid := Registration{
		Username:        "maria",
		Email:           "maria@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}

	tests := []struct {
		name    string
		mutate  func(r *Registration)
		wantMsg string
	}{
		{name: "valid", mutate: func(r *Registration) {}},
		{name: "missing username", mutate: func(r *Registration) { r.Username = "" }, wantMsg: "Todos os campos obrigatórios devem ser preenchidos."},
		{name: "missing email", mutate: func(r *Registration) { r.Email = "" }, wantMsg: "Todos os campos obrigatórios devem ser preenchidos."},
		{name: "missing password", mutate: func(r *Registration) { r.Password = "" }, wantMsg: "Todos os campos obrigatórios devem ser preenchidos."},
		{name: "short username", mutate: func(r *Registration) { r.Username = "ab" }, wantMsg: "Nome de usuário deve ter pelo menos 3 caracteres."},
		{name: "multibyte username counts runes", mutate: func(r *Registration) { r.Username = "joã" }},
		{name: "password length 5", mutate: func(r *Registration) { r.Password = "12345"; r.ConfirmPassword = "12345" }, wantMsg: "A senha deve ter pelo menos 6 caracteres."},
		{name: "short password checked before mismatch", mutate: func(r *Registration) { r.Password = "12345" }, wantMsg: "A senha deve ter pelo menos 6 caracteres."},
		{name: "mismatch", mutate: func(r *Registration) { r.ConfirmPassword = "secret2" }, wantMsg: "As senhas não coincidem."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			err := ValidateRegistration(r)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestRegistrationDoesNotCreateAccount(t *testing.T) {
	r := Registration{
		Username:        "novato",
		Email:           "novato@example.com",
		Password:        "novato123",
		ConfirmPassword: "novato123",
	}
	require.NoError(t, ValidateRegistration(r))

	_, err := NewStaticVerifier().Verify(r.Username, r.Password)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
