package authenticating

import (
	"errors"
	"fmt"
)

var (
	// Credenciais inválidas e usuário inexistente são apresentados da mesma
	// forma no login, para não revelar quais emails estão cadastrados.
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrOAuthOnlyAccount   = errors.New("este email está vinculado a uma conta OAuth")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUserAlreadyExists  = errors.New("email já cadastrado")
	ErrInvalidToken       = errors.New("token inválido")

	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidLanguage     = errors.New("idioma inválido")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError carrega contexto adicional sobre falhas de autenticação
type AuthError struct {
	Err     error
	Code    string // Código de erro para a API
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
