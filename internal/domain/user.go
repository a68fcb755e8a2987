package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Idiomas suportados
const (
	LanguagePT = "pt"
	LanguageEN = "en"
)

// Provedores OAuth que podem estar vinculados a uma conta.
// A troca de código OAuth acontece fora desta API; aqui apenas persistimos o vínculo.
const (
	OAuthProviderGoogle   = "google"
	OAuthProviderFacebook = "facebook"
)

type User struct {
	ID            int       `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Name          string    `json:"name"`
	OAuthProvider *string   `json:"oauthProvider,omitempty"`
	OAuthID       *string   `json:"-"`
	Language      string    `json:"language"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OAuthLinked indica se a conta foi criada via provedor OAuth (sem senha local)
func (u *User) OAuthLinked() bool {
	return u.OAuthProvider != nil && *u.OAuthProvider != ""
}

type Claims struct {
	UserID       int    `json:"userId"`
	UserEmail    string `json:"userEmail"`
	UserName     string `json:"userName"`
	UserLanguage string `json:"userLanguage"`
	jwt.RegisteredClaims
}

// ValidLanguage verifica se o idioma pertence ao enum pt/en
func ValidLanguage(language string) bool {
	return language == LanguagePT || language == LanguageEN
}
