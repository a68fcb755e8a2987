package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/techhr/ad-manager-api/infrastructure/repository/mocks"
	"github.com/techhr/ad-manager-api/internal/config"
	"github.com/techhr/ad-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig() *config.Config {
	return &config.Config{SecretKey: "test-secret-key"}
}

func stringPtr(v string) *string {
	return &v
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	t.Run("Cadastro com sucesso emite token válido", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(nil, nil)

		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				// Senha nunca persiste em texto puro
				assert.NotEqual(t, "s3nh4forte", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3nh4forte")))

				user.ID = 10
				user.CreatedAt = time.Now()
				return user, nil
			})

		token, user, err := service.Register("Maria@Example.com ", "s3nh4forte", "Maria")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "maria@example.com", user.Email)
		assert.Equal(t, domain.LanguagePT, user.Language)

		// O token emitido precisa validar no próprio serviço
		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 10, claims.UserID)
		assert.Equal(t, "maria@example.com", claims.UserEmail)
		assert.Equal(t, "Maria", claims.UserName)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(&domain.User{ID: 10, Email: "maria@example.com"}, nil)

		_, _, err := service.Register("maria@example.com", "s3nh4forte", "Maria")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Campos obrigatórios ausentes", func(t *testing.T) {
		_, _, err := service.Register("maria@example.com", "", "Maria")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3nh4forte"), bcrypt.MinCost)
	assert.NoError(t, err)

	t.Run("Login com sucesso", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(&domain.User{
				ID:           10,
				Email:        "maria@example.com",
				PasswordHash: string(hashed),
				Name:         "Maria",
				Language:     domain.LanguagePT,
			}, nil)

		token, user, err := service.Login("maria@example.com", "s3nh4forte")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 10, user.ID)
	})

	t.Run("Usuário inexistente responde como credencial inválida", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("ninguem@example.com").
			Return(nil, nil)

		_, _, err := service.Login("ninguem@example.com", "qualquer")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(&domain.User{
				ID:           10,
				Email:        "maria@example.com",
				PasswordHash: string(hashed),
			}, nil)

		_, _, err := service.Login("maria@example.com", "senhaerrada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Conta vinculada a OAuth é rejeitada no login local", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("joao@example.com").
			Return(&domain.User{
				ID:            11,
				Email:         "joao@example.com",
				OAuthProvider: stringPtr(domain.OAuthProviderGoogle),
			}, nil)

		_, _, err := service.Login("joao@example.com", "qualquer")
		assert.ErrorIs(t, err, ErrOAuthOnlyAccount)

		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr)
		assert.Equal(t, 11, authErr.UserID)
	})
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("token-invalido")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		other := NewService(mockUserRepo, &config.Config{SecretKey: "outro-segredo"})

		mockUserRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(nil, nil)
		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				user.ID = 10
				return user, nil
			})

		token, _, err := other.Register("maria@example.com", "s3nh4forte", "Maria")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	t.Run("Perfil retorna sem o hash de senha", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(10).
			Return(&domain.User{ID: 10, Email: "maria@example.com", PasswordHash: "hash"}, nil)

		user, err := service.GetUserProfile(10)
		assert.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(99).
			Return(nil, nil)

		user, err := service.GetUserProfile(99)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_UpdateLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	t.Run("Idioma fora do enum", func(t *testing.T) {
		err := service.UpdateLanguage(10, "fr")
		assert.ErrorIs(t, err, ErrInvalidLanguage)
	})

	t.Run("Idioma atualizado", func(t *testing.T) {
		mockUserRepo.EXPECT().
			UpdateLanguage(10, domain.LanguageEN).
			Return(int64(1), nil)

		err := service.UpdateLanguage(10, domain.LanguageEN)
		assert.NoError(t, err)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		mockUserRepo.EXPECT().
			UpdateLanguage(99, domain.LanguageEN).
			Return(int64(0), nil)

		err := service.UpdateLanguage(99, domain.LanguageEN)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
