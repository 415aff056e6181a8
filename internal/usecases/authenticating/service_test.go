package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-analytics-api/internal/config"
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "test_secret"},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	tests := []struct {
		name        string
		user        *domain.User
		setup       func()
		expectedErr error
		validate    func(t *testing.T, created *domain.User)
	}{
		{
			name: "Deve criar usuário com senha criptografada e papel padrão",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "Silva",
				Email:        "Ana.Silva@Empresa.com ",
				PasswordHash: "SenhaForte1",
			},
			setup: func() {
				mockUserRepo.EXPECT().
					GetUserByEmail("ana.silva@empresa.com").
					Return(nil, nil)

				mockUserRepo.EXPECT().
					CreateUser(gomock.Any()).
					DoAndReturn(func(user *domain.User) (*domain.User, error) {
						user.ID = 10
						return user, nil
					})
			},
			validate: func(t *testing.T, created *domain.User) {
				assert.Equal(t, 10, created.ID)
				// Email normalizado para minúsculas e sem espaços
				assert.Equal(t, "ana.silva@empresa.com", created.Email)
				// Papel padrão de analista
				assert.Equal(t, 3, created.RoleID)
				// Novo usuário começa desativado
				assert.False(t, created.Active)
				// Senha nunca é armazenada em texto puro
				assert.NotEqual(t, "SenhaForte1", created.PasswordHash)
				err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("SenhaForte1"))
				assert.NoError(t, err)
			},
		},
		{
			name: "Email já cadastrado deve ser rejeitado",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "Silva",
				Email:        "ana.silva@empresa.com",
				PasswordHash: "SenhaForte1",
			},
			setup: func() {
				mockUserRepo.EXPECT().
					GetUserByEmail("ana.silva@empresa.com").
					Return(&domain.User{ID: 1, Email: "ana.silva@empresa.com"}, nil)
			},
			expectedErr: ErrUserAlreadyExists,
		},
		{
			name: "Campos obrigatórios ausentes devem ser rejeitados",
			user: &domain.User{
				Name:  "Ana",
				Email: "ana@empresa.com",
			},
			setup:       func() {},
			expectedErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			created, err := service.CreateUser(tt.user)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
				return
			}

			require.NoError(t, err)
			tt.validate(t, created)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:           1,
			Name:         "Ana",
			Email:        "ana@empresa.com",
			PasswordHash: hashPassword(t, "SenhaForte1"),
			Active:       true,
			RoleID:       1,
		}
	}

	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(t *testing.T)
		expectedErr error
	}{
		{
			name:     "Credenciais válidas devem gerar um token",
			email:    "ana@empresa.com",
			password: "SenhaForte1",
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().
					GetUserByEmail("ana@empresa.com").
					Return(activeUser(t), nil)
			},
		},
		{
			name:     "Email com maiúsculas e espaços deve ser normalizado antes da consulta",
			email:    " Ana@Empresa.com ",
			password: "SenhaForte1",
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().
					GetUserByEmail("ana@empresa.com").
					Return(activeUser(t), nil)
			},
		},
		{
			name:     "Usuário inexistente deve ser rejeitado",
			email:    "ninguem@empresa.com",
			password: "SenhaForte1",
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().
					GetUserByEmail("ninguem@empresa.com").
					Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada deve ser rejeitada",
			email:    "ana@empresa.com",
			password: "SenhaForte1",
			setup: func(t *testing.T) {
				user := activeUser(t)
				user.Active = false
				mockUserRepo.EXPECT().
					GetUserByEmail("ana@empresa.com").
					Return(user, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta deve ser rejeitada",
			email:    "ana@empresa.com",
			password: "SenhaErrada",
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().
					GetUserByEmail("ana@empresa.com").
					Return(activeUser(t), nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:        "Email e senha são obrigatórios",
			email:       "",
			password:    "",
			setup:       func(t *testing.T) {},
			expectedErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	tests := []struct {
		name        string
		userID      int
		setup       func(t *testing.T)
		expectedErr error
		validate    func(t *testing.T, user *domain.User)
	}{
		{
			name:   "Deve retornar o perfil sem o hash da senha",
			userID: 1,
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().
					GetUserByID(1).
					Return(&domain.User{ID: 1, Name: "Ana", PasswordHash: hashPassword(t, "SenhaForte1")}, nil)
			},
			validate: func(t *testing.T, user *domain.User) {
				assert.Equal(t, 1, user.ID)
				assert.Equal(t, "Ana", user.Name)
				assert.Empty(t, user.PasswordHash)
			},
		},
		{
			name:   "Usuário removido após a emissão do token não pode quebrar a consulta",
			userID: 42,
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().
					GetUserByID(42).
					Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:   "Erro do repositório deve ser propagado",
			userID: 1,
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().
					GetUserByID(1).
					Return(nil, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			user, err := service.GetUserProfile(tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			tt.validate(t, user)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	cfg := testConfig()
	service := NewService(mockUserRepo, cfg)

	user := &domain.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@empresa.com",
		PasswordHash: hashPassword(t, "SenhaForte1"),
		Active:       true,
		RoleID:       2,
	}

	mockUserRepo.EXPECT().
		GetUserByEmail("ana@empresa.com").
		Return(user, nil)

	token, err := service.LoginUser("ana@empresa.com", "SenhaForte1")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, 2, claims.UserRoleID)
	assert.True(t, claims.UserActive)
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	claims, err := service.ValidateToken("token-invalido")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	tests := []struct {
		name            string
		currentPassword string
		newPassword     string
		setup           func(t *testing.T)
		expectedErr     error
	}{
		{
			name:            "Deve trocar a senha quando a atual confere",
			currentPassword: "SenhaForte1",
			newPassword:     "OutraSenha2",
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().
					GetUserByID(1).
					Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "SenhaForte1")}, nil)

				mockUserRepo.EXPECT().
					UpdateUser(gomock.Any()).
					DoAndReturn(func(user *domain.User) error {
						// A nova senha deve conferir com o hash persistido
						return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("OutraSenha2"))
					})
			},
		},
		{
			name:            "Senha atual incorreta deve ser rejeitada",
			currentPassword: "SenhaErrada",
			newPassword:     "OutraSenha2",
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().
					GetUserByID(1).
					Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "SenhaForte1")}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:            "Nova senha igual à atual deve ser rejeitada",
			currentPassword: "SenhaForte1",
			newPassword:     "SenhaForte1",
			setup:           func(t *testing.T) {},
			expectedErr:     ErrSamePassword,
		},
		{
			name:            "Nova senha fraca deve ser rejeitada",
			currentPassword: "SenhaForte1",
			newPassword:     "fraca",
			setup:           func(t *testing.T) {},
			expectedErr:     ErrWeakPassword,
		},
		{
			name:            "Senhas são obrigatórias",
			currentPassword: "",
			newPassword:     "",
			setup:           func(t *testing.T) {},
			expectedErr:     ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			err := service.ChangePassword(1, tt.currentPassword, tt.newPassword)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		hasError bool
	}{
		{
			name:     "Senha com maiúsculas, minúsculas e números é aceita",
			password: "SenhaForte1",
			hasError: false,
		},
		{
			name:     "Senha curta é rejeitada",
			password: "Ab1",
			hasError: true,
		},
		{
			name:     "Senha sem números é rejeitada",
			password: "SenhaForte",
			hasError: true,
		},
		{
			name:     "Senha sem maiúsculas é rejeitada",
			password: "senhaforte1",
			hasError: true,
		},
		{
			name:     "Senha sem minúsculas é rejeitada",
			password: "SENHAFORTE1",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)

			if tt.hasError {
				assert.ErrorIs(t, err, ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
