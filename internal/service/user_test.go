package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cadastromunicipal.com/internal/domain"
	"cadastromunicipal.com/internal/model"
)

func seedUser(t *testing.T, db *gorm.DB, email, password, role string) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Name:     "Servidor de Teste",
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "fiscal@mesquita.rj.gov.br", "senha123", model.RoleUser)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "fiscal@mesquita.rj.gov.br", "senha123")
		require.NoError(t, err)
		assert.Equal(t, "fiscal@mesquita.rj.gov.br", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "fiscal@mesquita.rj.gov.br", "errada")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "ninguem@mesquita.rj.gov.br", "senha123")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestGetByIDNeverExposesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	seeded := seedUser(t, db, "fiscal@mesquita.rj.gov.br", "senha123", model.RoleUser)

	user, err := svc.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)

	payload, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "password")
	assert.NotContains(t, string(payload), user.Password)
}

func TestChangePasswordPreconditionOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "fiscal@mesquita.rj.gov.br", "senha123", model.RoleUser)

	t.Run("confirmation mismatch comes first", func(t *testing.T) {
		// Even with no email the confirmation check fires before anything else.
		err := svc.ChangePassword(context.Background(), "", "senha123", "nova", "diferente")
		assert.ErrorIs(t, err, ErrConfirmacaoSenha)
	})

	t.Run("missing session email", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), "", "senha123", "nova", "nova")
		assert.ErrorIs(t, err, ErrUsuarioNaoAutenticado)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), "ninguem@mesquita.rj.gov.br", "senha123", "nova", "nova")
		assert.ErrorIs(t, err, ErrUsuarioNaoExiste)
	})

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), "fiscal@mesquita.rj.gov.br", "errada", "nova", "nova")
		assert.ErrorIs(t, err, ErrSenhaAtualIncorreta)
	})
}

func TestChangePasswordFailureLeavesCredentialUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "fiscal@mesquita.rj.gov.br", "senha123", model.RoleUser)

	err := svc.ChangePassword(context.Background(), "fiscal@mesquita.rj.gov.br", "senha123", "nova", "diferente")
	require.ErrorIs(t, err, ErrConfirmacaoSenha)

	_, err = svc.Authenticate(context.Background(), "fiscal@mesquita.rj.gov.br", "senha123")
	assert.NoError(t, err, "old password must still work after a rejected change")
}

func TestChangePasswordRotatesCredential(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "fiscal@mesquita.rj.gov.br", "senha123", model.RoleUser)

	err := svc.ChangePassword(context.Background(), "fiscal@mesquita.rj.gov.br", "senha123", "novasenha", "novasenha")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "fiscal@mesquita.rj.gov.br", "novasenha")
	assert.NoError(t, err)

	// Rotating again with the pre-rotation value must fail.
	err = svc.ChangePassword(context.Background(), "fiscal@mesquita.rj.gov.br", "senha123", "outra", "outra")
	assert.ErrorIs(t, err, ErrSenhaAtualIncorreta)
}

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	t.Run("defaults to USER role", func(t *testing.T) {
		user, err := svc.CreateUser(context.Background(), "Servidor", "novo@mesquita.rj.gov.br", "senha123", "")
		require.NoError(t, err)
		assert.Equal(t, model.RoleUser, user.Role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), "Servidor", "outro@mesquita.rj.gov.br", "senha123", "GERENTE")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), "Servidor", "novo@mesquita.rj.gov.br", "senha123", model.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("requires email and password", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), "Servidor", "", "senha123", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUpdateRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	seeded := seedUser(t, db, "fiscal@mesquita.rj.gov.br", "senha123", model.RoleUser)

	t.Run("promotes to admin", func(t *testing.T) {
		user, err := svc.UpdateRole(context.Background(), seeded.ID, model.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateRole(context.Background(), 999, model.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := svc.UpdateRole(context.Background(), seeded.ID, "GERENTE")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEnsureSuperAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	require.NoError(t, svc.EnsureSuperAdmin(context.Background(), "Administrador", "admin@prefeitura.gov.br", "mudar123"))

	var user model.User
	require.NoError(t, db.Where("email = ?", "admin@prefeitura.gov.br").First(&user).Error)
	assert.Equal(t, model.RoleSuperAdmin, user.Role)

	// Second call is a no-op once any user exists.
	require.NoError(t, svc.EnsureSuperAdmin(context.Background(), "Administrador", "admin@prefeitura.gov.br", "mudar123"))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
