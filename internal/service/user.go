package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cadastromunicipal.com/internal/domain"
	"cadastromunicipal.com/internal/model"
)

// Credential failure modes surface as plain Portuguese messages, not as the
// structured signal codes used elsewhere. The intake frontend renders these
// strings verbatim, so both error surfaces stay distinct.
var (
	ErrConfirmacaoSenha      = errors.New("Confirme a nova senha corretamente.")
	ErrUsuarioNaoAutenticado = errors.New("Usuário não está autenticado.")
	ErrUsuarioNaoExiste      = errors.New("Usuário não existe.")
	ErrSenhaAtualIncorreta   = errors.New("Senha atual incorreta.")
)

// UserServiceImpl implements domain.UserService on top of GORM.
type UserServiceImpl struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserServiceImpl {
	return &UserServiceImpl{db: db}
}

// Authenticate checks a login attempt. Any miss (unknown email or wrong
// password) collapses into the same generic failure.
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewUnauthorizedError("Credenciais inválidas.")
		}
		return nil, domain.NewInternalError("falha ao buscar usuário", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.NewUnauthorizedError("Credenciais inválidas.")
	}
	return &user, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("NOT_FOUND")
		}
		return nil, domain.NewInternalError("falha ao buscar usuário", err)
	}
	return &user, nil
}

// ChangePassword rotates the caller's credential. Preconditions run in a
// fixed order; only the stored hash changes on success. Existing sessions
// stay valid after the rotation.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, email, current, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrConfirmacaoSenha
	}
	if email == "" {
		return ErrUsuarioNaoAutenticado
	}

	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNaoExiste
		}
		return domain.NewInternalError("falha ao buscar usuário", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrSenhaAtualIncorreta
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewInternalError("falha ao gerar hash da senha", err)
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("password", string(hashed)).Error; err != nil {
		return domain.NewInternalError("falha ao atualizar senha", err)
	}
	return nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, domain.NewInternalError("falha ao listar usuários", err)
	}
	return users, nil
}

// CreateUser registers a staff account. Role defaults to USER.
func (s *UserServiceImpl) CreateUser(ctx context.Context, name, email, password, role string) (*model.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, domain.NewBadRequestError("Informe e-mail e senha.")
	}
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return nil, domain.NewBadRequestError("Papel inválido.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("falha ao gerar hash da senha", err)
	}

	user := model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, domain.NewConflictError("E-mail já cadastrado.")
	}
	return &user, nil
}

// UpdateRole reassigns an account's role to one of the known constants.
func (s *UserServiceImpl) UpdateRole(ctx context.Context, id uint, role string) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, domain.NewBadRequestError("Papel inválido.")
	}

	var user model.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("NOT_FOUND")
		}
		return nil, domain.NewInternalError("falha ao buscar usuário", err)
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("role", role).Error; err != nil {
		return nil, domain.NewInternalError("falha ao atualizar papel", err)
	}
	return &user, nil
}

// EnsureSuperAdmin seeds the bootstrap account when the users table is
// empty, so a fresh deployment can log in at all.
func (s *UserServiceImpl) EnsureSuperAdmin(ctx context.Context, name, email, password string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return domain.NewInternalError("falha ao contar usuários", err)
	}
	if count > 0 {
		return nil
	}
	if email == "" || password == "" {
		log.Println("Auth: users table empty and no seed account configured")
		return nil
	}

	log.Println("Auth: No users found. Creating seed super-admin user...")
	if _, err := s.CreateUser(ctx, name, email, password, model.RoleSuperAdmin); err != nil {
		return err
	}
	log.Printf("Auth: Created seed user: %s", email)
	return nil
}
