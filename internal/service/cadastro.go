package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"cadastromunicipal.com/internal/domain"
	"cadastromunicipal.com/internal/model"
)

// CadastroServiceImpl implements domain.CadastroService on top of GORM.
type CadastroServiceImpl struct {
	db *gorm.DB
}

func NewCadastroService(db *gorm.DB) *CadastroServiceImpl {
	return &CadastroServiceImpl{db: db}
}

// Create validates the intake form, uppercases every textual field present
// and persists a new record. There is no uniqueness check on the CNPJ:
// duplicate submissions for the same company are accepted.
func (s *CadastroServiceImpl) Create(ctx context.Context, input *model.CadastroInput) (*model.Cadastro, error) {
	if err := validateRequired(input); err != nil {
		return nil, err
	}

	cadastro := &model.Cadastro{
		RazaoSocial:          upper(input.RazaoSocial),
		CNPJ:                 upper(input.CNPJ),
		PorteEmpresa:         upper(input.PorteEmpresa),
		EnquadramentoEmpresa: upper(input.EnquadramentoEmpresa),
		Cnae:                 upperOptional(input.Cnae),
		InscricaoMunicipal:   upperOptional(input.InscricaoMunicipal),
		InscricaoEstadual:    upperOptional(input.InscricaoEstadual),
		ProdutosServicos:     upper(input.ProdutosServicos),
		CEP:                  upper(input.CEP),
		Logradouro:           upper(input.Logradouro),
		NumeroLogradouro:     upper(input.NumeroLogradouro),
		Complemento:          upperOptional(input.Complemento),
		Bairro:               upper(input.Bairro),
		Municipio:            upper(input.Municipio),
		Estado:               upper(input.Estado),
		Email:                upper(input.Email),
		Telefone:             upper(input.Telefone),
		Responsavel:          upper(input.Responsavel),
	}

	if err := s.db.WithContext(ctx).Create(cadastro).Error; err != nil {
		return nil, domain.NewInternalError("falha ao criar cadastro", err)
	}

	return cadastro, nil
}

// List returns every registration record in store order. No pagination or
// filtering happens here; callers needing a stable order sort themselves.
func (s *CadastroServiceImpl) List(ctx context.Context) ([]model.Cadastro, error) {
	var cadastros []model.Cadastro
	if err := s.db.WithContext(ctx).Find(&cadastros).Error; err != nil {
		return nil, domain.NewInternalError("falha ao listar cadastros", err)
	}
	return cadastros, nil
}

// GetByID parses the raw id and fetches the matching record.
func (s *CadastroServiceImpl) GetByID(ctx context.Context, id string) (*model.Cadastro, error) {
	if id == "" {
		return nil, domain.NewBadRequestError("BAD_REQUEST")
	}
	key, err := strconv.Atoi(id)
	if err != nil {
		return nil, domain.NewBadRequestError("BAD_REQUEST")
	}

	var cadastro model.Cadastro
	if err := s.db.WithContext(ctx).First(&cadastro, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("NOT_FOUND")
		}
		return nil, domain.NewInternalError("falha ao buscar cadastro", err)
	}
	return &cadastro, nil
}

func validateRequired(input *model.CadastroInput) error {
	required := []string{
		input.RazaoSocial,
		input.CNPJ,
		input.PorteEmpresa,
		input.EnquadramentoEmpresa,
		input.ProdutosServicos,
		input.CEP,
		input.Logradouro,
		input.NumeroLogradouro,
		input.Bairro,
		input.Municipio,
		input.Estado,
		input.Email,
		input.Telefone,
		input.Responsavel,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return domain.NewBadRequestError("Preencha as informações.")
		}
	}
	return nil
}

func upper(s string) string {
	return strings.ToUpper(s)
}

// upperOptional normalizes the two "absent" shapes (nil pointer, blank
// string) to a single nil, so the column is NULL whenever the citizen left
// the field empty.
func upperOptional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.ToUpper(*s)
	return &v
}
