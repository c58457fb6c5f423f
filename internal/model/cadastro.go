package model

import "time"

// Cadastro is one company's registration submitted through the public
// intake form. Optional fields are pointers: nil means the citizen left
// the field blank and the column stays NULL.
//
// CNPJ is indexed but deliberately NOT unique: the intake accepts
// duplicate submissions for the same company.
type Cadastro struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RazaoSocial          string  `gorm:"not null" json:"razao_social"`
	CNPJ                 string  `gorm:"index;not null" json:"cnpj"`
	PorteEmpresa         string  `gorm:"not null" json:"porte_empresa"`
	EnquadramentoEmpresa string  `gorm:"not null" json:"enquadramento_empresa"`
	Cnae                 *string `json:"cnae"`
	InscricaoMunicipal   *string `json:"inscricao_municipal"`
	InscricaoEstadual    *string `json:"inscricao_estadual"`
	ProdutosServicos     string  `gorm:"not null" json:"produtos_servicos"`

	CEP              string  `gorm:"not null" json:"cep"`
	Logradouro       string  `gorm:"not null" json:"logradouro"`
	NumeroLogradouro string  `gorm:"not null" json:"numero_logradouro"`
	Complemento      *string `json:"complemento"`
	Bairro           string  `gorm:"not null" json:"bairro"`
	Municipio        string  `gorm:"not null" json:"municipio"`
	Estado           string  `gorm:"not null" json:"estado"`

	Email       string `gorm:"not null" json:"email"`
	Telefone    string `gorm:"not null" json:"telefone"`
	Responsavel string `gorm:"not null" json:"responsavel"`

	CreatedAt time.Time `json:"created_at"`
	// Records are never updated through the registration surface, so this
	// stays NULL. autoUpdateTime is disabled to keep it out of GORM's hands.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// CadastroInput carries the intake form fields as submitted. Field names
// mirror the public form.
type CadastroInput struct {
	RazaoSocial          string  `json:"razao_social"`
	CNPJ                 string  `json:"cnpj"`
	PorteEmpresa         string  `json:"porte_empresa"`
	EnquadramentoEmpresa string  `json:"enquadramento_empresa"`
	Cnae                 *string `json:"cnae"`
	InscricaoMunicipal   *string `json:"inscricao_municipal"`
	InscricaoEstadual    *string `json:"inscricao_estadual"`
	ProdutosServicos     string  `json:"produtos_servicos"`
	CEP                  string  `json:"cep"`
	Logradouro           string  `json:"logradouro"`
	NumeroLogradouro     string  `json:"numero_logradouro"`
	Complemento          *string `json:"complemento"`
	Bairro               string  `json:"bairro"`
	Municipio            string  `json:"municipio"`
	Estado               string  `json:"estado"`
	Email                string  `json:"email"`
	Telefone             string  `json:"telefone"`
	Responsavel          string  `json:"responsavel"`
}
