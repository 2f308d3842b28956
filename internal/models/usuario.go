package models

import "time"

// UsuarioListagem is the fixed projection returned by GET /api/usuarios.
// Telefone comes back empty (rendered as "N/A" by the listing) when the
// column is NULL.
type UsuarioListagem struct {
	IDUsuario    string    `json:"IDUsuario"`
	Nome         string    `json:"Nome"`
	Username     string    `json:"Username"`
	Email        string    `json:"Email"`
	Cargo        string    `json:"Cargo"`
	CPF          string    `json:"CPF"`
	Telefone     string    `json:"Telefone"`
	Cidade       string    `json:"Cidade"`
	Estado       string    `json:"Estado"`
	DataCadastro time.Time `json:"DataCadastro"`
}

// NovoUsuario is the JSON body for POST /api/cadastrarUsuario. Optional
// fields (rg, telefone, dataNascimento, complemento) arrive as empty
// strings when unset.
type NovoUsuario struct {
	Nome           string `json:"nome"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Senha          string `json:"senha"`
	DataNascimento string `json:"dataNascimento"`
	CPF            string `json:"cpf"`
	RG             string `json:"rg"`
	Telefone       string `json:"telefone"`
	Cargo          string `json:"cargo"`
	CEP            string `json:"cep"`
	Logradouro     string `json:"logradouro"`
	Numero         string `json:"numero"`
	Complemento    string `json:"complemento"`
	Bairro         string `json:"bairro"`
	Cidade         string `json:"cidade"`
	Estado         string `json:"estado"`
}
