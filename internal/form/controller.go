package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/andrelopes/siga-cadastro/backend/internal/cep"
)

// Estado tracks where the registration flow is.
type Estado int

const (
	Editando Estado = iota
	Validando
	Enviando
	Sucesso
	Falha
)

// LookupEndereco resolves a CEP into address fields. *cep.Client
// satisfies it.
type LookupEndereco interface {
	Lookup(ctx context.Context, cep string) (*cep.Endereco, error)
}

// Formulario wires the masks, the validator and the CEP autofill to the
// registration fields and aggregates per-field validity into one submit
// decision. Everything runs synchronously; the only asynchronous
// boundaries are the lookup and the create request.
type Formulario struct {
	campos  map[string]*Campo
	ordem   []string
	marcas  map[string]Resultado
	estado  Estado
	lookup  LookupEndereco
	cliente *CadastroClient
}

// NovoFormulario builds the registration form with the fixed field set:
// twelve required fields, four optional ones and the password
// confirmation.
func NovoFormulario(lookup LookupEndereco, cliente *CadastroClient) *Formulario {
	f := &Formulario{
		campos:  make(map[string]*Campo),
		marcas:  make(map[string]Resultado),
		lookup:  lookup,
		cliente: cliente,
	}
	for _, c := range []Campo{
		{ID: "nome", Kind: Texto, Obrigatorio: true},
		{ID: "username", Kind: Texto, Obrigatorio: true},
		{ID: "email", Kind: Email, Obrigatorio: true},
		{ID: "senha", Kind: Senha, Obrigatorio: true},
		{ID: "confirmarSenha", Kind: Senha, Obrigatorio: true},
		{ID: "dataNascimento", Kind: DataNascimento},
		{ID: "cpf", Kind: CPF, Obrigatorio: true},
		{ID: "rg", Kind: RG},
		{ID: "telefone", Kind: Telefone},
		{ID: "cargo", Kind: Texto, Obrigatorio: true},
		{ID: "cep", Kind: CEP, Obrigatorio: true},
		{ID: "logradouro", Kind: Texto, Obrigatorio: true},
		{ID: "numero", Kind: Texto, Obrigatorio: true},
		{ID: "complemento", Kind: Texto},
		{ID: "bairro", Kind: Texto, Obrigatorio: true},
		{ID: "cidade", Kind: Texto, Obrigatorio: true},
		{ID: "estado", Kind: Texto, Obrigatorio: true},
	} {
		campo := c
		f.campos[campo.ID] = &campo
		f.ordem = append(f.ordem, campo.ID)
	}
	return f
}

// Campos returns the field ids in form order.
func (f *Formulario) Campos() []string {
	return append([]string(nil), f.ordem...)
}

// Valor returns the current (masked) value of a field.
func (f *Formulario) Valor(id string) string {
	if c, ok := f.campos[id]; ok {
		return c.Valor
	}
	return ""
}

// Marca returns the visual valid/invalid marker of a field, if the field
// has been validated at all.
func (f *Formulario) Marca(id string) (Resultado, bool) {
	r, ok := f.marcas[id]
	return r, ok
}

// EstadoAtual reports the form state.
func (f *Formulario) EstadoAtual() Estado {
	return f.estado
}

// SetValor applies the field's input mask and revalidates the field,
// mirroring the per-keystroke behavior of the form. The password
// confirmation is compared against the password instead of validated on
// its own.
func (f *Formulario) SetValor(id, valor string) Resultado {
	c, ok := f.campos[id]
	if !ok {
		return invalido("campo desconhecido: " + id)
	}

	switch c.Kind {
	case CEP:
		valor = FormatCEP(valor)
	case CPF:
		valor = FormatCPF(valor)
	case Telefone:
		valor = FormatTelefone(valor)
	}
	c.Valor = valor

	var r Resultado
	if id == "confirmarSenha" {
		r = ConferirSenhas(f.campos["senha"].Valor, valor)
	} else {
		r = ValidarCampo(*c)
	}
	f.marcas[id] = r
	return r
}

// BlurCEP runs the address autofill that fires when the CEP field loses
// focus. The lookup only happens once the masked value has the full
// 9-character form; on success the address fields are filled and marked
// valid, otherwise they are cleared and the CEP is marked invalid.
func (f *Formulario) BlurCEP(ctx context.Context) {
	valor := f.campos["cep"].Valor
	if len(valor) != 9 {
		f.limparEndereco()
		f.marcas["cep"] = invalido("O CEP deve ter o formato 99999-999.")
		return
	}

	endereco, err := f.lookup.Lookup(ctx, valor)
	if err != nil {
		f.limparEndereco()
		f.marcas["cep"] = invalido("CEP não encontrado ou inválido.")
		return
	}

	f.campos["logradouro"].Valor = endereco.Logradouro
	f.campos["bairro"].Valor = endereco.Bairro
	f.campos["cidade"].Valor = endereco.Localidade
	f.campos["estado"].Valor = endereco.UF
	for _, id := range []string{"cep", "logradouro", "bairro", "cidade", "estado"} {
		f.marcas[id] = Resultado{Valido: true}
	}
}

// Enviar re-runs every required-field validation plus the password
// confirmation, and performs the create request only when all of them
// pass. Exactly one request per call, never retried. The returned Estado
// is Sucesso or Falha; the form itself goes back to Editando, cleared on
// success and untouched otherwise.
func (f *Formulario) Enviar(ctx context.Context) (Estado, string) {
	f.estado = Validando

	valido := true
	for _, id := range f.ordem {
		c := f.campos[id]
		if !c.Obrigatorio || id == "confirmarSenha" {
			continue
		}
		r := ValidarCampo(*c)
		f.marcas[id] = r
		if !r.Valido {
			valido = false
		}
	}

	// Listeners may be stale: the comparison always runs again here.
	conf := ConferirSenhas(f.campos["senha"].Valor, f.campos["confirmarSenha"].Valor)
	f.marcas["confirmarSenha"] = conf
	if !conf.Valido {
		valido = false
	}

	if !valido {
		f.estado = Editando
		return Falha, "Por favor, corrija os erros no formulário."
	}

	f.estado = Enviando
	resposta, err := f.cliente.Enviar(ctx, f.serializar())
	if err != nil {
		f.estado = Editando
		return Falha, "Não foi possível conectar ao servidor de cadastro. Verifique se o back-end está rodando."
	}
	if !resposta.OK {
		f.estado = Editando
		if resposta.Message != "" {
			return Falha, resposta.Message
		}
		return Falha, "Erro ao cadastrar usuário. Tente novamente."
	}

	f.Limpar()
	f.estado = Editando
	if resposta.Message != "" {
		return Sucesso, resposta.Message
	}
	return Sucesso, "Usuário cadastrado com sucesso!"
}

// Limpar resets every field value and clears all valid/invalid markers.
func (f *Formulario) Limpar() {
	for _, c := range f.campos {
		c.Valor = ""
	}
	f.marcas = make(map[string]Resultado)
}

// serializar collects the 16 record fields (the confirmation stays
// client-side), optionals included as empty strings.
func (f *Formulario) serializar() map[string]string {
	dados := make(map[string]string, len(f.ordem)-1)
	for _, id := range f.ordem {
		if id == "confirmarSenha" {
			continue
		}
		dados[id] = f.campos[id].Valor
	}
	return dados
}

func (f *Formulario) limparEndereco() {
	for _, id := range []string{"logradouro", "bairro", "cidade", "estado"} {
		f.campos[id].Valor = ""
		delete(f.marcas, id)
	}
}

// CadastroClient submits a completed registration to the backend.
type CadastroClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCadastroClient(baseURL string) *CadastroClient {
	return &CadastroClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// RespostaCadastro is the backend's answer to a create request.
type RespostaCadastro struct {
	OK      bool
	Message string
	Err     string
}

// Enviar posts the serialized form to /api/cadastrarUsuario. A non-2xx
// status is not an error here: the caller decides what to show.
func (c *CadastroClient) Enviar(ctx context.Context, dados map[string]string) (*RespostaCadastro, error) {
	body, err := json.Marshal(dados)
	if err != nil {
		return nil, fmt.Errorf("cadastro: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/cadastrarUsuario", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cadastro: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cadastro %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	return &RespostaCadastro{
		OK:      resp.StatusCode >= 200 && resp.StatusCode < 300,
		Message: payload.Message,
		Err:     payload.Err,
	}, nil
}
