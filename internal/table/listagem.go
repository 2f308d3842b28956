package table

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andrelopes/siga-cadastro/backend/internal/models"
)

// ListagemClient fetches the users listing from the backend. The table
// loads it once, before the first render; everything after that is local.
type ListagemClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewListagemClient(baseURL string) *ListagemClient {
	return &ListagemClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Listar calls GET /api/usuarios and returns the full row set.
func (c *ListagemClient) Listar(ctx context.Context) ([]models.UsuarioListagem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/usuarios", nil)
	if err != nil {
		return nil, fmt.Errorf("listagem: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listagem %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("listagem /api/usuarios retornou %d: %s", resp.StatusCode, string(body))
	}

	var usuarios []models.UsuarioListagem
	if err := json.NewDecoder(resp.Body).Decode(&usuarios); err != nil {
		return nil, fmt.Errorf("listagem /api/usuarios: decode: %w", err)
	}
	return usuarios, nil
}

func colunasUsuario() map[string]func(models.UsuarioListagem) string {
	return map[string]func(models.UsuarioListagem) string{
		"IDUsuario": func(u models.UsuarioListagem) string { return u.IDUsuario },
		"Nome":      func(u models.UsuarioListagem) string { return u.Nome },
		"Username":  func(u models.UsuarioListagem) string { return u.Username },
		"Email":     func(u models.UsuarioListagem) string { return u.Email },
		"Cargo":     func(u models.UsuarioListagem) string { return u.Cargo },
		"CPF":       func(u models.UsuarioListagem) string { return u.CPF },
		"Telefone": func(u models.UsuarioListagem) string {
			if u.Telefone == "" {
				return "N/A"
			}
			return u.Telefone
		},
		"Cidade": func(u models.UsuarioListagem) string { return u.Cidade },
		"Estado": func(u models.UsuarioListagem) string { return u.Estado },
		"DataCadastro": func(u models.UsuarioListagem) string {
			if u.DataCadastro.IsZero() {
				return "N/A"
			}
			return u.DataCadastro.Format("02/01/2006")
		},
	}
}

// NovaTabelaUsuarios builds the users table over rows already fetched by
// ListagemClient, searchable by name, email and role.
func NovaTabelaUsuarios(usuarios []models.UsuarioListagem) *Tabela[models.UsuarioListagem] {
	return NovaTabela(usuarios, colunasUsuario(),
		[]string{"Nome", "Email", "Cargo"}, 5,
		"Nenhum usuário encontrado.")
}
