package usuarios

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/andrelopes/siga-cadastro/backend/internal/models"
)

// UsuarioStore defines the persistence interface for user records.
type UsuarioStore interface {
	ListUsuarios(ctx context.Context) ([]models.UsuarioListagem, error)
	CreateUsuario(ctx context.Context, u models.NovoUsuario, senhaHash string) (string, error)
}

// Handler holds the listing and registration HTTP handlers.
type Handler struct {
	store  UsuarioStore
	logger *slog.Logger
}

func NewHandler(store UsuarioStore, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Listar serves GET /api/usuarios: the full projection as a JSON array,
// with no server-side filtering, sorting or pagination. An empty store is
// an empty array, not an error.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.store.ListUsuarios(r.Context())
	if err != nil {
		h.logger.Error("erro ao consultar usuários", "error", err)
		http.Error(w, "Erro no servidor ao consultar usuários.", http.StatusInternalServerError)
		return
	}

	h.logger.Info("consulta de usuários concluída", "registros", len(usuarios))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(usuarios)
}

// Cadastrar serves POST /api/cadastrarUsuario: presence check on the
// required fields (defense in depth, the client validates too), then a
// single insert. The password is hashed before it reaches the store and
// never reaches the log.
func (h *Handler) Cadastrar(w http.ResponseWriter, r *http.Request) {
	var req models.NovoUsuario
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"message": "JSON inválido.",
		})
		return
	}

	if faltando := camposFaltando(req); len(faltando) > 0 {
		h.logger.Info("cadastro recusado por campos obrigatórios ausentes", "campos", faltando)
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Por favor, preencha todos os campos obrigatórios.",
		})
		return
	}

	senhaHash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("erro ao processar senha", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Erro interno do servidor.",
			"error":   "falha ao processar a senha",
		})
		return
	}

	id, err := h.store.CreateUsuario(r.Context(), req, string(senhaHash))
	if err != nil {
		h.logger.Error("erro no cadastro de usuário", "username", req.Username, "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Erro interno do servidor.",
			"error":   err.Error(),
		})
		return
	}

	h.logger.Info("usuário cadastrado", "id", id, "username", req.Username)
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Usuário cadastrado com sucesso!",
	})
}

// camposFaltando returns the required fields that arrived empty. The
// optional ones (rg, telefone, dataNascimento, complemento) are not
// checked.
func camposFaltando(u models.NovoUsuario) []string {
	obrigatorios := []struct {
		campo string
		valor string
	}{
		{"nome", u.Nome},
		{"username", u.Username},
		{"email", u.Email},
		{"senha", u.Senha},
		{"cargo", u.Cargo},
		{"cpf", u.CPF},
		{"cep", u.CEP},
		{"logradouro", u.Logradouro},
		{"numero", u.Numero},
		{"bairro", u.Bairro},
		{"cidade", u.Cidade},
		{"estado", u.Estado},
	}

	var faltando []string
	for _, o := range obrigatorios {
		if strings.TrimSpace(o.valor) == "" {
			faltando = append(faltando, o.campo)
		}
	}
	return faltando
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
