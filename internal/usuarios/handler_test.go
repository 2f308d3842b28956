package usuarios

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/andrelopes/siga-cadastro/backend/internal/models"
)

type stubStore struct {
	usuarios []models.UsuarioListagem
	listErr  error

	criados   []models.NovoUsuario
	hashes    []string
	createErr error
}

func (s *stubStore) ListUsuarios(ctx context.Context) ([]models.UsuarioListagem, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.usuarios, nil
}

func (s *stubStore) CreateUsuario(ctx context.Context, u models.NovoUsuario, senhaHash string) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.criados = append(s.criados, u)
	s.hashes = append(s.hashes, senhaHash)
	return "id-1", nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func corpoCadastro(sobrescreve map[string]string) string {
	campos := map[string]string{
		"nome":           "João da Silva",
		"username":       "joaosilva",
		"email":          "joao@exemplo.com",
		"senha":          "Senha@123",
		"dataNascimento": "1990-05-20",
		"cpf":            "111.444.777-35",
		"rg":             "12.345.678-9",
		"telefone":       "(11) 98765-4321",
		"cargo":          "Aluno",
		"cep":            "01001-000",
		"logradouro":     "Praça da Sé",
		"numero":         "100",
		"complemento":    "",
		"bairro":         "Sé",
		"cidade":         "São Paulo",
		"estado":         "SP",
	}
	for k, v := range sobrescreve {
		campos[k] = v
	}
	raw, _ := json.Marshal(campos)
	return string(raw)
}

func TestListarVazio(t *testing.T) {
	h := NewHandler(&stubStore{usuarios: []models.UsuarioListagem{}}, testLogger())

	rec := httptest.NewRecorder()
	h.Listar(rec, httptest.NewRequest(http.MethodGet, "/api/usuarios", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if corpo := strings.TrimSpace(rec.Body.String()); corpo != "[]" {
		t.Fatalf("corpo = %q, quer []", corpo)
	}
}

func TestListarComRegistros(t *testing.T) {
	h := NewHandler(&stubStore{usuarios: []models.UsuarioListagem{
		{
			IDUsuario:    "a",
			Nome:         "Ana Souza",
			Username:     "anasouza",
			Email:        "ana@exemplo.com",
			Cargo:        "Professor",
			CPF:          "111.444.777-35",
			Cidade:       "São Paulo",
			Estado:       "SP",
			DataCadastro: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
		},
	}}, testLogger())

	rec := httptest.NewRecorder()
	h.Listar(rec, httptest.NewRequest(http.MethodGet, "/api/usuarios", nil))

	var corpo []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &corpo); err != nil {
		t.Fatalf("corpo inválido: %v", err)
	}
	if len(corpo) != 1 {
		t.Fatalf("quer 1 registro, teve %d", len(corpo))
	}
	if corpo[0]["Nome"] != "Ana Souza" || corpo[0]["IDUsuario"] != "a" {
		t.Fatalf("registro inesperado: %+v", corpo[0])
	}
	if _, ok := corpo[0]["senha"]; ok {
		t.Fatal("a listagem não pode expor senha")
	}
}

func TestListarErroDoBanco(t *testing.T) {
	h := NewHandler(&stubStore{listErr: errors.New("conexão recusada")}, testLogger())

	rec := httptest.NewRecorder()
	h.Listar(rec, httptest.NewRequest(http.MethodGet, "/api/usuarios", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if corpo := strings.TrimSpace(rec.Body.String()); corpo != "Erro no servidor ao consultar usuários." {
		t.Fatalf("corpo = %q", corpo)
	}
}

func TestCadastrarSucesso(t *testing.T) {
	store := &stubStore{}
	h := NewHandler(store, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cadastrarUsuario",
		strings.NewReader(corpoCadastro(nil)))
	h.Cadastrar(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, corpo %s", rec.Code, rec.Body.String())
	}

	var corpo map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &corpo); err != nil {
		t.Fatalf("corpo inválido: %v", err)
	}
	if corpo["message"] != "Usuário cadastrado com sucesso!" {
		t.Fatalf("message = %q", corpo["message"])
	}

	if len(store.criados) != 1 {
		t.Fatalf("quer 1 insert, teve %d", len(store.criados))
	}
	if store.criados[0].Username != "joaosilva" {
		t.Fatalf("username persistido = %q", store.criados[0].Username)
	}

	// O store recebe o hash, nunca a senha em claro.
	hash := store.hashes[0]
	if hash == "Senha@123" {
		t.Fatal("senha chegou em claro no store")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("Senha@123")); err != nil {
		t.Fatalf("hash não corresponde à senha: %v", err)
	}
}

func TestCadastrarJSONInvalido(t *testing.T) {
	store := &stubStore{}
	h := NewHandler(store, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cadastrarUsuario",
		strings.NewReader("{nome:"))
	h.Cadastrar(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var corpo map[string]string
	json.Unmarshal(rec.Body.Bytes(), &corpo)
	if corpo["message"] != "JSON inválido." {
		t.Fatalf("message = %q", corpo["message"])
	}
	if len(store.criados) != 0 {
		t.Fatal("não deveria ter havido insert")
	}
}

func TestCadastrarCampoObrigatorioAusente(t *testing.T) {
	store := &stubStore{}
	h := NewHandler(store, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cadastrarUsuario",
		strings.NewReader(corpoCadastro(map[string]string{"cpf": "   "})))
	h.Cadastrar(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var corpo map[string]string
	json.Unmarshal(rec.Body.Bytes(), &corpo)
	if corpo["message"] != "Por favor, preencha todos os campos obrigatórios." {
		t.Fatalf("message = %q", corpo["message"])
	}
	if len(store.criados) != 0 {
		t.Fatal("não deveria ter havido insert")
	}
}

func TestCadastrarOpcionaisVaziosPassam(t *testing.T) {
	store := &stubStore{}
	h := NewHandler(store, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cadastrarUsuario",
		strings.NewReader(corpoCadastro(map[string]string{
			"rg": "", "telefone": "", "dataNascimento": "", "complemento": "",
		})))
	h.Cadastrar(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, corpo %s", rec.Code, rec.Body.String())
	}
	if len(store.criados) != 1 {
		t.Fatalf("quer 1 insert, teve %d", len(store.criados))
	}
}

func TestCadastrarErroDoBanco(t *testing.T) {
	h := NewHandler(&stubStore{createErr: errors.New("violação de chave única")}, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cadastrarUsuario",
		strings.NewReader(corpoCadastro(nil)))
	h.Cadastrar(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var corpo map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &corpo); err != nil {
		t.Fatalf("corpo inválido: %v", err)
	}
	if corpo["message"] != "Erro interno do servidor." {
		t.Fatalf("message = %q", corpo["message"])
	}
	if corpo["error"] != "violação de chave única" {
		t.Fatalf("error = %q", corpo["error"])
	}
}
