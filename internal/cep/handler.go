package cep

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the lookup as a small proxy endpoint, mirroring the
// provider's response contract so front-ends can point at either URL.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// Consultar serves GET /api/cep/{cep}. Unknown or malformed CEPs answer
// 200 with {"erro": true}, the same shape the provider uses.
func (h *Handler) Consultar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	endereco, err := h.client.Lookup(r.Context(), chi.URLParam(r, "cep"))
	if errors.Is(err, ErrNaoEncontrado) {
		w.Write([]byte(`{"erro":true}`))
		return
	}
	json.NewEncoder(w).Encode(endereco)
}
