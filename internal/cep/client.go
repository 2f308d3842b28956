package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNaoEncontrado is returned whenever a lookup cannot produce an
// address: the input is not a full CEP, the provider does not know it, or
// the provider cannot be reached. Callers never see transport errors.
var ErrNaoEncontrado = errors.New("cep não encontrado")

// Endereco carries the address fields returned by the provider.
type Endereco struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
}

// Client resolves a CEP into address fields via a ViaCEP-compatible
// provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	cache    *redis.Client
	cacheTTL time.Duration
}

func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// WithCache stores successful lookups in Redis. CEP-to-address mappings
// change rarely, so a long TTL is fine. Cache failures never fail a
// lookup.
func (c *Client) WithCache(rdb *redis.Client, ttl time.Duration) *Client {
	c.cache = rdb
	c.cacheTTL = ttl
	return c
}

// Lookup resolves cep to an address. The input must normalize to exactly
// 8 digits, otherwise ErrNaoEncontrado is returned without calling the
// provider.
func (c *Client) Lookup(ctx context.Context, cep string) (*Endereco, error) {
	digitos := somenteDigitos(cep)
	if len(digitos) != 8 {
		return nil, ErrNaoEncontrado
	}

	if c.cache != nil {
		if raw, err := c.cache.Get(ctx, "cep:"+digitos).Result(); err == nil {
			var e Endereco
			if json.Unmarshal([]byte(raw), &e) == nil {
				return &e, nil
			}
		}
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digitos)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ErrNaoEncontrado
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("erro ao consultar o provedor de CEP", "cep", digitos, "error", err)
		return nil, ErrNaoEncontrado
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("provedor de CEP retornou status inesperado", "cep", digitos, "status", resp.StatusCode)
		return nil, ErrNaoEncontrado
	}

	var payload struct {
		Endereco
		Erro bool `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("resposta inválida do provedor de CEP", "cep", digitos, "error", err)
		return nil, ErrNaoEncontrado
	}
	if payload.Erro {
		return nil, ErrNaoEncontrado
	}

	if c.cache != nil {
		if raw, err := json.Marshal(payload.Endereco); err == nil {
			_ = c.cache.Set(ctx, "cep:"+digitos, raw, c.cacheTTL).Err()
		}
	}
	return &payload.Endereco, nil
}

func somenteDigitos(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
