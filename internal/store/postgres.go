package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrelopes/siga-cadastro/backend/internal/models"
)

// PostgresStore handles usuario persistence against PostgreSQL. Every
// query borrows a pooled connection and returns it when the call
// completes, on success and failure paths alike.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the usuarios table if it doesn't exist. Uniqueness of
// username and email lives here, in the schema, not in the handlers.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS usuarios (
			id              UUID PRIMARY KEY,
			nome            VARCHAR(100) NOT NULL,
			username        VARCHAR(50)  UNIQUE NOT NULL,
			email           VARCHAR(255) UNIQUE NOT NULL,
			senha           VARCHAR(255) NOT NULL,
			cargo           VARCHAR(50)  NOT NULL,
			cpf             VARCHAR(14)  NOT NULL,
			rg              VARCHAR(12),
			telefone        VARCHAR(15),
			data_nascimento DATE,
			cep             VARCHAR(9)   NOT NULL,
			logradouro      VARCHAR(255) NOT NULL,
			numero          VARCHAR(10)  NOT NULL,
			complemento     VARCHAR(100),
			bairro          VARCHAR(100) NOT NULL,
			cidade          VARCHAR(100) NOT NULL,
			estado          VARCHAR(2)   NOT NULL,
			data_cadastro   TIMESTAMPTZ  DEFAULT NOW()
		)
	`)
	return err
}

// CreateUsuario inserts one row and returns the generated id. senhaHash
// is stored in place of the submitted password.
func (s *PostgresStore) CreateUsuario(ctx context.Context, u models.NovoUsuario, senhaHash string) (string, error) {
	id := uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO usuarios
			(id, nome, username, email, senha, cargo, cpf, rg, telefone,
			 data_nascimento, cep, logradouro, numero, complemento, bairro, cidade, estado)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		id, u.Nome, u.Username, u.Email, senhaHash, u.Cargo, u.CPF,
		nullable(u.RG), nullable(u.Telefone), nullable(u.DataNascimento),
		u.CEP, u.Logradouro, u.Numero, nullable(u.Complemento),
		u.Bairro, u.Cidade, u.Estado,
	)
	if err != nil {
		return "", fmt.Errorf("inserir usuario: %w", err)
	}
	return id, nil
}

// ListUsuarios returns the listing projection for every registered user.
// An empty table yields an empty, non-nil slice.
func (s *PostgresStore) ListUsuarios(ctx context.Context) ([]models.UsuarioListagem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, nome, username, email, cargo, cpf, COALESCE(telefone, ''),
		        cidade, estado, data_cadastro
		   FROM usuarios
		  ORDER BY data_cadastro`)
	if err != nil {
		return nil, fmt.Errorf("consultar usuarios: %w", err)
	}
	defer rows.Close()

	usuarios := make([]models.UsuarioListagem, 0)
	for rows.Next() {
		var u models.UsuarioListagem
		if err := rows.Scan(&u.IDUsuario, &u.Nome, &u.Username, &u.Email, &u.Cargo,
			&u.CPF, &u.Telefone, &u.Cidade, &u.Estado, &u.DataCadastro); err != nil {
			return nil, fmt.Errorf("ler usuario: %w", err)
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

// nullable maps empty optional fields to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
