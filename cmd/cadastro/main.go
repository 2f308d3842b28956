package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/andrelopes/siga-cadastro/backend/internal/cep"
	"github.com/andrelopes/siga-cadastro/backend/internal/form"
	"github.com/andrelopes/siga-cadastro/backend/internal/logging"
)

// cadastro drives the registration form from the command line: it reads
// field values from a JSON file, runs the same masking, validation and
// CEP autofill the form applies, and submits the record to the backend.
func main() {
	arquivo := flag.String("arquivo", "cadastro.json", "arquivo JSON com os valores dos campos")
	api := flag.String("api", "http://localhost:3000", "URL base do back-end")
	viacep := flag.String("viacep", "https://viacep.com.br", "URL base do provedor de CEP")
	flag.Parse()

	raw, err := os.ReadFile(*arquivo)
	if err != nil {
		log.Fatalf("ler %s: %v", *arquivo, err)
	}
	var valores map[string]string
	if err := json.Unmarshal(raw, &valores); err != nil {
		log.Fatalf("JSON inválido em %s: %v", *arquivo, err)
	}

	logger := logging.New("info", "text")
	f := form.NovoFormulario(cep.NewClient(*viacep, logger), form.NewCadastroClient(*api))
	ctx := context.Background()

	for _, id := range f.Campos() {
		if valor, ok := valores[id]; ok {
			f.SetValor(id, valor)
		}
	}

	// Autofill replaces the address fields, exactly as leaving the CEP
	// field does in the browser.
	f.BlurCEP(ctx)

	estado, mensagem := f.Enviar(ctx)
	fmt.Println(mensagem)
	if estado != form.Sucesso {
		for _, id := range f.Campos() {
			if marca, ok := f.Marca(id); ok && !marca.Valido {
				fmt.Printf("  %s: %s\n", id, marca.Mensagem)
			}
		}
		os.Exit(1)
	}
}
