package form

import (
	"regexp"
	"strings"
	"time"
)

// Kind selects the validation rule applied to a field after the required
// check.
type Kind int

const (
	Texto Kind = iota
	Email
	Senha
	CPF
	RG
	Telefone
	CEP
	DataNascimento
)

// Campo describes one form field at validation time.
type Campo struct {
	ID          string
	Kind        Kind
	Obrigatorio bool
	Valor       string
}

// Resultado is the verdict for a single field: the visual valid/invalid
// marker plus the feedback message shown next to it.
type Resultado struct {
	Valido   bool
	Mensagem string
}

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cpfRegex      = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	rgRegex       = regexp.MustCompile(`^\d{1,2}\.\d{3}\.\d{3}-[\dX]$`)
	telefoneRegex = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)

	// Senha complexity, checked piecewise: RE2 has no lookahead.
	temMinuscula   = regexp.MustCompile(`[a-z]`)
	temMaiuscula   = regexp.MustCompile(`[A-Z]`)
	temDigito      = regexp.MustCompile(`\d`)
	temSimbolo     = regexp.MustCompile("[!@#$%^&*()_+={}\\[\\]|\\\\:;\"'<>,.?/~`]")
	senhaPermitida = regexp.MustCompile("^[A-Za-z0-9!@#$%^&*()_+={}\\[\\]|\\\\:;\"'<>,.?/~`]+$")
)

// ValidarCampo applies the field rules in order; the first failing rule
// wins. Optional fields left empty are always valid.
func ValidarCampo(c Campo) Resultado {
	valor := strings.TrimSpace(c.Valor)
	if valor == "" {
		if c.Obrigatorio {
			return invalido("Este campo é obrigatório.")
		}
		return Resultado{Valido: true}
	}

	switch c.Kind {
	case Email:
		if !emailRegex.MatchString(valor) {
			return invalido("Por favor, insira um e-mail válido.")
		}
	case Senha:
		if !senhaValida(c.Valor) {
			return invalido("A senha deve ter no mínimo 8 caracteres, incluindo letras maiúsculas, minúsculas, números e caracteres especiais.")
		}
	case CPF:
		if !cpfRegex.MatchString(valor) {
			return invalido("O CPF deve ter o formato 999.999.999-99.")
		}
		if !ValidarCPF(valor) {
			return invalido("CPF inválido.")
		}
	case RG:
		if !rgRegex.MatchString(valor) {
			return invalido("O RG deve ter o formato 99.999.999-9 ou 99.999.999-X.")
		}
	case Telefone:
		if !telefoneRegex.MatchString(valor) {
			return invalido("O telefone deve ter o formato (99) 99999-9999 ou (99) 9999-9999.")
		}
	case DataNascimento:
		data, err := time.Parse("2006-01-02", valor)
		if err != nil || data.After(time.Now()) {
			return invalido("Por favor, insira uma data de nascimento válida no passado.")
		}
	}
	return Resultado{Valido: true}
}

// ConferirSenhas reports whether the confirmation matches the password.
// Raw equality: no trimming, no masking.
func ConferirSenhas(senha, confirmacao string) Resultado {
	if senha != confirmacao {
		return invalido("As senhas não conferem.")
	}
	return Resultado{Valido: true}
}

// ValidarCPF checks the two verification digits of an 11-digit CPF.
// Sequences of a single repeated digit are well-formed but known invalid.
func ValidarCPF(cpf string) bool {
	d := somenteDigitos(cpf)
	if len(d) != 11 || todosIguais(d) {
		return false
	}
	if digitoVerificador(d[:9], 10) != int(d[9]-'0') {
		return false
	}
	return digitoVerificador(d[:10], 11) == int(d[10]-'0')
}

// digitoVerificador computes one CPF check digit: weighted sum with
// descending weights starting at pesoInicial, remainder of (soma*10) mod
// 11, with 10 treated as 0.
func digitoVerificador(digitos string, pesoInicial int) int {
	soma := 0
	for i := 0; i < len(digitos); i++ {
		soma += int(digitos[i]-'0') * (pesoInicial - i)
	}
	resto := (soma * 10) % 11
	if resto >= 10 {
		resto = 0
	}
	return resto
}

func senhaValida(senha string) bool {
	return len(senha) >= 8 &&
		temMinuscula.MatchString(senha) &&
		temMaiuscula.MatchString(senha) &&
		temDigito.MatchString(senha) &&
		temSimbolo.MatchString(senha) &&
		senhaPermitida.MatchString(senha)
}

func todosIguais(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

func invalido(mensagem string) Resultado {
	return Resultado{Valido: false, Mensagem: mensagem}
}
