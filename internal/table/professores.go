package table

import "strconv"

// Professor is a row of the professors listing. The dataset is mocked in
// code: this page never fetches from the server.
type Professor struct {
	IDProfessor     int
	NomeProfessor   string
	Email           string
	IdiomaPrincipal string
	Status          string
}

// MockProfessores returns the sample dataset used by the professors page.
func MockProfessores() []Professor {
	return []Professor{
		{1, "Maria Silva", "maria.silva@siga.com.br", "Análise e Desenvolvimento de Sistemas", "Ativo"},
		{2, "João Oliveira", "joao.oliveira@siga.com.br", "Design de Mídias Digitais", "Ativo"},
		{3, "Ana Souza", "ana.souza@siga.com.br", "Jogos Digitais", "Ativo"},
		{4, "Pedro Costa", "pedro.costa@siga.com.br", "Logística", "Ativo"},
		{5, "Beatriz Almeida", "beatriz.almeida@siga.com.br", "Análise e Desenvolvimento de Sistemas", "Inativo"},
		{6, "Carlos Rodrigues", "carlos.rodrigues@siga.com.br", "Design de Mídias Digitais", "Ativo"},
		{7, "Fernanda Lima", "fernanda.lima@siga.com.br", "Jogos Digitais", "Ativo"},
		{8, "Gabriel Santos", "gabriel.santos@siga.com.br", "Logística", "Ativo"},
		{9, "Juliana Pereira", "juliana.pereira@siga.com.br", "Análise e Desenvolvimento de Sistemas", "Ativo"},
		{10, "Ricardo Neves", "ricardo.neves@siga.com.br", "Design de Mídias Digitais", "Inativo"},
		{11, "Leticia Gomes", "leticia.gomes@siga.com.br", "Jogos Digitais", "Ativo"},
		{12, "Diego Ferreira", "diego.ferreira@siga.com.br", "Logística", "Ativo"},
		{13, "Patrícia Ribeiro", "patricia.ribeiro@siga.com.br", "Análise e Desenvolvimento de Sistemas", "Ativo"},
		{14, "Felipe Mendes", "felipe.mendes@siga.com.br", "Design de Mídias Digitais", "Ativo"},
		{15, "Bruna Dias", "bruna.dias@siga.com.br", "Jogos Digitais", "Inativo"},
		{16, "Guilherme Siqueira", "guilherme.siqueira@siga.com.br", "Logística", "Ativo"},
		{17, "Camila Rocha", "camila.rocha@siga.com.br", "Análise e Desenvolvimento de Sistemas", "Ativo"},
		{18, "Lucas Barros", "lucas.barros@siga.com.br", "Design de Mídias Digitais", "Ativo"},
	}
}

func colunasProfessor() map[string]func(Professor) string {
	return map[string]func(Professor) string{
		"IDProfessor":     func(p Professor) string { return strconv.Itoa(p.IDProfessor) },
		"NomeProfessor":   func(p Professor) string { return p.NomeProfessor },
		"Email":           func(p Professor) string { return p.Email },
		"IdiomaPrincipal": func(p Professor) string { return p.IdiomaPrincipal },
		"Status":          func(p Professor) string { return p.Status },
	}
}

// NovaTabelaProfessores builds the professors table: 5 rows per page,
// searchable by name, email and course.
func NovaTabelaProfessores() *Tabela[Professor] {
	return NovaTabela(MockProfessores(), colunasProfessor(),
		[]string{"NomeProfessor", "Email", "IdiomaPrincipal"}, 5,
		"Nenhum professor encontrado para a pesquisa.")
}
