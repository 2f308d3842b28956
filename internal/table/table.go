package table

import (
	"sort"
	"strings"
)

// Direcao is the sort direction of a column.
type Direcao int

const (
	Ascendente Direcao = iota
	Descendente
)

// Tabela applies the filter → sort → paginate pipeline over an in-memory
// row set. todas is the immutable source; atuais is the derived view and
// is always a filtered subset and sorted permutation of todas, never
// mutated on its own.
type Tabela[T any] struct {
	todas  []T
	atuais []T

	colunas     map[string]func(T) string
	filtraveis  []string
	placeholder string

	pagina          int
	porPagina       int
	colunaOrdenacao string
	direcao         Direcao
}

// NovaTabela builds a pipeline over linhas. colunas maps column names to
// cell accessors; filtraveis names the columns the text filter matches
// against; placeholder is the row shown when a filter leaves nothing.
func NovaTabela[T any](linhas []T, colunas map[string]func(T) string, filtraveis []string, porPagina int, placeholder string) *Tabela[T] {
	return &Tabela[T]{
		todas:       linhas,
		atuais:      append([]T(nil), linhas...),
		colunas:     colunas,
		filtraveis:  filtraveis,
		placeholder: placeholder,
		pagina:      1,
		porPagina:   porPagina,
	}
}

// Filtrar keeps the rows whose filterable columns contain termo,
// case-insensitively. An empty term restores the full set. Always resets
// the page to 1 and clears the sort.
func (t *Tabela[T]) Filtrar(termo string) {
	termo = strings.ToLower(strings.TrimSpace(termo))
	if termo == "" {
		t.atuais = append([]T(nil), t.todas...)
	} else {
		atuais := make([]T, 0, len(t.todas))
		for _, linha := range t.todas {
			for _, coluna := range t.filtraveis {
				if strings.Contains(strings.ToLower(t.colunas[coluna](linha)), termo) {
					atuais = append(atuais, linha)
					break
				}
			}
		}
		t.atuais = atuais
	}
	t.pagina = 1
	t.colunaOrdenacao = ""
	t.direcao = Ascendente
}

// Ordenar sorts the current view by coluna. Clicking the current sort
// column flips the direction; a new column starts ascending. The sort is
// stable and compares the lowercased string form of the cells. Resets the
// page to 1. Unknown columns are ignored.
func (t *Tabela[T]) Ordenar(coluna string) {
	celula, ok := t.colunas[coluna]
	if !ok {
		return
	}

	if t.colunaOrdenacao == coluna {
		if t.direcao == Ascendente {
			t.direcao = Descendente
		} else {
			t.direcao = Ascendente
		}
	} else {
		t.colunaOrdenacao = coluna
		t.direcao = Ascendente
	}

	sort.SliceStable(t.atuais, func(i, j int) bool {
		a := strings.ToLower(celula(t.atuais[i]))
		b := strings.ToLower(celula(t.atuais[j]))
		if t.direcao == Ascendente {
			return a < b
		}
		return b < a
	})
	t.pagina = 1
}

// IrParaPagina jumps to a 1-based page. Out-of-range pages are kept and
// simply render empty; they are not an error.
func (t *Tabela[T]) IrParaPagina(pagina int) {
	if pagina >= 1 {
		t.pagina = pagina
	}
}

// ProximaPagina advances one page when there is one.
func (t *Tabela[T]) ProximaPagina() {
	if t.Paginacao().TemProxima {
		t.pagina++
	}
}

// PaginaAnterior goes back one page when not on the first.
func (t *Tabela[T]) PaginaAnterior() {
	if t.pagina > 1 {
		t.pagina--
	}
}

// LinhasVisiveis slices the current view to the rows of the current page.
func (t *Tabela[T]) LinhasVisiveis() []T {
	inicio := (t.pagina - 1) * t.porPagina
	if inicio >= len(t.atuais) {
		return nil
	}
	fim := inicio + t.porPagina
	if fim > len(t.atuais) {
		fim = len(t.atuais)
	}
	return t.atuais[inicio:fim]
}

// Paginacao is the pagination control state: which page is current,
// whether previous/next are enabled, and the clickable page numbers.
type Paginacao struct {
	TotalPaginas int
	PaginaAtual  int
	TemAnterior  bool
	TemProxima   bool
}

// Paginacao computes the control state for the current view. A single
// page (or none) yields the zero value: no controls rendered.
func (t *Tabela[T]) Paginacao() Paginacao {
	total := (len(t.atuais) + t.porPagina - 1) / t.porPagina
	if total <= 1 {
		return Paginacao{}
	}
	return Paginacao{
		TotalPaginas: total,
		PaginaAtual:  t.pagina,
		TemAnterior:  t.pagina > 1,
		TemProxima:   t.pagina < total,
	}
}

// Quadro is the rendered view: the visible rows, or a placeholder message
// when the filter matched nothing, plus the pagination state.
type Quadro[T any] struct {
	Linhas      []T
	Placeholder string
	Paginacao   Paginacao
}

// Renderizar recomputes the visible rows and control state. A
// zero-result filter yields the single informational placeholder row and
// zero pagination controls.
func (t *Tabela[T]) Renderizar() Quadro[T] {
	if len(t.atuais) == 0 {
		return Quadro[T]{Placeholder: t.placeholder}
	}
	return Quadro[T]{
		Linhas:    t.LinhasVisiveis(),
		Paginacao: t.Paginacao(),
	}
}
