// Package stub implementa um backend de desenvolvimento que emula o contrato
// REST do GraphixWeb: autenticação JWT, recursos CRUD com paginação por
// cursor opaco, corpo de erro {error, detail} e endpoints de arquivo em PDF.
// Os dados vivem em memória; cada processo parte do seed.
package stub

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// entityPtr restringe as coleções a entidades com os campos de Base.
type entityPtr[T any] interface {
	*T
	GetID() int
	SetID(int)
	Created() *time.Time
	SetCreated(time.Time)
	Touch(time.Time)
}

// collection coleção genérica em memória com ids sequenciais.
type collection[T any, P entityPtr[T]] struct {
	mu    sync.Mutex
	seq   int
	items []T
}

func newCollection[T any, P entityPtr[T]]() *collection[T, P] {
	return &collection[T, P]{}
}

// create atribui id e instante de criação e insere o registro.
func (c *collection[T, P]) create(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	P(&item).SetID(c.seq)
	P(&item).SetCreated(time.Now())
	c.items = append(c.items, item)
	return item
}

// get busca por id.
func (c *collection[T, P]) get(id int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if P(&item).GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// update substitui o registro de mesmo id.
func (c *collection[T, P]) update(item T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := P(&item).GetID()
	for i := range c.items {
		if P(&c.items[i]).GetID() == id {
			// o createdAt original prevalece sobre o que veio no corpo
			if created := P(&c.items[i]).Created(); created != nil {
				P(&item).SetCreated(*created)
			}
			P(&item).Touch(time.Now())
			c.items[i] = item
			return item, true
		}
	}
	var zero T
	return zero, false
}

// remove apaga o registro.
func (c *collection[T, P]) remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if P(&c.items[i]).GetID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// page devolve até pageSize registros com id > afterID que satisfaçam match,
// em ordem de id, e informa se há mais páginas.
func (c *collection[T, P]) page(afterID, pageSize int, match func(T) bool) ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sorted := make([]T, len(c.items))
	copy(sorted, c.items)
	sort.Slice(sorted, func(i, j int) bool {
		return P(&sorted[i]).GetID() < P(&sorted[j]).GetID()
	})

	// pageSize pode ser enorme (percursos sem limite); a capacidade inicial
	// nunca precisa exceder o tamanho do conjunto.
	out := make([]T, 0, min(pageSize, len(sorted)))
	more := false
	for _, item := range sorted {
		if P(&item).GetID() <= afterID {
			continue
		}
		if match != nil && !match(item) {
			continue
		}
		if len(out) == pageSize {
			more = true
			break
		}
		out = append(out, item)
	}
	return out, more
}

// each percorre os registros que satisfaçam match, em ordem de id.
func (c *collection[T, P]) each(match func(T) bool, fn func(T)) {
	items, _ := c.page(0, int(^uint(0)>>1), match)
	for _, item := range items {
		fn(item)
	}
}

// ── Cursor opaco ──────────────────────────────────────────────────────────────

// encodeCursor emite o token de continuação. O cliente deve ecoá-lo sem
// interpretar; o formato interno pode mudar a qualquer momento.
func encodeCursor(lastID int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf("after:%d", lastID)))
}

// decodeCursor valida e decodifica o token de continuação.
func decodeCursor(cursor string) (int, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("cursor inválido")
	}
	s := string(raw)
	if !strings.HasPrefix(s, "after:") {
		return 0, fmt.Errorf("cursor inválido")
	}
	id, err := strconv.Atoi(strings.TrimPrefix(s, "after:"))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("cursor inválido")
	}
	return id, nil
}

// ── Busca sem acentos ─────────────────────────────────────────────────────────

// fold normaliza para busca: minúsculas e sem marcas diacríticas, para que
// "grafica" encontre "Gráfica".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// foldContains busca needle em haystack ignorando caixa e acentos.
func foldContains(haystack, needle string) bool {
	return strings.Contains(fold(haystack), fold(needle))
}
