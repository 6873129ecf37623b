package stub

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
)

func seededCollection(t *testing.T, n int) *collection[entity.Product, *entity.Product] {
	t.Helper()
	col := newCollection[entity.Product, *entity.Product]()
	for i := 0; i < n; i++ {
		col.create(entity.Product{Description: fmt.Sprintf("Produto %d", i+1)})
	}
	return col
}

func TestEachPercorreTodoOConjunto(t *testing.T) {
	col := seededCollection(t, 3)

	var ids []int
	col.each(nil, func(p entity.Product) { ids = append(ids, p.ID) })

	assert.Equal(t, []int{1, 2, 3}, ids, "o percurso sem limite deve visitar todos os registros em ordem")
}

func TestPageComTamanhoMuitoMaiorQueOConjunto(t *testing.T) {
	col := seededCollection(t, 2)

	// O tamanho de página é só um teto; não pode dimensionar alocações.
	items, more := col.page(0, math.MaxInt, nil)

	require.Len(t, items, 2)
	assert.False(t, more, "conjunto inteiro em uma página não tem continuação")
}

func TestPageEmColecaoVazia(t *testing.T) {
	col := newCollection[entity.Product, *entity.Product]()

	items, more := col.page(0, 10, nil)
	assert.Empty(t, items)
	assert.False(t, more)
}

func TestPageRespeitaAfterIDELimite(t *testing.T) {
	col := seededCollection(t, 5)

	items, more := col.page(2, 2, nil)
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].ID)
	assert.Equal(t, 4, items[1].ID)
	assert.True(t, more, "ainda resta o registro 5")
}
