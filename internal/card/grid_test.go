package card

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/plantdeck/internal/catalog"
)

func TestColumns(t *testing.T) {
	assert.Equal(t, 1, Columns(60))
	assert.Equal(t, 2, Columns(80))
	assert.Equal(t, 2, Columns(119))
	assert.Equal(t, 3, Columns(120))
}

func TestCardWidth(t *testing.T) {
	assert.Equal(t, 49, CardWidth(99, 2))
	assert.Equal(t, MinWidth, CardWidth(10, 3))
	assert.Equal(t, 50, CardWidth(50, 0))
}

func TestGrid_OrderAndRows(t *testing.T) {
	var items []catalog.Item
	for i := 1; i <= 5; i++ {
		items = append(items, catalog.Item{ID: fmt.Sprint(i)})
	}
	var order []string
	render := func(item catalog.Item, width int) string {
		order = append(order, item.ID)
		return fmt.Sprintf("[%s:%d]", item.ID, width)
	}

	out := Grid(items, 130, render)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, order)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "[1:42] [2:42] [3:42]", lines[0])
	assert.Equal(t, "[4:42] [5:42]", strings.TrimRight(lines[1], " "))
}

func TestGrid_Empty(t *testing.T) {
	assert.Equal(t, "", Grid(nil, 100, nil))
}
