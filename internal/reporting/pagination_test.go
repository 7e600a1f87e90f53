package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 15, 44)
	assert.Equal(t, 3, p.LastPage)
	assert.Equal(t, 44, p.Total)

	p = NewPagination(1, 15, 45)
	assert.Equal(t, 3, p.LastPage, "exact multiple needs no extra page")

	p = NewPagination(1, 15, 0)
	assert.Equal(t, 1, p.LastPage, "empty population still has page 1")

	p = NewPagination(9, 10, 20)
	assert.Equal(t, 2, p.LastPage, "last page reflects the population, not the request")
	assert.Equal(t, 9, p.CurrentPage)
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, NewPagination(1, 15, 100).Offset())
	assert.Equal(t, 15, NewPagination(2, 15, 100).Offset())
	assert.Equal(t, 120, NewPagination(5, 30, 100).Offset())
}
