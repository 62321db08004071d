package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDiacritics(t *testing.T) {
	list := []struct {
		str string
		exp string
	}{
		{"ITAÚ", "ITAU"},
		{"Endereço", "Endereco"},
		{"São Paulo", "Sao Paulo"},
		{"ÁÉÍÓÚáéíóúÀàÃÕãõÇç", "AEIOUaeiouAaAOaoCc"},
	}

	for _, l := range list {
		if RemoveDiacritics(l.str) != l.exp {
			t.Errorf("Expecting %s, received %s", l.exp, RemoveDiacritics(l.str))
		}
	}
}

func TestCleanCell(t *testing.T) {
	assert.Equal(t, "Ship To", cleanCell("  Ship  To\n"))
	assert.Equal(t, "Buyer Name", cleanCell("Buyer\r\n\tName"))
	assert.Equal(t, "", cleanCell("   "))
}

func TestTrimRow(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, trimRow([]string{"a", "", "b", "", ""}))
	assert.Empty(t, trimRow([]string{"", ""}))
}

func TestRowBuffer(t *testing.T) {
	b := rowBuffer{max: 2}
	assert.False(t, b.add([]string{""}))          // blank, not counted
	assert.False(t, b.add([]string{"h1", "h2"})) // header
	assert.False(t, b.add([]string{"1", "2"}))
	assert.False(t, b.add([]string{" ", ""}))
	assert.True(t, b.add([]string{"3", "4"}))
	assert.Len(t, b.rows, 5)

	unlimited := rowBuffer{}
	for i := 0; i < 100; i++ {
		assert.False(t, unlimited.add([]string{"x"}))
	}
}
