package inspect

import (
	"testing"

	"github.com/dude333/sheetpeek"
	"github.com/stretchr/testify/assert"
)

var _ sheetpeek.Classifier = (*Keywords)(nil)

func TestKeywords_Matches(t *testing.T) {
	k := NewKeywords(sheetpeek.DefaultKeywords, nil, false)

	tests := []struct {
		column string
		want   bool
	}{
		{"Customer_Email", true},
		{"Quantity", false},
		{"Ship To", true},
		{"BUYER NAME", true},
		{"Recipient Address", true},
		{"City", true},
		{"Order ID", false},
		{"SKU", false},
		{"Product Name", true},
		{"Adress", false},
		{"Unnamed: 3", true}, // "name" is a substring of "unnamed"
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			assert.Equal(t, tt.want, k.Matches(tt.column))
		})
	}
}

func TestKeywords_Match(t *testing.T) {
	k := NewKeywords(sheetpeek.DefaultKeywords, nil, false)

	columns := []string{"Order ID", "Buyer Name", "Customer_Email", "Quantity", "Ship To", "City"}
	assert.Equal(t, []string{"Buyer Name", "Customer_Email", "Ship To", "City"}, k.Match(columns))
	assert.Nil(t, k.Match([]string{"Quantity", "Price"}))
}

func TestKeywords_Exclude(t *testing.T) {
	k := NewKeywords(sheetpeek.DefaultKeywords, []string{"product", "Shipping Fee"}, false)

	assert.False(t, k.Matches("Product Name"))
	assert.False(t, k.Matches("shipping fee (BRL)"))
	assert.True(t, k.Matches("Shipping Address"))
	assert.True(t, k.Matches("Buyer Name"))
}

func TestKeywords_Diacritics(t *testing.T) {
	k := NewKeywords([]string{"endereço", "Cidade"}, nil, false)

	assert.True(t, k.Matches("Endereço de Entrega"))
	assert.True(t, k.Matches("ENDERECO"))
	assert.True(t, k.Matches("cidade"))
	assert.False(t, k.Matches("Estado"))
}

func TestKeywords_Fuzzy(t *testing.T) {
	strict := NewKeywords(sheetpeek.DefaultKeywords, nil, false)
	approx := NewKeywords(sheetpeek.DefaultKeywords, nil, true)

	assert.False(t, strict.Matches("Adress"))
	assert.True(t, approx.Matches("Adress"))
	assert.True(t, approx.Matches("Customr ID"))
	assert.True(t, approx.Matches("e-mail"), "mail is one edit from email")
	assert.False(t, approx.Matches("Quantity"))
	assert.False(t, approx.Matches("Sity"), "short keywords are exact only")
}

func TestKeywords_Empty(t *testing.T) {
	k := NewKeywords([]string{"", "  "}, nil, true)
	assert.Nil(t, k.Match([]string{"Buyer", "Quantity"}))
}
