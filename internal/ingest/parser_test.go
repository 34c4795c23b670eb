package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablero/internal/domain"
	"tablero/internal/ingest"
)

func TestParseDeliveryBlock_FullDocument(t *testing.T) {
	header := "Razón Social: ACME SA\nFecha: 05/06/24\nRemito 1234-56789012"
	lines := "10 R20\n5 R20 MTB"
	annotations := "R20 rojos"

	draft := ingest.ParseDeliveryBlock(header, lines, annotations)

	assert.Equal(t, "ACME SA", draft.Client)
	assert.Equal(t, "1234-56789012", draft.Number)
	assert.Equal(t, "05/06/24", draft.IssueDate)
	assert.Equal(t, "R20 rojos", draft.Annotations)

	require.Len(t, draft.LineItems, 2)
	assert.Equal(t, "R20", draft.LineItems[0].Code)
	assert.Equal(t, 10.0, draft.LineItems[0].Quantity)
	assert.Contains(t, draft.LineItems[0].Note, "rojos")
	assert.Equal(t, "R20 MTB", draft.LineItems[1].Code)
	assert.Equal(t, 5.0, draft.LineItems[1].Quantity)
}

func TestParseDeliveryBlock_NumberExtraction(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"plain", "0001-00001234", "0001-00001234"},
		{"embedded", "Remito N° 0003-00045678 ORIGINAL", "0003-00045678"},
		{"first match wins", "0001-00000001 y 0002-00000002", "0001-00000001"},
		{"too short", "001-0000123", ""},
		{"absent", "sin numero", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := ingest.ParseDeliveryBlock(tt.header, "", "")
			assert.Equal(t, tt.want, draft.Number)
		})
	}
}

func TestParseDeliveryBlock_DateExtraction(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"four digit year", "Fecha: 05/06/2024", "05/06/2024"},
		{"two digit year", "Fecha: 05/06/24", "05/06/24"},
		{"no date", "Fecha:", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := ingest.ParseDeliveryBlock(tt.header, "", "")
			assert.Equal(t, tt.want, draft.IssueDate)
		})
	}
}

func TestParseDeliveryBlock_ClientLabel(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"label with colon", "Razón Social: ACME SA", "ACME SA"},
		{"label unaccented uppercase", "RAZON SOCIAL: ACME SA", "ACME SA"},
		{"label alone, value on next line", "Razón Social:\n\nBicicletas del Sur", "Bicicletas del Sur"},
		{"label alone, nothing after", "Razón Social:", ""},
		{"fallback last qualifying line", "CUIT: 30-12345678-9\nBicicletas del Sur\nTel: 12345", "Bicicletas del Sur"},
		{"fallback skips short lines", "ACME SA\nok", "ACME SA"},
		{"fallback skips field labels", "Domicilio: Av. Siempreviva 742\nFecha: 01/01/24", ""},
		{"label wins over later lines", "Razón Social: ACME SA\nOtra Linea Larga", "ACME SA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := ingest.ParseDeliveryBlock(tt.header, "", "")
			assert.Equal(t, tt.want, draft.Client)
		})
	}
}

func TestParseDeliveryBlock_LineItems(t *testing.T) {
	draft := ingest.ParseDeliveryBlock("", "2 R12\n1,5 TRI CLASICO\nsolo-texto\n-3 R16\nx R20\n4", "")

	require.Len(t, draft.LineItems, 2)
	assert.Equal(t, domain.LineItem{Code: "R12", Quantity: 2}, draft.LineItems[0])
	assert.Equal(t, domain.LineItem{Code: "TRI CLASICO", Quantity: 1.5}, draft.LineItems[1])
}

func TestParseDeliveryBlock_EmptyInput(t *testing.T) {
	draft := ingest.ParseDeliveryBlock("", "", "")

	assert.Empty(t, draft.Number)
	assert.Empty(t, draft.IssueDate)
	assert.Empty(t, draft.Client)
	assert.Empty(t, draft.LineItems)
}
