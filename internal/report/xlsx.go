package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"tablero/internal/domain"
)

// historyColumns defines the delivered-history export header row.
var historyColumns = []string{
	"Remito",
	"Fecha",
	"Cliente",
	"Items",
	"Cantidad Total",
	"Ventana",
	"Flete Externo",
	"Firmado Por",
	"DNI",
	"Rechazos",
}

// WriteHistoryXLSX writes the delivered-remito history as an XLSX
// workbook to w. One row per remito; line items are flattened into a
// "qty x code" list.
func WriteHistoryXLSX(w io.Writer, remitos []domain.Remito) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Entregados"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, title := range historyColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("header cell %s: %w", cell, err)
		}
	}

	for i := range remitos {
		row := historyRow(&remitos[i])
		for col, val := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("row cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func historyRow(r *domain.Remito) []interface{} {
	var total float64
	itemParts := make([]string, 0, len(r.LineItems))
	for _, item := range r.LineItems {
		total += item.Quantity
		itemParts = append(itemParts, fmt.Sprintf("%g x %s", item.Quantity, item.Code))
	}

	signer, signerID := "", ""
	if r.DeliveryProof != nil {
		signer = r.DeliveryProof.SignerName
		signerID = r.DeliveryProof.SignerID
	}

	rejectParts := make([]string, 0, len(r.RejectedItems))
	for _, rej := range r.RejectedItems {
		rejectParts = append(rejectParts, fmt.Sprintf("%g x %s", rej.RejectedQuantity, rej.Code))
	}

	externo := "No"
	if r.IsExternalCarrier {
		externo = "Sí"
	}

	return []interface{}{
		r.Number,
		r.IssueDate,
		r.Client,
		strings.Join(itemParts, ", "),
		total,
		r.DispatchWindow,
		externo,
		signer,
		signerID,
		strings.Join(rejectParts, ", "),
	}
}
