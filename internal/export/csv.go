package export

import (
	"encoding/csv"
	"io"

	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
)

var csvHeader = []string{"RegisterNo", "Subject", "From", "To", "Date", "Status"}

// WriteCSV renders the registry in the flat report layout clerks hand to
// the records office. Rows keep the registry's document order.
func WriteCSV(w io.Writer, docs []documentmodel.Document) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, doc := range docs {
		row := []string{
			doc.RegisterNo,
			doc.Subject,
			doc.From,
			doc.To,
			doc.Date,
			string(doc.Status),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
