package interfaces

import (
	"io"

	"quickbuild_estimate/internal/domain/costing"
)

// ILineItemParser reads an uploaded materials or labor sheet into line items.
// The file name selects the format (.csv or .xlsx).
type ILineItemParser interface {
	Parse(kind costing.ItemKind, fileName string, r io.Reader) ([]costing.LineItem, error)
}
