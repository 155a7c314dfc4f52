package model

// Operation is the side of the trade from the account holder's view.
type Operation string

// Operations.
const (
	OperationPurchase Operation = "compra"
	OperationSale     Operation = "venta"
)

// Operations returns the operations offered by the operation filter.
func Operations() []Operation {
	return []Operation{OperationPurchase, OperationSale}
}

// Label returns the display label; unknown operations are shown verbatim.
func (o Operation) Label() string {
	switch o {
	case OperationPurchase:
		return "Compra"
	case OperationSale:
		return "Venta"
	default:
		return string(o)
	}
}

// Known reports whether the operation belongs to the enumeration.
func (o Operation) Known() bool {
	return o == OperationPurchase || o == OperationSale
}
