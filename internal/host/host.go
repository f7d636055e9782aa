// Package host defines the boundary to the CAD document model. Commands
// enumerate elements through a Document, hand them to the picker, and apply
// the user's choice inside a named transaction. The picker itself never
// touches this package.
package host

import "context"

// Element is one model element with its display parameters. Params holds
// only display values; the element itself travels as the picker row payload.
type Element struct {
	ID       int64
	Category string
	Name     string
	Params   map[string]string
}

// Param returns a parameter value, or "" when the element does not carry it.
func (e Element) Param(name string) string { return e.Params[name] }

// Tx is the write surface available inside a document transaction.
type Tx interface {
	// SetParam writes a parameter value on an element.
	SetParam(elementID int64, name, value string) error

	// Enqueue appends an element to a named work queue (e.g. printing).
	Enqueue(queue string, elementID int64) error
}

// Document is the host model: element enumeration and transactional writes.
// Implementations must roll the transaction back when fn returns an error.
type Document interface {
	// Categories lists the distinct element categories in the model.
	Categories(ctx context.Context) ([]string, error)

	// Elements returns all elements of one category in stable model order.
	Elements(ctx context.Context, category string) ([]Element, error)

	// Transaction runs fn atomically under the given transaction name.
	Transaction(ctx context.Context, name string, fn func(tx Tx) error) error

	Close() error
}
