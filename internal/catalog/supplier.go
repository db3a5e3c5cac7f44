package catalog

import "github.com/vmunix/reelcat/internal/content"

// Supplier provides the catalog's initial content. It is called once, by New.
type Supplier interface {
	Contents() ([]content.Content, error)
}

// SupplierFunc adapts a function to a Supplier.
type SupplierFunc func() ([]content.Content, error)

// Contents calls f.
func (f SupplierFunc) Contents() ([]content.Content, error) { return f() }

// Static returns a Supplier for a fixed list.
func Static(items ...content.Content) Supplier {
	return SupplierFunc(func() ([]content.Content, error) { return items, nil })
}
