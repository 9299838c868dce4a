// SPDX-License-Identifier: MIT

package store

// ProductSupplier is the deferred product left × right returned by
// Premultiply. It holds references only; the multiplication runs when the
// supplier is pushed into a consumer or materialized with Get.
type ProductSupplier[N any] struct {
	left  Access1D[N]
	right Store[N]
	rows  int
}

var _ ElementsSupplier[float64] = (*ProductSupplier[float64])(nil)

// Rows returns left.Count() / right.Rows().
func (p *ProductSupplier[N]) Rows() int { return p.rows }

// Cols returns right.Cols().
func (p *ProductSupplier[N]) Cols() int { return p.right.Cols() }

// SupplyTo fills consumer with the product.
//
// Errors:
//   - ErrNotAcceptable when consumer rejects the shape.
//   - Any error raised by consumer.FillByMultiplying.
func (p *ProductSupplier[N]) SupplyTo(consumer ElementsConsumer[N]) error {
	if consumer == nil {
		return storeErrorf(opSupplyTo, ErrNilStore)
	}
	if !consumer.IsAcceptable(p) {
		return storeErrorf(opSupplyTo, ErrNotAcceptable)
	}

	return consumer.FillByMultiplying(p.left, p.right)
}

// Get materializes the product into a new Dense.
func (p *ProductSupplier[N]) Get() (*Dense[N], error) {
	dst := p.right.Factory().newDense(p.rows, p.right.Cols())
	if err := dst.FillByMultiplying(p.left, p.right); err != nil {
		return nil, err
	}

	return dst, nil
}
