// File: bound/order.go
package bound

import "fmt"

// Order selects the convention mapping bounding-box tuple position to
// declared model-input position.
type Order string

const (
	// OrderC is C/row-major order: tuple positions run in reverse
	// declaration order, the last declared input varying fastest.
	OrderC Order = "C"
	// OrderF is Fortran/mathematical order: tuple positions match the
	// declared input order.
	OrderF Order = "F"
)

// DefaultOrder is the order used when none is supplied.
const DefaultOrder = OrderC

// ValidateOrder checks that order is one of the two accepted conventions,
// treating the empty string as fallback (the box's own stored order).
func ValidateOrder(order Order, fallback Order) (Order, error) {
	switch order {
	case "":
		return fallback, nil
	case OrderC, OrderF:
		return order, nil
	default:
		return "", fmt.Errorf(
			"order must be either 'C' (C/python order) or 'F' (Fortran/mathematical order), got: %q: %w",
			string(order), ErrOrder)
	}
}
