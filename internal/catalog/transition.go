package catalog

// Advance computes the next status and stock quantity for a single
// user-triggered advance action. It is the only trigger in the lifecycle:
//
//	In Stock     -> Booked
//	Booked       -> Delivered, quantity drops by one (floor zero);
//	                a zero result lands on Out of Stock instead
//	Delivered    -> In Stock
//	Out of Stock -> In Stock
//	Not Delivered stays put
//
// Quantity never goes negative.
func Advance(status Status, quantity int) (Status, int) {
	switch status {
	case StatusInStock:
		return StatusBooked, quantity
	case StatusBooked:
		next := quantity - 1
		if next <= 0 {
			return StatusOutOfStock, 0
		}
		return StatusDelivered, next
	case StatusDelivered, StatusOutOfStock:
		return StatusInStock, quantity
	default:
		return status, quantity
	}
}
