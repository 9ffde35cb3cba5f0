package booking

// CheckAvailability fails with ErrAlreadyBooked when want overlaps any
// existing booking that is still held.
func CheckAvailability(want DateRange, existing []Booking) error {
	for _, b := range existing {
		if b.Status == StatusCancelled {
			continue
		}
		if want.Overlaps(b.Dates) {
			return ErrAlreadyBooked
		}
	}
	return nil
}
