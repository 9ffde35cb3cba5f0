package booking

type keyed interface {
	Key() int64
}

// Replace returns a copy of list with the item sharing item's key swapped in.
func Replace[T keyed](list []T, item T) ([]T, bool) {
	out := make([]T, len(list))
	copy(out, list)
	for i := range out {
		if out[i].Key() == item.Key() {
			out[i] = item
			return out, true
		}
	}
	return out, false
}

// Remove returns a copy of list without the item keyed id.
func Remove[T keyed](list []T, id int64) ([]T, bool) {
	out := make([]T, 0, len(list))
	found := false
	for _, it := range list {
		if it.Key() == id {
			found = true
			continue
		}
		out = append(out, it)
	}
	return out, found
}

func Find[T keyed](list []T, id int64) (T, bool) {
	for _, it := range list {
		if it.Key() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// FilterBy keeps the items whose status matches f.
func FilterBy[T interface {
	keyed
	StatusOf() Status
}](list []T, f Filter) []T {
	out := make([]T, 0, len(list))
	for _, it := range list {
		if f.Matches(it.StatusOf()) {
			out = append(out, it)
		}
	}
	return out
}

func (b Booking) StatusOf() Status {
	return b.Status
}

// ReplaceInVenues swaps b into whichever venue holds it.
func ReplaceInVenues(venues []VenueBookings, b Booking) ([]VenueBookings, bool) {
	out := make([]VenueBookings, len(venues))
	copy(out, venues)
	for i := range out {
		if next, ok := Replace(out[i].Bookings, b); ok {
			out[i].Bookings = next
			return out, true
		}
	}
	return out, false
}

// RemoveFromVenues drops booking id from the nested per-venue lists.
func RemoveFromVenues(venues []VenueBookings, id int64) ([]VenueBookings, bool) {
	out := make([]VenueBookings, len(venues))
	copy(out, venues)
	for i := range out {
		if next, ok := Remove(out[i].Bookings, id); ok {
			out[i].Bookings = next
			return out, true
		}
	}
	return out, false
}

// FindInVenues also reports the index of the venue holding the booking.
func FindInVenues(venues []VenueBookings, id int64) (Booking, int, bool) {
	for i, v := range venues {
		if b, found := Find(v.Bookings, id); found {
			return b, i, true
		}
	}
	return Booking{}, -1, false
}
