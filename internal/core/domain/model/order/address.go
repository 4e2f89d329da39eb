package order

// DeliveryAddress groups the free-form address fields captured for delivery
// orders. All fields are optional; table and takeaway orders leave it empty.
// The address travels with the order into the archive and back on revert.
type DeliveryAddress struct {
	address  string
	landmark string
	building string
	unit     string
}

// NewDeliveryAddress creates a delivery address value object.
func NewDeliveryAddress(address, landmark, building, unit string) DeliveryAddress {
	return DeliveryAddress{
		address:  address,
		landmark: landmark,
		building: building,
		unit:     unit,
	}
}

// Address returns the street address text.
func (a DeliveryAddress) Address() string {
	return a.address
}

// Landmark returns the nearby landmark, if any.
func (a DeliveryAddress) Landmark() string {
	return a.landmark
}

// Building returns the building name, if any.
func (a DeliveryAddress) Building() string {
	return a.building
}

// Unit returns the apartment or unit, if any.
func (a DeliveryAddress) Unit() string {
	return a.unit
}

// IsZero reports whether no address field is set.
func (a DeliveryAddress) IsZero() bool {
	return a == DeliveryAddress{}
}
