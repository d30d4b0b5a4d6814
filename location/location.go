// Package location provides the postal address record used alongside the
// Fractal Global value types. It is plain data with no validation of its
// own.
package location

// Address is the particulars of the place where an organization or person
// resides. The zero value is usable; Address2 is optional and omitted from
// JSON when empty.
type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

// New returns an Address with the given particulars. Pass an empty address2
// when there is no second address line.
func New(address1, address2, city, state, zip, country string) Address {
	return Address{
		Address1: address1,
		Address2: address2,
		City:     city,
		State:    state,
		Zip:      zip,
		Country:  country,
	}
}
