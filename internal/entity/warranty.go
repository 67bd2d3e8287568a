package entity

import "time"

// WarrantyRecord associates a detected warranty date with the receipt it
// came from. ExpiryDate is the raw MM/DD/YYYY string; parsing is deferred
// to the expiry check so a malformed date degrades one record, not the run.
type WarrantyRecord struct {
	// Identifier names the source receipt, usually its filename.
	Identifier string `json:"identifier"`
	ExpiryDate string `json:"expiry_date"`
	// Location is the artifact path the record points back to, if written.
	Location string `json:"location,omitempty"`
}

// ExpiringWarranty is a WarrantyRecord whose date parsed and fell within
// the alert window.
type ExpiringWarranty struct {
	Record WarrantyRecord `json:"record"`
	// ExpiresOn is the parsed expiry date at midnight UTC.
	ExpiresOn time.Time `json:"expires_on"`
	// DaysLeft is the whole-day delta from the reference date; negative
	// when the warranty already lapsed.
	DaysLeft int `json:"days_left"`
}
