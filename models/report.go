// path: models/report.go
package models

import "time"

// LostIDReport is one lost-identity-document report. ID is assigned by the
// store at insert; IDNumber is immutable once persisted and unique across the
// collection. UsedAtShop/UsedDate are written by a downstream process and are
// empty until then.
type LostIDReport struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	IDNumber    string    `json:"idNumber"`
	Reason      string    `json:"reason"`
	DateLost    string    `json:"dateLost"` // YYYY-MM-DD
	SelfieImage string    `json:"selfieImage,omitempty"`
	UsedAtShop  string    `json:"usedAtShop,omitempty"`
	UsedDate    string    `json:"usedDate,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DateLostLayout is the calendar-date format carried by DateLost.
const DateLostLayout = "2006-01-02"
