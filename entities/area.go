package entities

import "hoacuong/pkg/i18n"

type AreaStatus string

const (
	AreaActive   AreaStatus = "Active"
	AreaInactive AreaStatus = "Inactive"
)

// Label returns the localized display text for the status.
func (s AreaStatus) Label(lang string) string {
	if s == AreaActive {
		return i18n.T(lang, i18n.KeyStatusActive)
	}
	return i18n.T(lang, i18n.KeyStatusInactive)
}

// GrowingArea is a registered growing region. Code is a business key and is
// not checked for uniqueness.
type GrowingArea struct {
	ID       string     `json:"id"`
	Code     string     `json:"code"`     // e.g. VN-DL-001
	Name     string     `json:"name"`
	Location string     `json:"location"`
	Acreage  float64    `json:"acreage"`  // ha
	Status   AreaStatus `json:"status"`
}

func (a GrowingArea) Key() string { return a.ID }
