package favorite

import "time"

// Entry is a stored favorite: a partner the user books with often.
type Entry struct {
	UserID     string    `json:"userId"`
	LicenseeID string    `json:"licenseeId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Favorite struct {
	LicenseeID string    `json:"licenseeId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	CreatedAt  time.Time `json:"createdAt"`
}
