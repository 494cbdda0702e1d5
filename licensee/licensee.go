package licensee

import (
	"strings"

	"github.com/hanksha/court-booking-backend/upstream"
)

type Licensee struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (l Licensee) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

func fromUpstream(u upstream.Licensee) Licensee {
	return Licensee{
		UserID:    strings.TrimSpace(u.UserID),
		Email:     strings.ToLower(strings.TrimSpace(u.Email)),
		FirstName: strings.TrimSpace(u.FirstName),
		LastName:  strings.TrimSpace(u.LastName),
	}
}

// Row is one roster line as the provider sent it. Duplicate marks a user id already seen earlier in the roster.
type Row struct {
	Licensee  Licensee
	Duplicate bool
}

type ImportResult struct {
	Imported int  `json:"imported"`
	Updated  int  `json:"updated"`
	Skipped  int  `json:"skipped"`
	Rejected int  `json:"rejected"`
	HasMore  bool `json:"hasMore"`
}
