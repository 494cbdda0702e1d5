package upstream

import "time"

type Participant struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Session is a bookable time slot owned by the provider.
type Session struct {
	ID           string        `json:"id"`
	ClubID       string        `json:"clubId"`
	StartDate    time.Time     `json:"startDate"`
	TimeLabel    string        `json:"timeLabel"`
	Capacity     int           `json:"capacity"`
	Participants []Participant `json:"participants"`
	BookingID    string        `json:"bookingId,omitempty"`
	Deleted      bool          `json:"deleted"`
}

func (s Session) Available() bool {
	return len(s.Participants) == 0
}

type Transaction struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type BookingConfirmation struct {
	Session     Session     `json:"session"`
	Transaction Transaction `json:"transaction"`
}

type Booking struct {
	ID           string        `json:"id"`
	SessionID    string        `json:"sessionId"`
	ClubID       string        `json:"clubId"`
	StartDate    time.Time     `json:"startDate"`
	Participants []Participant `json:"participants"`
}

type AuthResult struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Licensee struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}
