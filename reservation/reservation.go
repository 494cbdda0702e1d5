package reservation

import (
	"slices"
	"time"

	"github.com/hanksha/court-booking-backend/access"
	"github.com/hanksha/court-booking-backend/upstream"
)

// Entry is a ledger row: who performed the booking action for an upstream session.
type Entry struct {
	ID                  string    `json:"id"`
	SessionID           string    `json:"sessionId"`
	MainUserID          string    `json:"mainUserId"`
	PartnerID           string    `json:"partnerId"`
	StartDate           time.Time `json:"startDate"`
	ClubID              string    `json:"clubId"`
	BookingActionUserID string    `json:"bookingActionUserId"`
	Deleted             bool      `json:"deleted"`
	CreatedAt           time.Time `json:"createdAt"`
}

type Filter struct {
	From           *time.Time
	To             *time.Time
	IncludeDeleted bool
}

// Tombstone is the ledger transition applied by a confirmed cancellation.
type Tombstone string

const (
	// TombstoneMarked means an active entry existed and was flagged deleted.
	TombstoneMarked Tombstone = "marked"
	// TombstoneInserted means no entry existed and a deleted one was inserted.
	TombstoneInserted Tombstone = "inserted"
)

type Source string

const (
	SourceBoth     Source = "both"
	SourceUpstream Source = "upstream"
	SourceLedger   Source = "ledger"
)

// Reservation is the merged view of an upstream session and its ledger entry. It is never persisted.
type Reservation struct {
	SessionID           string                 `json:"sessionId"`
	BookingID           string                 `json:"bookingId,omitempty"`
	ClubID              string                 `json:"clubId"`
	Court               int                    `json:"court,omitempty"`
	StartDate           time.Time              `json:"startDate"`
	TimeLabel           string                 `json:"timeLabel"`
	Capacity            int                    `json:"capacity"`
	Participants        []upstream.Participant `json:"participants"`
	MainUserID          string                 `json:"mainUserId,omitempty"`
	PartnerID           string                 `json:"partnerId,omitempty"`
	BookingActionUserID string                 `json:"bookingActionUserId,omitempty"`
	CreatedAt           *time.Time             `json:"createdAt,omitempty"`
	Source              Source                 `json:"source"`
	// LedgerMismatch flags an active ledger entry on a session upstream reports as empty.
	LedgerMismatch bool `json:"ledgerMismatch,omitempty"`
}

type SlotView struct {
	TimeLabel   string      `json:"timeLabel"`
	StartDate   time.Time   `json:"startDate"`
	Available   bool        `json:"available"`
	Bookable    bool        `json:"bookable"`
	Reservation Reservation `json:"reservation"`
}

type CourtView struct {
	Court       int        `json:"court"`
	ClubID      string     `json:"clubId"`
	Unavailable bool       `json:"unavailable"`
	Slots       []SlotView `json:"slots"`
}

type DayView struct {
	Date       string      `json:"date"`
	ReadOnly   bool        `json:"readOnly"`
	TimeLabels []string    `json:"timeLabels"`
	Courts     []CourtView `json:"courts"`
}

type Court struct {
	Number int    `json:"number"`
	ClubID string `json:"clubId"`
}

// Courts is the fixed set of club courts ordered by number.
type Courts []Court

func NewCourts(byNumber map[int]string) Courts {
	courts := make(Courts, 0, len(byNumber))

	for number, clubID := range byNumber {
		courts = append(courts, Court{Number: number, ClubID: clubID})
	}

	slices.SortFunc(courts, func(a, b Court) int { return a.Number - b.Number })

	return courts
}

func (c Courts) ByNumber(number int) (Court, bool) {
	for _, court := range c {
		if court.Number == number {
			return court, true
		}
	}
	return Court{}, false
}

func (c Courts) ByClub(clubID string) (Court, bool) {
	for _, court := range c {
		if court.ClubID == clubID {
			return court, true
		}
	}
	return Court{}, false
}

type Actor struct {
	UserID string
	Rights access.Rights
}

type BookRequest struct {
	SessionID  string    `json:"-"`
	MainUserID string    `json:"userId"`
	PartnerID  string    `json:"partnerId"`
	StartDate  time.Time `json:"startDate"`
	Court      int       `json:"court"`
}

type CancelRequest struct {
	SessionID  string    `json:"-"`
	MainUserID string    `json:"userId"`
	PartnerID  string    `json:"partnerId"`
	StartDate  time.Time `json:"startDate"`
	Court      int       `json:"court"`
}

type QrRequest struct {
	BookingID string
	SessionID string
	UserID    string
}
