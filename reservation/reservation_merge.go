package reservation

import (
	"slices"

	"github.com/hanksha/court-booking-backend/upstream"
)

// Merge joins upstream sessions with active ledger entries by session id.
// Upstream is authoritative for participants and timing; the ledger only adds attribution.
// Every live session yields exactly one record, and unmatched ledger entries are appended
// without a booking id. The result is ordered by start date.
func Merge(sessions []upstream.Session, entries []Entry, courts Courts) []Reservation {
	local := make(map[string]Entry, len(entries))

	for _, entry := range entries {
		if entry.Deleted {
			continue
		}

		// keep the oldest entry when duplicates exist
		if existing, ok := local[entry.SessionID]; ok && !entry.CreatedAt.Before(existing.CreatedAt) {
			continue
		}

		local[entry.SessionID] = entry
	}

	merged := make([]Reservation, 0, len(sessions)+len(local))
	seen := make(map[string]struct{}, len(sessions))

	for _, session := range sessions {
		if session.Deleted {
			continue
		}

		if _, dup := seen[session.ID]; dup {
			continue
		}

		seen[session.ID] = struct{}{}
		reservation := fromSession(session, courts)

		if entry, ok := local[session.ID]; ok {
			enrich(&reservation, entry)
			delete(local, session.ID)
		}

		merged = append(merged, reservation)
	}

	for _, entry := range entries {
		if leftover, ok := local[entry.SessionID]; ok && leftover.ID == entry.ID {
			merged = append(merged, fromEntry(leftover, courts))
			delete(local, entry.SessionID)
		}
	}

	slices.SortStableFunc(merged, func(a, b Reservation) int {
		return a.StartDate.Compare(b.StartDate)
	})

	return merged
}

func fromSession(session upstream.Session, courts Courts) Reservation {
	reservation := Reservation{
		SessionID:    session.ID,
		BookingID:    session.BookingID,
		ClubID:       session.ClubID,
		StartDate:    session.StartDate,
		TimeLabel:    session.TimeLabel,
		Capacity:     session.Capacity,
		Participants: session.Participants,
		Source:       SourceUpstream,
	}

	if reservation.Participants == nil {
		reservation.Participants = []upstream.Participant{}
	}

	if court, ok := courts.ByClub(session.ClubID); ok {
		reservation.Court = court.Number
	}

	if len(session.Participants) > 0 {
		reservation.MainUserID = session.Participants[0].UserID
	}

	if len(session.Participants) > 1 {
		reservation.PartnerID = session.Participants[1].UserID
	}

	return reservation
}

func enrich(reservation *Reservation, entry Entry) {
	createdAt := entry.CreatedAt
	reservation.CreatedAt = &createdAt
	reservation.BookingActionUserID = entry.BookingActionUserID
	reservation.Source = SourceBoth
	reservation.LedgerMismatch = len(reservation.Participants) == 0
}

func fromEntry(entry Entry, courts Courts) Reservation {
	createdAt := entry.CreatedAt
	reservation := Reservation{
		SessionID:           entry.SessionID,
		ClubID:              entry.ClubID,
		StartDate:           entry.StartDate,
		Participants:        []upstream.Participant{},
		MainUserID:          entry.MainUserID,
		PartnerID:           entry.PartnerID,
		BookingActionUserID: entry.BookingActionUserID,
		CreatedAt:           &createdAt,
		Source:              SourceLedger,
	}

	if court, ok := courts.ByClub(entry.ClubID); ok {
		reservation.Court = court.Number
	}

	return reservation
}
