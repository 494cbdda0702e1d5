package reservation

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hanksha/court-booking-backend/actionlog"
	"github.com/hanksha/court-booking-backend/licensee"
	"github.com/hanksha/court-booking-backend/upstream"
)

//go:generate mockgen -source=reservation_service.go -destination=mocks/reservation_service_mock.go -package=mocks

type Ledger interface {
	RecordBooking(ctx context.Context, entry Entry) error
	CancelBooking(ctx context.Context, entry Entry) (Tombstone, error)
	GetFutureBookingsByActor(ctx context.Context, userID string, now time.Time) ([]Entry, error)
	GetEntries(ctx context.Context, filter Filter) ([]Entry, error)
	GetActiveDuplicates(ctx context.Context) ([]Entry, error)
}

type ActionLogger interface {
	Log(ctx context.Context, userID string, details actionlog.Details, success bool)
}

type Directory interface {
	ByID(ctx context.Context, userID string) (licensee.Licensee, bool, error)
}

type Service struct {
	gateway   upstream.Gateway
	ledger    Ledger
	actions   ActionLogger
	directory Directory
	courts    Courts
	loc       *time.Location
	now       func() time.Time
	logger    *slog.Logger
}

type Option func(*Service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(gateway upstream.Gateway, ledger Ledger, actions ActionLogger, directory Directory, courts Courts, loc *time.Location, opts ...Option) *Service {
	s := &Service{
		gateway:   gateway,
		ledger:    ledger,
		actions:   actions,
		directory: directory,
		courts:    courts,
		loc:       loc,
		now:       time.Now,
		logger:    slog.Default().With("component", "reservation"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Courts() Courts {
	return s.courts
}

// ListReservations merges every court's sessions for the day with the ledger.
// A court whose upstream call fails contributes no sessions; the rest of the day is still returned.
func (s *Service) ListReservations(ctx context.Context, date time.Time) ([]Reservation, error) {
	reservations, _, err := s.reconcile(ctx, date)
	return reservations, err
}

func (s *Service) DayGrid(ctx context.Context, date time.Time) (DayView, error) {
	reservations, failed, err := s.reconcile(ctx, date)

	if err != nil {
		return DayView{}, err
	}

	readOnly := s.isPast(date)
	view := DayView{
		Date:       s.day(date).Format(time.DateOnly),
		ReadOnly:   readOnly,
		TimeLabels: []string{},
		Courts:     make([]CourtView, 0, len(s.courts)),
	}

	byCourt := make(map[int][]SlotView, len(s.courts))
	labels := map[string]struct{}{}

	for _, reservation := range reservations {
		label := reservation.TimeLabel

		if len(label) == 0 {
			label = reservation.StartDate.In(s.loc).Format("15:04")
		}

		available := reservation.Source != SourceLedger && len(reservation.Participants) == 0
		slot := SlotView{
			TimeLabel:   label,
			StartDate:   reservation.StartDate,
			Available:   available,
			Bookable:    available && !readOnly,
			Reservation: reservation,
		}

		byCourt[reservation.Court] = append(byCourt[reservation.Court], slot)
		labels[label] = struct{}{}
	}

	for _, court := range s.courts {
		slots := byCourt[court.Number]

		if slots == nil {
			slots = []SlotView{}
		}

		view.Courts = append(view.Courts, CourtView{
			Court:       court.Number,
			ClubID:      court.ClubID,
			Unavailable: slices.Contains(failed, court.Number),
			Slots:       slots,
		})
	}

	for label := range labels {
		view.TimeLabels = append(view.TimeLabels, label)
	}

	slices.Sort(view.TimeLabels)

	return view, nil
}

type courtSessions struct {
	court    Court
	sessions []upstream.Session
	err      error
}

func (s *Service) reconcile(ctx context.Context, date time.Time) ([]Reservation, []int, error) {
	day := s.day(date)
	results := make([]courtSessions, len(s.courts))

	var wg sync.WaitGroup

	for i, court := range s.courts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sessions, err := s.gateway.FetchDailySessions(ctx, court.ClubID, day)
			results[i] = courtSessions{court: court, sessions: sessions, err: err}
		}()
	}

	from := day
	to := day.AddDate(0, 0, 1)
	entries, ledgerErr := s.ledger.GetEntries(ctx, Filter{From: &from, To: &to})

	wg.Wait()

	if ledgerErr != nil {
		// the ledger only adds attribution, availability still comes from upstream
		s.logger.Error("failed to fetch ledger entries, serving upstream data only", "err", ledgerErr, "date", day.Format(time.DateOnly))
		entries = nil
	}

	var (
		sessions []upstream.Session
		failed   []int
	)

	for _, result := range results {
		if result.err != nil {
			s.logger.Warn("court sessions unavailable", "err", result.err, "court", result.court.Number, "clubId", result.court.ClubID)
			failed = append(failed, result.court.Number)
			continue
		}

		sessions = append(sessions, result.sessions...)
	}

	merged := Merge(sessions, entries, s.courts)

	for _, reservation := range merged {
		if reservation.LedgerMismatch {
			s.logger.Warn("ledger holds an active entry for a session upstream reports empty", "sessionId", reservation.SessionID)
		}
	}

	return merged, failed, nil
}

// Book asks upstream first; the ledger and the success log are only written after upstream confirmed.
func (s *Service) Book(ctx context.Context, actor Actor, credential string, req BookRequest) (*upstream.BookingConfirmation, error) {
	court, err := s.validate(req.SessionID, req.MainUserID, req.PartnerID, req.StartDate, req.Court)

	if err != nil {
		return nil, err
	}

	details := actionlog.AddBookingDetails{BookingDetails: s.bookingDetails(court, req.StartDate, req.MainUserID, req.PartnerID)}

	if err := s.checkRules(ctx, actor, req.StartDate, req.MainUserID, req.PartnerID, false); err != nil {
		s.actions.Log(ctx, actor.UserID, details, false)
		return nil, err
	}

	startDate, err := s.scheduledStart(ctx, court, req.SessionID, req.StartDate)

	if err != nil {
		s.actions.Log(ctx, actor.UserID, details, false)
		return nil, err
	}

	details.BookingDetails = s.bookingDetails(court, startDate, req.MainUserID, req.PartnerID)

	confirmation, err := s.gateway.BookSession(ctx, req.SessionID, req.MainUserID, req.PartnerID, credential)

	if err != nil {
		s.actions.Log(ctx, actor.UserID, details, false)
		return nil, err
	}

	clubID := confirmation.Session.ClubID

	if len(clubID) == 0 {
		clubID = court.ClubID
	}

	err = s.ledger.RecordBooking(ctx, Entry{
		ID:                  uuid.NewString(),
		SessionID:           req.SessionID,
		MainUserID:          req.MainUserID,
		PartnerID:           req.PartnerID,
		StartDate:           startDate,
		ClubID:              clubID,
		BookingActionUserID: actor.UserID,
	})

	if err != nil {
		s.logger.Error("booking confirmed upstream but not recorded in ledger", "err", err, "sessionId", req.SessionID, "userId", actor.UserID)
	}

	s.actions.Log(ctx, actor.UserID, details, true)

	return confirmation, nil
}

// Cancel always asks upstream, whether or not the ledger knows the booking.
func (s *Service) Cancel(ctx context.Context, actor Actor, credential string, req CancelRequest) error {
	court, err := s.validate(req.SessionID, req.MainUserID, req.PartnerID, req.StartDate, req.Court)

	if err != nil {
		return err
	}

	details := actionlog.DeleteBookingDetails{BookingDetails: s.bookingDetails(court, req.StartDate, req.MainUserID, req.PartnerID)}

	if err := s.checkRules(ctx, actor, req.StartDate, req.MainUserID, req.PartnerID, true); err != nil {
		s.actions.Log(ctx, actor.UserID, details, false)
		return err
	}

	startDate, err := s.scheduledStart(ctx, court, req.SessionID, req.StartDate)

	if err != nil {
		s.actions.Log(ctx, actor.UserID, details, false)
		return err
	}

	details.BookingDetails = s.bookingDetails(court, startDate, req.MainUserID, req.PartnerID)

	err = s.gateway.CancelBooking(ctx, req.SessionID, req.MainUserID, req.PartnerID, credential)

	if err != nil {
		s.actions.Log(ctx, actor.UserID, details, false)
		return err
	}

	tombstone, err := s.ledger.CancelBooking(ctx, Entry{
		ID:                  uuid.NewString(),
		SessionID:           req.SessionID,
		MainUserID:          req.MainUserID,
		PartnerID:           req.PartnerID,
		StartDate:           startDate,
		ClubID:              court.ClubID,
		BookingActionUserID: actor.UserID,
		Deleted:             true,
	})

	if err != nil {
		s.logger.Error("cancellation confirmed upstream but not recorded in ledger", "err", err, "sessionId", req.SessionID, "userId", actor.UserID)
	} else if tombstone == TombstoneInserted {
		s.logger.Info("cancelled a booking unknown to the ledger", "sessionId", req.SessionID, "userId", actor.UserID)
	}

	s.actions.Log(ctx, actor.UserID, details, true)

	return nil
}

func (s *Service) validate(sessionID, mainUserID, partnerID string, startDate time.Time, courtNumber int) (Court, error) {
	if len(strings.TrimSpace(sessionID)) == 0 {
		return Court{}, fmt.Errorf("%w: sessionId is required", ErrInvalidParameter)
	}

	if len(strings.TrimSpace(mainUserID)) == 0 || len(strings.TrimSpace(partnerID)) == 0 {
		return Court{}, fmt.Errorf("%w: userId and partnerId are required", ErrInvalidParameter)
	}

	if mainUserID == partnerID {
		return Court{}, fmt.Errorf("%w: partner must differ from the main user", ErrInvalidParameter)
	}

	if startDate.IsZero() {
		return Court{}, fmt.Errorf("%w: startDate is required", ErrInvalidParameter)
	}

	court, ok := s.courts.ByNumber(courtNumber)

	if !ok {
		return Court{}, fmt.Errorf("%w: unknown court %d", ErrInvalidParameter, courtNumber)
	}

	return court, nil
}

// checkRules applies the business rules shared by booking and cancellation.
func (s *Service) checkRules(ctx context.Context, actor Actor, startDate time.Time, mainUserID, partnerID string, cancel bool) error {
	if s.isPast(startDate) {
		return ErrPastDate
	}

	involved := actor.UserID == mainUserID || (cancel && actor.UserID == partnerID)

	if !involved && !actor.Rights.CanActForOthers() {
		return ErrNotAllowed
	}

	if cancel {
		return nil
	}

	for _, userID := range []string{mainUserID, partnerID} {
		_, found, err := s.directory.ByID(ctx, userID)

		if err != nil {
			s.logger.Warn("licensee directory unavailable, skipping party check", "err", err)
			return nil
		}

		if !found {
			return fmt.Errorf("%w: unknown licensee '%v'", ErrInvalidParameter, userID)
		}
	}

	return nil
}

// scheduledStart looks the session up in the court's schedule for the claimed day and
// returns the provider's start time. A session missing from that day is rejected, so a
// client cannot pass a future date for a session that is already over.
func (s *Service) scheduledStart(ctx context.Context, court Court, sessionID string, claimed time.Time) (time.Time, error) {
	sessions, err := s.gateway.FetchDailySessions(ctx, court.ClubID, s.day(claimed))

	if err != nil {
		return time.Time{}, err
	}

	idx := slices.IndexFunc(sessions, func(session upstream.Session) bool { return session.ID == sessionID })

	if idx < 0 {
		return time.Time{}, fmt.Errorf("%w: session '%v' is not scheduled on court %d on %v",
			ErrInvalidParameter, sessionID, court.Number, s.day(claimed).Format(time.DateOnly))
	}

	startDate := sessions[idx].StartDate

	if startDate.IsZero() {
		return claimed, nil
	}

	if s.isPast(startDate) {
		return time.Time{}, ErrPastDate
	}

	return startDate, nil
}

func (s *Service) bookingDetails(court Court, startDate time.Time, mainUserID, partnerID string) actionlog.BookingDetails {
	local := startDate.In(s.loc)

	return actionlog.BookingDetails{
		Court:        court.Number,
		Date:         local.Format(time.DateOnly),
		Time:         local.Format("15:04"),
		Participants: []string{mainUserID, partnerID},
	}
}

func (s *Service) day(date time.Time) time.Time {
	local := date.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
}

// isPast reports whether date falls on a day strictly before today in the club timezone.
func (s *Service) isPast(date time.Time) bool {
	return s.day(date).Before(s.day(s.now()))
}

func (s *Service) FutureBookingsByActor(ctx context.Context, userID string) ([]Entry, error) {
	return s.ledger.GetFutureBookingsByActor(ctx, userID, s.now())
}

func (s *Service) UserBookings(ctx context.Context, actor Actor, credential string, from *time.Time) ([]upstream.Booking, error) {
	return s.gateway.FetchUserBookings(ctx, actor.UserID, credential, from)
}

// QrCode returns the booking QR code as a data URI. Without a booking id the
// booking is looked up among the user's upstream bookings by session id.
func (s *Service) QrCode(ctx context.Context, actor Actor, credential string, req QrRequest) (string, error) {
	userID := req.UserID

	if len(userID) == 0 {
		userID = actor.UserID
	}

	if userID != actor.UserID && !actor.Rights.CanActForOthers() {
		return "", ErrNotAllowed
	}

	bookingID := req.BookingID

	if len(bookingID) == 0 {
		if len(req.SessionID) == 0 {
			return "", fmt.Errorf("%w: sessionId or bookingId is required", ErrInvalidParameter)
		}

		bookings, err := s.gateway.FetchUserBookings(ctx, userID, credential, nil)

		if err != nil {
			return "", err
		}

		idx := slices.IndexFunc(bookings, func(b upstream.Booking) bool { return b.SessionID == req.SessionID })

		if idx < 0 {
			return "", fmt.Errorf("%w: no booking for session '%v'", upstream.ErrNotFound, req.SessionID)
		}

		bookingID = bookings[idx].ID
	}

	payload, err := s.gateway.FetchQrCode(ctx, bookingID, credential)

	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload), nil
}

func (s *Service) Ledger(ctx context.Context, from, to *time.Time) ([]Entry, error) {
	return s.ledger.GetEntries(ctx, Filter{From: from, To: to, IncludeDeleted: true})
}

func (s *Service) Anomalies(ctx context.Context) ([]Entry, error) {
	return s.ledger.GetActiveDuplicates(ctx)
}
