package actionlog

import (
	"encoding/json"
	"fmt"
	"time"
)

type ActionType string

const (
	ActionLogin         ActionType = "LOGIN"
	ActionAddBooking    ActionType = "ADD_BOOKING"
	ActionDeleteBooking ActionType = "DELETE_BOOKING"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionLogin, ActionAddBooking, ActionDeleteBooking:
		return true
	}
	return false
}

type Result string

const (
	ResultSuccess Result = "SUCCESS"
	ResultFailed  Result = "FAILED"
)

func (r Result) Valid() bool {
	return r == ResultSuccess || r == ResultFailed
}

// Details is implemented only by the payload types of this package, one per ActionType.
type Details interface {
	ActionType() ActionType
	sealed()
}

type LoginDetails struct {
	Email string `json:"email"`
}

func (LoginDetails) ActionType() ActionType { return ActionLogin }
func (LoginDetails) sealed()                {}

type BookingDetails struct {
	Court        int      `json:"court"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Participants []string `json:"participants"`
}

type AddBookingDetails struct {
	BookingDetails
}

func (AddBookingDetails) ActionType() ActionType { return ActionAddBooking }
func (AddBookingDetails) sealed()                {}

type DeleteBookingDetails struct {
	BookingDetails
}

func (DeleteBookingDetails) ActionType() ActionType { return ActionDeleteBooking }
func (DeleteBookingDetails) sealed()                {}

type Entry struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	UserName        string     `json:"userName,omitempty"`
	ActionType      ActionType `json:"actionType"`
	ActionResult    Result     `json:"actionResult"`
	ActionTimestamp time.Time  `json:"actionTimestamp"`
	ActionDetails   Details    `json:"actionDetails"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// DecodeDetails picks the payload type from the stored action type.
func DecodeDetails(actionType ActionType, raw []byte) (Details, error) {
	var (
		details Details
		err     error
	)

	switch actionType {
	case ActionLogin:
		var d LoginDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case ActionAddBooking:
		var d AddBookingDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case ActionDeleteBooking:
		var d DeleteBookingDetails
		err = json.Unmarshal(raw, &d)
		details = d
	default:
		return nil, fmt.Errorf("%w: '%v'", ErrUnknownActionType, actionType)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode %v details: %w", actionType, err)
	}

	return details, nil
}

type Query struct {
	Page        int
	Limit       int
	UserName    string
	ActionTypes []ActionType
	Status      Result
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type Page struct {
	Data       []Entry    `json:"data"`
	Pagination Pagination `json:"pagination"`
}
