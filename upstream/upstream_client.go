package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

//go:generate mockgen -source=upstream_client.go -destination=mocks/upstream_client_mock.go -package=mocks

type Gateway interface {
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	FetchDailySessions(ctx context.Context, clubID string, date time.Time) ([]Session, error)
	BookSession(ctx context.Context, sessionID, mainUserID, partnerID, credential string) (*BookingConfirmation, error)
	CancelBooking(ctx context.Context, sessionID, mainUserID, partnerID, credential string) error
	FetchUserBookings(ctx context.Context, userID, credential string, from *time.Time) ([]Booking, error)
	FetchQrCode(ctx context.Context, bookingID, credential string) ([]byte, error)
	FetchLicensees(ctx context.Context) ([]Licensee, error)
}

type Client struct {
	baseURL     string
	apiKey      string
	facilityID  string
	coordinates Coordinates
	client      *http.Client
	cache       *cache.Cache
}

func NewClient(baseURL, apiKey, facilityID string, coordinates Coordinates, timeout time.Duration) *Client {
	client := &http.Client{
		Timeout: timeout,
	}
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		facilityID:  facilityID,
		coordinates: coordinates,
		client:      client,
		cache:       cache.New(30*time.Minute, 1*time.Hour),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type participantsRequest struct {
	UserID    string `json:"userId"`
	PartnerID string `json:"partnerId"`
}

func (c *Client) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	loginURL, err := c.getURL("auth", "login")

	if err != nil {
		return nil, err
	}

	var result AuthResult
	err = c.doJSON(ctx, http.MethodPost, loginURL, "", loginRequest{Email: email, Password: password}, &result)

	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) FetchDailySessions(ctx context.Context, clubID string, date time.Time) ([]Session, error) {
	if len(strings.TrimSpace(clubID)) == 0 {
		return nil, errors.New("clubID cannot be empty")
	}

	sessionsURL, err := c.getURL("clubs", clubID, "sessions")

	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Add("date", date.Format(time.DateOnly))
	q.Add("latitude", strconv.FormatFloat(c.coordinates.Latitude, 'f', -1, 64))
	q.Add("longitude", strconv.FormatFloat(c.coordinates.Longitude, 'f', -1, 64))

	sessions := []Session{}
	err = c.doJSON(ctx, http.MethodGet, sessionsURL+"?"+q.Encode(), "", nil, &sessions)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions for club '%v': %w", clubID, err)
	}

	return sessions, nil
}

// BookSession is never retried: the provider has no idempotency keys.
func (c *Client) BookSession(ctx context.Context, sessionID, mainUserID, partnerID, credential string) (*BookingConfirmation, error) {
	bookURL, err := c.getURL("sessions", sessionID, "bookings")

	if err != nil {
		return nil, err
	}

	var confirmation BookingConfirmation
	err = c.doJSON(ctx, http.MethodPost, bookURL, credential, participantsRequest{UserID: mainUserID, PartnerID: partnerID}, &confirmation)

	if err != nil {
		return nil, fmt.Errorf("failed to book session '%v': %w", sessionID, err)
	}

	return &confirmation, nil
}

func (c *Client) CancelBooking(ctx context.Context, sessionID, mainUserID, partnerID, credential string) error {
	cancelURL, err := c.getURL("sessions", sessionID, "bookings")

	if err != nil {
		return err
	}

	err = c.doJSON(ctx, http.MethodDelete, cancelURL, credential, participantsRequest{UserID: mainUserID, PartnerID: partnerID}, nil)

	if err != nil {
		return fmt.Errorf("failed to cancel booking for session '%v': %w", sessionID, err)
	}

	return nil
}

func (c *Client) FetchUserBookings(ctx context.Context, userID, credential string, from *time.Time) ([]Booking, error) {
	bookingsURL, err := c.getURL("users", userID, "bookings")

	if err != nil {
		return nil, err
	}

	if from != nil {
		bookingsURL += "?from=" + url.QueryEscape(from.Format(time.DateOnly))
	}

	bookings := []Booking{}
	err = c.doJSON(ctx, http.MethodGet, bookingsURL, credential, nil, &bookings)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for user '%v': %w", userID, err)
	}

	return bookings, nil
}

// FetchQrCode returns the PNG payload; QR codes never change for a booking so they are cached.
func (c *Client) FetchQrCode(ctx context.Context, bookingID, credential string) ([]byte, error) {
	cachedQrCode, found := c.cache.Get("qr:" + bookingID)

	if found {
		return cachedQrCode.([]byte), nil
	}

	qrURL, err := c.getURL("bookings", bookingID, "qr-code")

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, qrURL, http.NoBody)

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req, credential)
	req.Header.Set("Accept", "image/png")

	payload, err := c.send(req)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch qr code for booking '%v': %w", bookingID, err)
	}

	c.cache.Set("qr:"+bookingID, payload, cache.DefaultExpiration)

	return payload, nil
}

func (c *Client) FetchLicensees(ctx context.Context) ([]Licensee, error) {
	licenseesURL, err := c.getURL("facilities", c.facilityID, "licensees")

	if err != nil {
		return nil, err
	}

	licensees := []Licensee{}
	err = c.doJSON(ctx, http.MethodGet, licenseesURL, "", nil, &licensees)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch licensees: %w", err)
	}

	return licensees, nil
}

func (c *Client) doJSON(ctx context.Context, method, reqURL, credential string, in any, out any) error {
	body := io.Reader(http.NoBody)

	if in != nil {
		encoded, err := json.Marshal(in)

		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}

		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req, credential)

	bodyBytes, err := c.send(req)

	if err != nil {
		return err
	}

	if out == nil || len(bodyBytes) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("%w: failed reading body: %w", ErrUpstream, err)
	}

	return nil
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %w", ErrUpstreamUnavailable, err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if readErr != nil {
			return nil, fmt.Errorf("%w: request failed with status %d; also failed reading body: %w", statusError(res.StatusCode), res.StatusCode, readErr)
		}
		return nil, fmt.Errorf("%w: request failed with status '%v' and body:\n%v", statusError(res.StatusCode), res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return nil, fmt.Errorf("%w: failed to read body: %w", ErrUpstreamUnavailable, readErr)
	}

	return bodyBytes, nil
}

func statusError(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrSlotAlreadyBooked
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrUpstream
	}
}

func (c *Client) setHeaders(req *http.Request, credential string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	if len(credential) != 0 {
		req.Header.Set("Authorization", "Bearer "+credential)
	}
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
