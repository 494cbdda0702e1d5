package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hanksha/court-booking-backend/upstream"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return upstream.NewClient(server.URL, "api-key", "facility-1", upstream.Coordinates{Latitude: 48.85, Longitude: 2.35}, 2*time.Second)
}

func TestFetchDailySessions(t *testing.T) {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/clubs/club-a/sessions", r.URL.Path)
			require.Equal(t, "2026-10-20", r.URL.Query().Get("date"))
			require.Equal(t, "48.85", r.URL.Query().Get("latitude"))
			require.Equal(t, "api-key", r.Header.Get("X-Api-Key"))
			require.Empty(t, r.Header.Get("Authorization"))

			json.NewEncoder(w).Encode([]upstream.Session{
				{ID: "s1", ClubID: "club-a", TimeLabel: "08:00", Capacity: 2},
				{ID: "s2", ClubID: "club-a", TimeLabel: "09:00", Capacity: 2, Participants: []upstream.Participant{{UserID: "u1"}}},
			})
		})

		sessions, err := client.FetchDailySessions(context.Background(), "club-a", date)

		require.NoError(t, err)
		require.Len(t, sessions, 2)
		require.True(t, sessions[0].Available())
		require.False(t, sessions[1].Available())
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.FetchDailySessions(context.Background(), "club-a", date)

		require.ErrorIs(t, err, upstream.ErrUpstream)
	})

	t.Run("empty club", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		})

		_, err := client.FetchDailySessions(context.Background(), " ", date)

		require.Error(t, err)
	})
}

func TestBookSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/sessions/s1/bookings", r.URL.Path)
			require.Equal(t, "Bearer token", r.Header.Get("Authorization"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, map[string]string{"userId": "u1", "partnerId": "u2"}, body)

			json.NewEncoder(w).Encode(upstream.BookingConfirmation{
				Session:     upstream.Session{ID: "s1", BookingID: "b1"},
				Transaction: upstream.Transaction{ID: "t1", Status: "confirmed"},
			})
		})

		confirmation, err := client.BookSession(context.Background(), "s1", "u1", "u2", "token")

		require.NoError(t, err)
		require.Equal(t, "b1", confirmation.Session.BookingID)
		require.Equal(t, "t1", confirmation.Transaction.ID)
	})

	statusCases := []struct {
		name   string
		status int
		err    error
	}{
		{"conflict", http.StatusConflict, upstream.ErrSlotAlreadyBooked},
		{"unauthorized", http.StatusUnauthorized, upstream.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, upstream.ErrUnauthorized},
		{"not found", http.StatusNotFound, upstream.ErrNotFound},
		{"other", http.StatusInternalServerError, upstream.ErrUpstream},
	}

	for _, tc := range statusCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(`{"message":"nope"}`))
			})

			_, err := client.BookSession(context.Background(), "s1", "u1", "u2", "token")

			require.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("not retried on failure", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.BookSession(context.Background(), "s1", "u1", "u2", "token")

		require.ErrorIs(t, err, upstream.ErrUpstream)
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		client := upstream.NewClient(server.URL, "api-key", "facility-1", upstream.Coordinates{}, time.Second)

		_, err := client.BookSession(context.Background(), "s1", "u1", "u2", "token")

		require.ErrorIs(t, err, upstream.ErrUpstreamUnavailable)
		require.ErrorIs(t, err, upstream.ErrUpstream)
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/sessions/s1/bookings", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		err := client.CancelBooking(context.Background(), "s1", "u1", "u2", "token")

		require.NoError(t, err)
	})

	t.Run("expired credential", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		err := client.CancelBooking(context.Background(), "s1", "u1", "u2", "token")

		require.ErrorIs(t, err, upstream.ErrUnauthorized)
	})
}

func TestFetchUserBookings(t *testing.T) {
	from := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/u1/bookings", r.URL.Path)
		require.Equal(t, "2026-10-17", r.URL.Query().Get("from"))

		json.NewEncoder(w).Encode([]upstream.Booking{{ID: "b1", SessionID: "s1"}})
	})

	bookings, err := client.FetchUserBookings(context.Background(), "u1", "token", &from)

	require.NoError(t, err)
	require.Equal(t, []upstream.Booking{{ID: "b1", SessionID: "s1"}}, bookings)
}

func TestFetchQrCode(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/bookings/b1/qr-code", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	})

	first, err := client.FetchQrCode(context.Background(), "b1", "token")
	require.NoError(t, err)

	second, err := client.FetchQrCode(context.Background(), "b1", "token")
	require.NoError(t, err)

	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, first)
	require.Equal(t, first, second)
	require.Equal(t, int32(1), calls.Load())
}

func TestAuthenticate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/login", r.URL.Path)
			json.NewEncoder(w).Encode(upstream.AuthResult{Token: "tok", UserID: "u1", Email: "jane@club.fr"})
		})

		result, err := client.Authenticate(context.Background(), "jane@club.fr", "pwd")

		require.NoError(t, err)
		require.Equal(t, "tok", result.Token)
		require.Equal(t, "u1", result.UserID)
	})

	t.Run("bad credentials", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Authenticate(context.Background(), "jane@club.fr", "bad")

		require.ErrorIs(t, err, upstream.ErrUnauthorized)
	})
}

func TestFetchLicensees(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/facilities/facility-1/licensees", r.URL.Path)
		json.NewEncoder(w).Encode([]upstream.Licensee{{UserID: "u1", Email: "a@b.fr", FirstName: "A", LastName: "B"}})
	})

	licensees, err := client.FetchLicensees(context.Background())

	require.NoError(t, err)
	require.Len(t, licensees, 1)
	require.Equal(t, "u1", licensees[0].UserID)
}
