package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotelhub-server/models"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical ranges", "2024-06-01", "2024-06-05", "2024-06-01", "2024-06-05", true},
		{"partial overlap", "2024-06-01", "2024-06-05", "2024-06-04", "2024-06-06", true},
		{"contained range", "2024-06-01", "2024-06-10", "2024-06-03", "2024-06-05", true},
		{"checkout day equals next checkin", "2024-06-01", "2024-06-05", "2024-06-05", "2024-06-07", false},
		{"checkin day equals prior checkout", "2024-06-05", "2024-06-07", "2024-06-01", "2024-06-05", false},
		{"disjoint before", "2024-06-01", "2024-06-03", "2024-06-10", "2024-06-12", false},
		{"disjoint after", "2024-06-10", "2024-06-12", "2024-06-01", "2024-06-03", false},
		{"single shared night", "2024-06-04", "2024-06-05", "2024-06-01", "2024-06-05", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := rangesOverlap(day(tc.aStart), day(tc.aEnd), day(tc.bStart), day(tc.bEnd))
			if got != tc.want {
				t.Fatalf("rangesOverlap(%s,%s vs %s,%s) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"four nights", "2024-06-01", "2024-06-05", 4},
		{"one night", "2024-06-01", "2024-06-02", 1},
		{"same day floors to one", "2024-06-01", "2024-06-01", 1},
		{"month boundary", "2024-06-29", "2024-07-02", 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := nightsBetween(day(tc.checkIn), day(tc.checkOut))
			if got != tc.want {
				t.Fatalf("nightsBetween(%s, %s) = %d, want %d", tc.checkIn, tc.checkOut, got, tc.want)
			}
		})
	}
}

func TestBookingTotal(t *testing.T) {
	override := 80.0
	room := models.Room{
		PricePerNight: &override,
		RoomType:      models.RoomType{BasePrice: 100},
	}

	nights := nightsBetween(day("2024-06-05"), day("2024-06-07"))
	total := room.EffectivePrice() * float64(nights)
	if total != 160 {
		t.Fatalf("expected total 160 for two nights at 80, got %v", total)
	}

	room.PricePerNight = nil
	total = room.EffectivePrice() * float64(nights)
	if total != 200 {
		t.Fatalf("expected total 200 from base price fallback, got %v", total)
	}
}

// buildBookingTestApp wires CreateBooking behind a stub auth middleware so
// the request validation paths can be exercised without a database.
func buildBookingTestApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	app.Post("/api/bookings", func(ctx iris.Context) {
		ctx.Values().Set("userID", uint(1))
		ctx.Values().Set("userRole", "customer")
		ctx.Next()
	}, CreateBooking)

	return app
}

func TestCreateBookingRejectsBadDates(t *testing.T) {
	app := buildBookingTestApp()
	if err := app.Build(); err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	tests := []struct {
		name string
		body string
	}{
		{"malformed check_in_date", `{"room_id":1,"check_in_date":"June 1","check_out_date":"2024-06-05"}`},
		{"malformed check_out_date", `{"room_id":1,"check_in_date":"2024-06-01","check_out_date":"05/06/2024"}`},
		{"checkout before checkin", `{"room_id":1,"check_in_date":"2024-06-05","check_out_date":"2024-06-01"}`},
		{"missing room_id", `{"check_in_date":"2024-06-01","check_out_date":"2024-06-05"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			app.ServeHTTP(resp, req)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
			}
		})
	}
}

func TestValidBookingStatus(t *testing.T) {
	valid := []models.BookingStatus{
		models.BookingUnpaid, models.BookingConfirmed, models.BookingCheckedIn,
		models.BookingCheckedOut, models.BookingCancelled,
	}
	for _, s := range valid {
		if !validBookingStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if validBookingStatus("pending") {
		t.Fatal("expected unknown status to be rejected")
	}
}
