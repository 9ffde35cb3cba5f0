//go:build unit || e2e

// Package remotetest is an in-process stand-in for the venue booking REST
// API. It keeps users, venues and bookings in memory and counts every call.
package remotetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"-"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	FullName     string `json:"fullname"`
	IsVenueOwner bool   `json:"is_venue_owner"`
}

type Venue struct {
	ID          int64    `json:"venueid"`
	Name        string   `json:"venuename"`
	Address     string   `json:"venueaddress"`
	Description string   `json:"description"`
	Features    string   `json:"features"`
	ImageURL    []string `json:"imageurl"`
	MaxCapacity int      `json:"max_capacity"`
	MinPrice    float64  `json:"min_price"`
	MaxPrice    float64  `json:"max_price"`
	OwnerID     int64    `json:"venueownerid"`
}

type Booking struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user"`
	VenueID   int64  `json:"venue"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Verified  bool   `json:"verified"`
	// Extra is echoed back untouched, like a field this client does not model.
	Extra string `json:"extra,omitempty"`
}

type failure struct {
	status int
	body   string
}

type FakeAPI struct {
	Server *httptest.Server

	mu            sync.Mutex
	nextID        int64
	users         map[string]*User
	venues        map[int64]*Venue
	bookings      map[int64]*Booking
	cancellations []map[string]any
	notifications []map[string]any
	payments      []map[string]any
	puts          []map[string]any
	calls         map[string]int
	failures      map[string][]failure
	delays        map[string]time.Duration
}

// New starts the fake and stops it when the test ends.
func New(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{
		nextID:   100,
		users:    map[string]*User{},
		venues:   map[int64]*Venue{},
		bookings: map[int64]*Booking{},
		calls:    map[string]int{},
		failures: map[string][]failure{},
		delays:   map[string]time.Duration{},
	}
	f.Server = httptest.NewServer(f.routes())
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeAPI) URL() string {
	return f.Server.URL
}

func (f *FakeAPI) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/token/", f.token)
	mux.HandleFunc("POST /api/user/register/", f.createAccount)
	mux.HandleFunc("POST /api/register/", f.createProfile)
	mux.HandleFunc("GET /api/userProfiles/{username}/", f.profile)
	mux.HandleFunc("GET /api/venue/{$}", f.listVenues)
	mux.HandleFunc("GET /api/venue/{id}/", f.venueWithBookings)
	mux.HandleFunc("GET /api/venues/id/{id}/", f.venueByID)
	mux.HandleFunc("GET /api/venues/owner/{id}/", f.ownerVenues)
	mux.HandleFunc("POST /api/venueRegister/", f.registerVenue)
	mux.HandleFunc("GET /api/userbookings/{id}/", f.userBookings)
	mux.HandleFunc("POST /api/bookings/", f.createBooking)
	mux.HandleFunc("GET /api/bookings/{id}/", f.getBooking)
	mux.HandleFunc("PUT /api/bookings/{id}/", f.putBooking)
	mux.HandleFunc("DELETE /api/bookings/{id}/", f.deleteBooking)
	mux.HandleFunc("POST /api/create-khalti-payment/", f.createPayment)
	mux.HandleFunc("POST /api/notifications/", f.notify)
	mux.HandleFunc("GET /api/canceled-bookings/{id}/", f.listCancellations)
	mux.HandleFunc("POST /api/canceled-bookings/", f.recordCancellation)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		f.mu.Lock()
		f.calls[key]++
		delay := f.delays[key]
		var fail *failure
		if queued := f.failures[key]; len(queued) > 0 {
			fail = &queued[0]
			f.failures[key] = queued[1:]
		}
		f.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}
		if fail != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(fail.status)
			_, _ = w.Write([]byte(fail.body))
			return
		}
		mux.ServeHTTP(w, r)
	})
}

// Calls counts requests for one method and exact path.
func (f *FakeAPI) Calls(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method+" "+path]
}

// FailNext makes the next call to method+path answer with status and body.
func (f *FakeAPI) FailNext(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := method + " " + path
	f.failures[key] = append(f.failures[key], failure{status: status, body: body})
}

// Delay slows every call to method+path down by d.
func (f *FakeAPI) Delay(method, path string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delays[method+" "+path] = d
}

func (f *FakeAPI) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *FakeAPI) SeedUser(username, password string, owner bool) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &User{
		ID:           f.id(),
		Username:     username,
		Password:     password,
		Email:        username + "@example.com",
		PhoneNumber:  "98000000" + strconv.Itoa(len(f.users)),
		FullName:     strings.ToUpper(username[:1]) + username[1:],
		IsVenueOwner: owner,
	}
	f.users[username] = u
	return u.ID
}

func (f *FakeAPI) SeedVenue(v Venue) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	v.ID = f.id()
	f.venues[v.ID] = &v
	return v.ID
}

func (f *FakeAPI) SeedBooking(b Booking) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = f.id()
	f.bookings[b.ID] = &b
	return b.ID
}

func (f *FakeAPI) Booking(id int64) (Booking, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return Booking{}, false
	}
	return *b, true
}

func (f *FakeAPI) BookingsOf(userID int64) []Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out
}

func (f *FakeAPI) VenueNamed(name string) (Venue, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.venues {
		if v.Name == name {
			return *v, true
		}
	}
	return Venue{}, false
}

func (f *FakeAPI) Notifications() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.notifications...)
}

func (f *FakeAPI) Cancellations() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.cancellations...)
}

func (f *FakeAPI) Payments() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.payments...)
}

// Puts returns the bodies of every booking PUT in order.
func (f *FakeAPI) Puts() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.puts...)
}

// Token issues an access token shaped like the real API's: user_id and exp
// only, so the role has to come from the profile.
func Token(userID int64, ttl time.Duration) string {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"token_type": "access",
		"exp":        time.Now().Add(ttl).Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("remote-secret"))
	if err != nil {
		panic(err)
	}
	return s
}

func (f *FakeAPI) token(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decode(w, r, &body) {
		return
	}
	f.mu.Lock()
	u, ok := f.users[body.Username]
	f.mu.Unlock()
	if !ok || u.Password != body.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "No active account found with the given credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access":  Token(u.ID, time.Hour),
		"refresh": Token(u.ID, 24*time.Hour),
	})
}

func (f *FakeAPI) createAccount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if !decode(w, r, &body) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[body.Username]; exists {
		writeJSON(w, http.StatusBadRequest, map[string]any{"username": []string{"A user with that username already exists."}})
		return
	}
	u := &User{ID: f.id(), Username: body.Username, Password: body.Password, Email: body.Email}
	f.users[body.Username] = u
	writeJSON(w, http.StatusCreated, map[string]any{"id": u.ID, "username": u.Username, "email": u.Email})
}

func (f *FakeAPI) createProfile(w http.ResponseWriter, r *http.Request) {
	var body User
	if !decode(w, r, &body) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[body.Username]
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"username": []string{"Unknown user."}})
		return
	}
	u.FullName = body.FullName
	u.Address = body.Address
	u.PhoneNumber = body.PhoneNumber
	u.IsVenueOwner = body.IsVenueOwner
	writeJSON(w, http.StatusCreated, u)
}

func (f *FakeAPI) profile(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[r.PathValue("username")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (f *FakeAPI) listVenues(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Venue, 0, len(f.venues))
	for id := int64(0); id <= f.nextID; id++ {
		if v, ok := f.venues[id]; ok {
			out = append(out, *v)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) venueWithBookings(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.venueFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, f.withBookedDates(v))
}

func (f *FakeAPI) venueByID(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.venueFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (f *FakeAPI) ownerVenues(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	ownerID, ok := pathInt(w, r)
	if !ok {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []map[string]any{}
	for id := int64(0); id <= f.nextID; id++ {
		if v, ok := f.venues[id]; ok && v.OwnerID == ownerID {
			out = append(out, f.withBookedDates(v))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) registerVenue(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	var v Venue
	if !decode(w, r, &v) {
		return
	}
	if strings.TrimSpace(v.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"venuename": []string{"This field may not be blank."}})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v.ID = f.id()
	f.venues[v.ID] = &v
	writeJSON(w, http.StatusCreated, v)
}

func (f *FakeAPI) userBookings(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	userID, ok := pathInt(w, r)
	if !ok {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []Booking{}
	for id := int64(0); id <= f.nextID; id++ {
		if b, ok := f.bookings[id]; ok && b.UserID == userID {
			out = append(out, *b)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) createBooking(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	var b Booking
	if !decode(w, r, &b) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.venues[b.VenueID]; !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"venue": []string{"Invalid pk - object does not exist."}})
		return
	}
	b.ID = f.id()
	f.bookings[b.ID] = &b
	writeJSON(w, http.StatusCreated, b)
}

func (f *FakeAPI) getBooking(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookingFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (f *FakeAPI) putBooking(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	var raw map[string]any
	if !decode(w, r, &raw) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookingFromPath(w, r)
	if !ok {
		return
	}
	f.puts = append(f.puts, raw)
	if v, ok := raw["verified"].(bool); ok {
		b.Verified = v
	}
	if v, ok := raw["extra"].(string); ok {
		b.Extra = v
	}
	writeJSON(w, http.StatusOK, b)
}

func (f *FakeAPI) deleteBooking(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookingFromPath(w, r)
	if !ok {
		return
	}
	delete(f.bookings, b.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (f *FakeAPI) createPayment(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	var body map[string]any
	if !decode(w, r, &body) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments = append(f.payments, body)
	pidx := fmt.Sprintf("pidx-%d", len(f.payments))
	writeJSON(w, http.StatusOK, map[string]any{
		"payment_url": "https://pay.example.com/?pidx=" + pidx,
		"pidx":        pidx,
	})
}

func (f *FakeAPI) notify(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	var body map[string]any
	if !decode(w, r, &body) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, body)
	writeJSON(w, http.StatusCreated, body)
}

func (f *FakeAPI) listCancellations(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	userID, ok := pathInt(w, r)
	if !ok {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []map[string]any{}
	for _, c := range f.cancellations {
		if id, _ := c["user_id"].(float64); int64(id) == userID {
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) recordCancellation(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	var body map[string]any
	if !decode(w, r, &body) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancellations = append(f.cancellations, body)
	writeJSON(w, http.StatusCreated, body)
}

// withBookedDates embeds the venue's bookings with the guest expanded, the
// way the owner and detail endpoints return them. Callers hold f.mu.
func (f *FakeAPI) withBookedDates(v *Venue) map[string]any {
	booked := []map[string]any{}
	for id := int64(0); id <= f.nextID; id++ {
		b, ok := f.bookings[id]
		if !ok || b.VenueID != v.ID {
			continue
		}
		guest := map[string]any{"id": b.UserID}
		for _, u := range f.users {
			if u.ID == b.UserID {
				guest = map[string]any{"id": u.ID, "username": u.Username, "email": u.Email, "phoneNumber": u.PhoneNumber}
			}
		}
		booked = append(booked, map[string]any{
			"id":         b.ID,
			"start_date": b.StartDate,
			"end_date":   b.EndDate,
			"verified":   b.Verified,
			"user":       guest,
		})
	}
	return map[string]any{
		"venueid":      v.ID,
		"venuename":    v.Name,
		"venueaddress": v.Address,
		"description":  v.Description,
		"features":     v.Features,
		"imageurl":     v.ImageURL,
		"max_capacity": v.MaxCapacity,
		"min_price":    strconv.FormatFloat(v.MinPrice, 'f', 2, 64),
		"max_price":    strconv.FormatFloat(v.MaxPrice, 'f', 2, 64),
		"venueownerid": v.OwnerID,
		"booked_dates": booked,
	}
}

func (f *FakeAPI) venueFromPath(w http.ResponseWriter, r *http.Request) (*Venue, bool) {
	id, ok := pathInt(w, r)
	if !ok {
		return nil, false
	}
	v, ok := f.venues[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
		return nil, false
	}
	return v, true
}

func (f *FakeAPI) bookingFromPath(w http.ResponseWriter, r *http.Request) (*Booking, bool) {
	id, ok := pathInt(w, r)
	if !ok {
		return nil, false
	}
	b, ok := f.bookings[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
		return nil, false
	}
	return b, true
}

func authorized(w http.ResponseWriter, r *http.Request) bool {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Authentication credentials were not provided."})
		return false
	}
	return true
}

func pathInt(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "JSON parse error - " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
