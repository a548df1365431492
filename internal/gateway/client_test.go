package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentx-client/internal/domain"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := New(Config{BaseURL: server.URL, AuthTimeout: 0})
	return client, server
}

func TestFetchVehiclesTagsSplitShape(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/vehicles", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"cars":[{"id":1,"name":"Toyota Camry","rentCost":2500}],"bikes":[{"id":1,"name":"Honda CBR","rentCost":800}]}`)
	}).Methods(http.MethodGet)
	client, server := newTestClient(r)
	defer server.Close()

	vehicles, err := client.FetchVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, domain.VehicleTypeCar, vehicles[0].Type)
	assert.Equal(t, domain.VehicleTypeBike, vehicles[1].Type)
}

func TestFetchRentalsStatusError(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/rentals", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	client, server := newTestClient(r)
	defer server.Close()

	_, err := client.FetchRentals(context.Background())
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	assert.Equal(t, "boom", httpErr.Body)
}

func TestMutationRoutes(t *testing.T) {
	var gotMethod, gotPath string
	r := mux.NewRouter()
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotMethod, gotPath = req.Method, req.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	client, server := newTestClient(r)
	defer server.Close()

	ctx := context.Background()
	tests := []struct {
		name   string
		call   func() error
		method string
		path   string
	}{
		{"approve payment", func() error { return client.ApprovePayment(ctx, 5) }, http.MethodPut, "/payments/5/approve"},
		{"reject payment", func() error { return client.RejectPayment(ctx, 5) }, http.MethodPut, "/payments/5/reject"},
		{"mark damaged", func() error { return client.MarkDamaged(ctx, 2) }, http.MethodPut, "/vehicles/2/damage"},
		{"mark repaired", func() error { return client.MarkRepaired(ctx, 2) }, http.MethodPut, "/vehicles/2/repair"},
		{"confirm rental", func() error { return client.ConfirmRental(ctx, 7) }, http.MethodPut, "/rentals/7/confirm"},
		{"reject rental", func() error { return client.RejectRental(ctx, 7) }, http.MethodPut, "/rentals/7/reject"},
		{"complete rental", func() error { return client.CompleteRental(ctx, 7) }, http.MethodPut, "/rentals/7/complete"},
		{"create vehicle", func() error { return client.CreateVehicle(ctx, domain.Vehicle{Name: "Swift"}) }, http.MethodPost, "/vehicles"},
		{"create offer", func() error { return client.CreateOffer(ctx, domain.Offer{Title: "Summer"}) }, http.MethodPost, "/offers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.method, gotMethod)
			assert.Equal(t, tt.path, gotPath)
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "demo@rentx.com", body["email"])

		fmt.Fprint(w, `{"token":"t1","user":{"id":3,"name":"Demo Admin","email":"demo@rentx.com","role":"ADMIN"}}`)
	}).Methods(http.MethodPost)
	client, server := newTestClient(r)
	defer server.Close()

	// Email is lowercased and trimmed before it goes on the wire.
	sess, err := client.Login(context.Background(), "  Demo@RentX.com ", "secret", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "t1", sess.Token)
	assert.Equal(t, "Demo Admin", sess.User.Name)
	assert.Equal(t, domain.RoleAdmin, sess.User.Role)
}

func TestLoginFailures(t *testing.T) {
	t.Run("backend message surfaced", func(t *testing.T) {
		r := mux.NewRouter()
		r.HandleFunc("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message":"Invalid credentials"}`)
		})
		client, server := newTestClient(r)
		defer server.Close()

		_, err := client.Login(context.Background(), "a@b.c", "nope", domain.RoleUser)
		assert.EqualError(t, err, "Invalid credentials")
	})

	t.Run("missing token", func(t *testing.T) {
		r := mux.NewRouter()
		r.HandleFunc("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{}`)
		})
		client, server := newTestClient(r)
		defer server.Close()

		_, err := client.Login(context.Background(), "a@b.c", "nope", domain.RoleUser)
		assert.EqualError(t, err, "invalid email or password")
	})

	t.Run("unreachable backend", func(t *testing.T) {
		client, server := newTestClient(mux.NewRouter())
		server.Close()

		_, err := client.Login(context.Background(), "a@b.c", "pw", domain.RoleUser)
		assert.EqualError(t, err, "no response from server - please check if the backend is running")
	})
}

func TestRegisterStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, "bad request - check your input data"},
		{http.StatusConflict, "user with this email already exists"},
		{http.StatusInternalServerError, "server error - please try again later"},
		{http.StatusTeapot, "registration failed (418)"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/auth/register", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})
			client, server := newTestClient(r)
			defer server.Close()

			err := client.Register(context.Background(), RegisterRequest{
				Name: "New User", Email: "new@rentx.com", Password: "secret1", Role: domain.RoleUser,
			})
			assert.EqualError(t, err, tt.want)
		})
	}

	t.Run("body message wins over status", func(t *testing.T) {
		r := mux.NewRouter()
		r.HandleFunc("/auth/register", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			fmt.Fprint(w, `{"message":"Email taken by another account"}`)
		})
		client, server := newTestClient(r)
		defer server.Close()

		err := client.Register(context.Background(), RegisterRequest{Name: "N", Email: "n@x.io", Password: "secret1"})
		assert.EqualError(t, err, "Email taken by another account")
	})

	t.Run("unreachable backend", func(t *testing.T) {
		client, server := newTestClient(mux.NewRouter())
		server.Close()

		err := client.Register(context.Background(), RegisterRequest{Name: "N", Email: "n@x.io", Password: "secret1"})
		assert.EqualError(t, err, "backend server not reachable - please make sure the server is running")
	})
}

func TestCreateBookingSendsBearerToken(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/bookings", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer t1", req.Header.Get("Authorization"))
		assert.NotEmpty(t, req.Header.Get("X-Request-ID"))

		var body domain.BookingRequest
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, 4, body.VehicleID)
		assert.Equal(t, "Credit Card", body.PaymentMethod)

		fmt.Fprint(w, `{"id":"BK-1001"}`)
	}).Methods(http.MethodPost)
	client, server := newTestClient(r)
	defer server.Close()

	confirmation, err := client.CreateBooking(context.Background(), "t1", domain.BookingRequest{
		VehicleID: 4, PaymentAmount: 2500, PaymentMethod: "Credit Card",
	})
	require.NoError(t, err)
	assert.Equal(t, "BK-1001", confirmation.ID)
}

func TestProbe(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		r := mux.NewRouter()
		r.HandleFunc("/vehicles", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `[]`)
		})
		client, server := newTestClient(r)
		defer server.Close()

		assert.Equal(t, StatusConnected, client.Probe(context.Background()))
	})

	t.Run("unhealthy backend", func(t *testing.T) {
		r := mux.NewRouter()
		r.HandleFunc("/vehicles", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		client, server := newTestClient(r)
		defer server.Close()

		assert.Equal(t, StatusError, client.Probe(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		client, server := newTestClient(mux.NewRouter())
		server.Close()

		assert.Equal(t, StatusDisconnected, client.Probe(context.Background()))
	})
}
