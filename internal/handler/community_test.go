package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/type/latlng"

	"AllyBackend/internal/models"
	"AllyBackend/pkg/auth"
	"AllyBackend/pkg/middleware"
)

func TestTriggerSOS(t *testing.T) {
	t.Run("missing coordinates yields bad request and no alert", func(t *testing.T) {
		cases := []map[string]interface{}{
			{},
			{"latitude": 12.9},
			{"longitude": 77.6},
			{"latitude": 0, "longitude": 77.6},
		}
		for _, body := range cases {
			env := newTestEnv(t, nil)
			w := env.do(t, http.MethodPost, "/api/community/sos/trigger", "", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, env.alerts.alerts)
		}
	})

	t.Run("creates OPEN alert under placeholder identity", func(t *testing.T) {
		env := newTestEnv(t, nil)

		w := env.do(t, http.MethodPost, "/api/community/sos/trigger", "", map[string]interface{}{
			"latitude":  12.9,
			"longitude": 77.6,
		})

		require.Equal(t, http.StatusAccepted, w.Code)
		body := decodeBody(t, w)
		assert.NotEmpty(t, body["alertId"])

		require.Len(t, env.alerts.alerts, 1)
		alert := env.alerts.alerts[0]
		assert.Equal(t, models.AlertStatusOpen, alert.Status)
		assert.Equal(t, middleware.PlaceholderUser, alert.UserID)
		assert.Nil(t, alert.AssignedTo)
		require.NotNil(t, alert.Location)
		assert.Equal(t, 12.9, alert.Location.Latitude)
		assert.Equal(t, 77.6, alert.Location.Longitude)
	})

	t.Run("gated request uses verified phone number", func(t *testing.T) {
		verifier := &fakeVerifier{claims: map[string]*auth.Claim{
			"tok": {UID: "uid-9", PhoneNumber: "+1888"},
		}}
		env := newTestEnv(t, verifier)

		w := env.do(t, http.MethodPost, "/api/community/sos/trigger", "tok", map[string]interface{}{
			"latitude":  12.9,
			"longitude": 77.6,
		})

		require.Equal(t, http.StatusAccepted, w.Code)
		require.Len(t, env.alerts.alerts, 1)
		assert.Equal(t, "+1888", env.alerts.alerts[0].UserID)
	})

	t.Run("gated request without token is rejected", func(t *testing.T) {
		verifier := &fakeVerifier{claims: map[string]*auth.Claim{}}
		env := newTestEnv(t, verifier)

		w := env.do(t, http.MethodPost, "/api/community/sos/trigger", "", map[string]interface{}{
			"latitude":  12.9,
			"longitude": 77.6,
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, env.alerts.alerts)
	})
}

func TestListSOSAlerts(t *testing.T) {
	t.Run("returns at most 10 OPEN alerts", func(t *testing.T) {
		env := newTestEnv(t, nil)
		for i := 0; i < 12; i++ {
			env.alerts.alerts = append(env.alerts.alerts, models.SOSAlert{
				ID:       "open",
				UserID:   "u",
				Status:   models.AlertStatusOpen,
				Location: &latlng.LatLng{Latitude: 1, Longitude: 2},
			})
		}
		env.alerts.alerts = append(env.alerts.alerts,
			models.SOSAlert{ID: "closed", Status: models.AlertStatusClosed},
			models.SOSAlert{ID: "assigned", Status: models.AlertStatusAssigned},
		)

		w := env.do(t, http.MethodGet, "/api/community/sos/alerts", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var alerts []models.SOSAlert
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
		assert.Len(t, alerts, 10)
		for _, alert := range alerts {
			assert.Equal(t, models.AlertStatusOpen, alert.Status)
		}
	})

	t.Run("empty log returns empty array", func(t *testing.T) {
		env := newTestEnv(t, nil)

		w := env.do(t, http.MethodGet, "/api/community/sos/alerts", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestVolunteerStatus(t *testing.T) {
	t.Run("non-boolean isAvailable yields bad request and keeps prior value", func(t *testing.T) {
		env := newTestEnv(t, nil)
		prior := true
		user := userFixture("Bob", "Volunteer")
		user.IsAvailable = &prior
		env.users.users[middleware.PlaceholderUser] = user

		w := env.do(t, http.MethodPost, "/api/community/volunteer/status", "", map[string]interface{}{
			"isAvailable": "yes",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		got := env.users.users[middleware.PlaceholderUser]
		require.NotNil(t, got.IsAvailable)
		assert.True(t, *got.IsAvailable)
	})

	t.Run("missing isAvailable yields bad request", func(t *testing.T) {
		env := newTestEnv(t, nil)

		w := env.do(t, http.MethodPost, "/api/community/volunteer/status", "", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("going available with coordinates upserts one location record", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.users.users[middleware.PlaceholderUser] = userFixture("Bob", "Volunteer")

		w := env.do(t, http.MethodPost, "/api/community/volunteer/status", "", map[string]interface{}{
			"isAvailable": true,
			"latitude":    12.9,
			"longitude":   77.6,
		})

		require.Equal(t, http.StatusOK, w.Code)
		got := env.users.users[middleware.PlaceholderUser]
		require.NotNil(t, got.IsAvailable)
		assert.True(t, *got.IsAvailable)

		require.Len(t, env.users.locations, 1)
		loc := env.users.locations[middleware.PlaceholderUser]
		require.NotNil(t, loc.Location)
		assert.Equal(t, 12.9, loc.Location.Latitude)
	})

	t.Run("going unavailable deletes the location record", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.users.users[middleware.PlaceholderUser] = userFixture("Bob", "Volunteer")
		env.users.locations[middleware.PlaceholderUser] = models.VolunteerLocation{
			Location: &latlng.LatLng{Latitude: 1, Longitude: 2},
		}

		w := env.do(t, http.MethodPost, "/api/community/volunteer/status", "", map[string]interface{}{
			"isAvailable": false,
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, env.users.locations)
	})

	t.Run("available without coordinates leaves locations untouched", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.users.users[middleware.PlaceholderUser] = userFixture("Bob", "Volunteer")

		w := env.do(t, http.MethodPost, "/api/community/volunteer/status", "", map[string]interface{}{
			"isAvailable": true,
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, env.users.locations)
	})
}
