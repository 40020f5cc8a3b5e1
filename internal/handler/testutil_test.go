package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/type/latlng"

	"AllyBackend/internal/models"
	"AllyBackend/internal/store"
	"AllyBackend/pkg/auth"
	"AllyBackend/pkg/config"
	"AllyBackend/pkg/errors"
	"AllyBackend/pkg/middleware"
)

// fakeVerifier 按 token 查表的验证器
type fakeVerifier struct {
	claims map[string]*auth.Claim
}

func (f *fakeVerifier) Verify(_ context.Context, idToken string) (*auth.Claim, error) {
	if claim, ok := f.claims[idToken]; ok {
		return claim, nil
	}
	return nil, errors.WithCode(http.StatusUnauthorized, "Authentication failed. Invalid or expired token.")
}

// fakeUserStore 内存版 UserStore
type fakeUserStore struct {
	users     map[string]models.User
	locations map[string]models.VolunteerLocation
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:     make(map[string]models.User),
		locations: make(map[string]models.VolunteerLocation),
	}
}

func (f *fakeUserStore) Get(_ context.Context, phoneNumber string) (*models.User, error) {
	user, ok := f.users[phoneNumber]
	if !ok {
		return nil, errors.WithCode(http.StatusNotFound, "User profile not found. Please register first.")
	}
	return &user, nil
}

func (f *fakeUserStore) Create(_ context.Context, phoneNumber string, user *models.User) error {
	if _, ok := f.users[phoneNumber]; ok {
		return errors.WithCode(http.StatusConflict, "User already registered.")
	}
	f.users[phoneNumber] = *user
	return nil
}

func (f *fakeUserStore) SetAvailability(_ context.Context, userID string, available bool) error {
	user, ok := f.users[userID]
	if !ok {
		return errors.New("no document to update")
	}
	user.IsAvailable = &available
	f.users[userID] = user
	return nil
}

func (f *fakeUserStore) UpsertLocation(_ context.Context, userID string, location *latlng.LatLng) error {
	f.locations[userID] = models.VolunteerLocation{Location: location}
	return nil
}

func (f *fakeUserStore) DeleteLocation(_ context.Context, userID string) error {
	delete(f.locations, userID)
	return nil
}

// fakeAlertStore 内存版 AlertStore
type fakeAlertStore struct {
	alerts []models.SOSAlert
	nextID int
}

func (f *fakeAlertStore) Create(_ context.Context, alert *models.SOSAlert) (string, error) {
	f.nextID++
	stored := *alert
	stored.ID = "alert-" + string(rune('a'+f.nextID-1))
	f.alerts = append(f.alerts, stored)
	return stored.ID, nil
}

func (f *fakeAlertStore) ListOpen(_ context.Context, limit int) ([]models.SOSAlert, error) {
	open := make([]models.SOSAlert, 0, limit)
	for _, alert := range f.alerts {
		if alert.Status != models.AlertStatusOpen {
			continue
		}
		open = append(open, alert)
		if len(open) == limit {
			break
		}
	}
	return open, nil
}

// fakePlaceStore 内存版 PlaceStore
type fakePlaceStore struct {
	places  []models.Place
	reviews []models.Review
}

func (f *fakePlaceStore) List(_ context.Context, disabilityType string) ([]models.Place, error) {
	if disabilityType == "" {
		return f.places, nil
	}
	filtered := make([]models.Place, 0)
	for _, place := range f.places {
		for _, feature := range place.AccessibilityFeatures {
			if feature == disabilityType {
				filtered = append(filtered, place)
				break
			}
		}
	}
	return filtered, nil
}

func (f *fakePlaceStore) AddReview(_ context.Context, review *models.Review) (string, error) {
	stored := *review
	stored.ID = "review-1"
	f.reviews = append(f.reviews, stored)
	return stored.ID, nil
}

// fakeMarketStore 内存版 MarketStore
type fakeMarketStore struct {
	products []models.Product
	orders   []models.Order
	nextID   int
}

func (f *fakeMarketStore) ListVerified(_ context.Context, limit int) ([]models.Product, error) {
	verified := make([]models.Product, 0, limit)
	for _, product := range f.products {
		if !product.IsVerified {
			continue
		}
		verified = append(verified, product)
		if len(verified) == limit {
			break
		}
	}
	return verified, nil
}

func (f *fakeMarketStore) Get(_ context.Context, productID string) (*models.Product, error) {
	for _, product := range f.products {
		if product.ID == productID {
			return &product, nil
		}
	}
	return nil, errors.WithCode(http.StatusNotFound, "Product not found.")
}

func (f *fakeMarketStore) CreateOrder(_ context.Context, order *models.Order) (string, error) {
	f.nextID++
	stored := *order
	stored.ID = "order-" + string(rune('a'+f.nextID-1))
	f.orders = append(f.orders, stored)
	return stored.ID, nil
}

type testEnv struct {
	engine *gin.Engine
	users  *fakeUserStore
	alerts *fakeAlertStore
	places *fakePlaceStore
	market *fakeMarketStore
}

// newTestEnv 装配测试路由；verifier 为 nil 时为演示模式（闸门放行）
func newTestEnv(t *testing.T, verifier auth.TokenVerifier) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.GlobalConfig = &config.Config{APIPrefix: "/api", AuthPrefix: "auth"}

	env := &testEnv{
		users:  newFakeUserStore(),
		alerts: &fakeAlertStore{},
		places: &fakePlaceStore{},
		market: &fakeMarketStore{},
	}

	stores := &store.Stores{
		Users:  env.users,
		Alerts: env.alerts,
		Places: env.places,
		Market: env.market,
	}

	gate := middleware.AllowAll()
	if verifier != nil {
		gate = middleware.AuthRequired(verifier)
	}

	env.engine = gin.New()
	NewHandlers(stores, verifier, gate).Register(env.engine)
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func userFixture(name, role string) models.User {
	return models.User{Name: name, Role: role}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
	return body
}
