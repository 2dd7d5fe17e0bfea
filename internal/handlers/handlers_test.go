package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sports-camp360/camp-service/internal/auth"
	"github.com/sports-camp360/camp-service/internal/events"
	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/observability"
	"github.com/sports-camp360/camp-service/internal/payments"
	"github.com/sports-camp360/camp-service/internal/repositories"
	"github.com/sports-camp360/camp-service/internal/repositories/memory"
	"github.com/sports-camp360/camp-service/internal/services"
	"github.com/sports-camp360/camp-service/internal/utils"
	"github.com/sports-camp360/camp-service/internal/validator"
)

var errStoreDown = errors.New("store down")

type testServer struct {
	router    *gin.Engine
	store     *memory.Store
	codec     *auth.TokenCodec
	metrics   *observability.Metrics
	publisher *events.MockEventPublisher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	slogLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	logger := utils.NewSlogLogger(slogLogger)
	v := validator.New()
	store := memory.NewStore()
	publisher := events.NewMockEventPublisher(slogLogger)

	codec, err := auth.NewTokenCodec(auth.TokenConfig{
		Secret: []byte(strings.Repeat("k", 32)),
		TTL:    time.Hour,
		Issuer: "camp-test",
	})
	require.NoError(t, err)

	sm := services.NewServiceManager(store, slogLogger, v, services.PaymentServiceConfig{
		Provider:  payments.LocalProvider{},
		Publisher: publisher,
		Currency:  "usd",
	})
	require.NoError(t, sm.Initialize(context.Background()))

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	hm := NewHandlerManager(sm, codec, auth.NewRoleResolver(store.User(), time.Second), v, logger, metrics, observability.Handler(registry))
	router := gin.New()
	SetupMiddleware(router, logger, metrics)
	hm.SetupRoutes(router)

	return &testServer{router: router, store: store, codec: codec, metrics: metrics, publisher: publisher}
}

func (s *testServer) seedUser(t *testing.T, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{Name: strings.Split(email, "@")[0], Email: email}
	if role != models.RoleNone {
		user.Role = &role
	}
	require.NoError(t, s.store.User().Create(context.Background(), user))
	return user
}

func (s *testServer) token(t *testing.T, email string) string {
	t.Helper()
	token, err := s.codec.Issue(email)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sports camp is running...", w.Body.String())

	w = srv.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	srv.store.FailWith(errStoreDown)
	w = srv.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestIssueToken(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/jwt", map[string]string{"email": "alice@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[TokenResponse](t, w)
	claims, err := srv.codec.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, float64(1), testutil.ToFloat64(srv.metrics.TokensIssuedTotal))

	w = srv.do(t, http.MethodPost, "/jwt", map[string]string{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fields")
}

func TestSessionMiddleware(t *testing.T) {
	srv := newTestServer(t)
	srv.seedUser(t, "root@example.com", models.RoleAdmin)

	t.Run("missing header is 401 without touching the store", func(t *testing.T) {
		srv.store.FailWith(errStoreDown)
		defer srv.store.FailWith(nil)

		w := srv.do(t, http.MethodGet, "/users", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decode[ErrorResponse](t, w)
		assert.True(t, resp.Error)
		assert.Equal(t, "unauthorized access", resp.Message)
	})

	t.Run("garbage token is 403", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/users", nil, "not.a.token")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "forbidden access", decode[ErrorResponse](t, w).Message)
	})

	t.Run("scheme without token is 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", "Bearer")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("token from another secret is 403", func(t *testing.T) {
		other, err := auth.NewTokenCodec(auth.TokenConfig{
			Secret: []byte(strings.Repeat("z", 32)),
			TTL:    time.Hour,
			Issuer: "camp-test",
		})
		require.NoError(t, err)
		token, err := other.Issue("root@example.com")
		require.NoError(t, err)

		w := srv.do(t, http.MethodGet, "/users", nil, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("valid admin token passes", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/users", nil, srv.token(t, "root@example.com"))
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[services.UserListResponse](t, w)
		assert.Equal(t, int64(1), resp.Total)
	})
}

func TestRoleGate(t *testing.T) {
	srv := newTestServer(t)
	srv.seedUser(t, "sam@example.com", models.RoleStudent)
	srv.seedUser(t, "coach@example.com", models.RoleInstructor)
	srv.seedUser(t, "root@example.com", models.RoleAdmin)
	srv.seedUser(t, "nobody@example.com", models.RoleNone)

	t.Run("wrong role is 403 with no side effect", func(t *testing.T) {
		body := map[string]any{"name": "Tennis", "available_seats": 10, "price": 20}
		w := srv.do(t, http.MethodPost, "/classes", body, srv.token(t, "sam@example.com"))
		assert.Equal(t, http.StatusForbidden, w.Code)

		classes, err := srv.store.Class().List(context.Background(), repositories.ClassFilters{})
		require.NoError(t, err)
		assert.Empty(t, classes)
	})

	t.Run("admin does not pass an instructor gate", func(t *testing.T) {
		body := map[string]any{"name": "Tennis", "available_seats": 10, "price": 20}
		w := srv.do(t, http.MethodPost, "/classes", body, srv.token(t, "root@example.com"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown user is 403", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/classes/all", nil, srv.token(t, "ghost@example.com"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("user without role is 403", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/users/dashboard/nobody@example.com", nil, srv.token(t, "nobody@example.com"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("store failure is 500", func(t *testing.T) {
		srv.store.FailWith(errStoreDown)
		defer srv.store.FailWith(nil)

		w := srv.do(t, http.MethodGet, "/classes/all", nil, srv.token(t, "root@example.com"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", decode[ErrorResponse](t, w).Message)
		assert.NotContains(t, w.Body.String(), errStoreDown.Error())
	})

	t.Run("right role passes", func(t *testing.T) {
		body := map[string]any{"name": "Tennis", "available_seats": 10, "price": 20}
		w := srv.do(t, http.MethodPost, "/classes", body, srv.token(t, "coach@example.com"))
		require.Equal(t, http.StatusCreated, w.Code)
		class := decode[models.Class](t, w)
		assert.Equal(t, models.ClassPending, class.Status)
		assert.Equal(t, "coach@example.com", class.InstructorEmail)
	})

	assert.Equal(t, float64(1), testutil.ToFloat64(
		srv.metrics.AuthDecisionsTotal.WithLabelValues(observability.StageRole, observability.OutcomeError)))
}

func TestSelfAccess(t *testing.T) {
	srv := newTestServer(t)
	srv.seedUser(t, "sam@example.com", models.RoleStudent)
	srv.seedUser(t, "eve@example.com", models.RoleStudent)
	token := srv.token(t, "sam@example.com")

	t.Run("mismatch is 401 before any role lookup", func(t *testing.T) {
		srv.store.FailWith(errStoreDown)
		defer srv.store.FailWith(nil)

		w := srv.do(t, http.MethodGet, "/payments?email=eve@example.com", nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing email is 401", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/selected-classes", nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("comparison is case sensitive", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/users/dashboard/Sam@example.com", nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("own email passes", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/payments?email=sam@example.com", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestRegisterPromoteAndDashboard(t *testing.T) {
	srv := newTestServer(t)
	srv.seedUser(t, "root@example.com", models.RoleAdmin)

	w := srv.do(t, http.MethodPost, "/users", map[string]string{"name": "Alice", "email": "alice@example.com"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	alice := decode[models.User](t, w)
	assert.Nil(t, alice.Role)

	w = srv.do(t, http.MethodPost, "/users", map[string]string{"name": "Alice", "email": "alice@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user already exists", decode[MessageResponse](t, w).Message)

	users, total, err := srv.store.User().List(context.Background(), repositories.UserFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)

	aliceToken := srv.token(t, "alice@example.com")

	// Alice cannot promote herself.
	w = srv.do(t, http.MethodPatch, "/make-admin/"+alice.ID, nil, aliceToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(t, http.MethodPatch, "/make-admin/"+alice.ID, nil, srv.token(t, "root@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	// The same token now carries admin rights because roles are read per request.
	w = srv.do(t, http.MethodGet, "/users/dashboard/alice@example.com", nil, aliceToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isAdmin":true,"isInstructor":false,"isStudent":false}`, w.Body.String())

	w = srv.do(t, http.MethodGet, "/users", nil, aliceToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterRejectsPrivilegedRole(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/users", map[string]string{"email": "mallory@example.com", "role": "admin"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, err := srv.store.User().GetByEmail(context.Background(), "mallory@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMakeInstructorUnknownUser(t *testing.T) {
	srv := newTestServer(t)
	srv.seedUser(t, "root@example.com", models.RoleAdmin)

	w := srv.do(t, http.MethodPatch, "/make-instructor/00000000-0000-0000-0000-000000000000", nil, srv.token(t, "root@example.com"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnrollmentAndPaymentFlow(t *testing.T) {
	srv := newTestServer(t)
	srv.seedUser(t, "coach@example.com", models.RoleInstructor)
	srv.seedUser(t, "root@example.com", models.RoleAdmin)
	srv.seedUser(t, "sam@example.com", models.RoleStudent)
	coach := srv.token(t, "coach@example.com")
	root := srv.token(t, "root@example.com")
	sam := srv.token(t, "sam@example.com")

	w := srv.do(t, http.MethodPost, "/classes", map[string]any{"name": "Swimming", "available_seats": 1, "price": 49.99}, coach)
	require.Equal(t, http.StatusCreated, w.Code)
	class := decode[models.Class](t, w)

	// Pending classes cannot be selected.
	w = srv.do(t, http.MethodPost, "/selected-classes", map[string]string{"class_id": class.ID}, sam)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = srv.do(t, http.MethodPatch, "/classes/"+class.ID+"/approve", nil, root)
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodGet, "/classes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Class](t, w), 1)

	w = srv.do(t, http.MethodPost, "/selected-classes", map[string]string{"class_id": class.ID}, sam)
	require.Equal(t, http.StatusCreated, w.Code)
	selection := decode[models.Selection](t, w)

	w = srv.do(t, http.MethodPost, "/selected-classes", map[string]string{"class_id": class.ID}, sam)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = srv.do(t, http.MethodGet, "/selected-classes?email=sam@example.com", nil, sam)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Selection](t, w), 1)

	w = srv.do(t, http.MethodPost, "/create-payment-intent", map[string]any{"price": 49.99}, sam)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[services.PaymentIntentResponse](t, w).ClientSecret)

	w = srv.do(t, http.MethodPost, "/payments", map[string]string{"selection_id": selection.ID, "transaction_id": "pi_123"}, sam)
	require.Equal(t, http.StatusCreated, w.Code)
	payment := decode[models.Payment](t, w)
	assert.Equal(t, 49.99, payment.Price)
	assert.Len(t, srv.publisher.GetPublishedEvents(), 1)

	w = srv.do(t, http.MethodGet, "/enrolled-classes?email=sam@example.com", nil, sam)
	require.Equal(t, http.StatusOK, w.Code)
	enrolled := decode[[]models.Class](t, w)
	require.Len(t, enrolled, 1)
	assert.Equal(t, 1, enrolled[0].Enrolled)
	assert.Equal(t, 0, enrolled[0].AvailableSeats)

	w = srv.do(t, http.MethodGet, "/selected-classes?email=sam@example.com", nil, sam)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Selection](t, w))

	w = srv.do(t, http.MethodGet, "/payments/export", nil, sam)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(t, http.MethodGet, "/payments/export", nil, root)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.NotZero(t, w.Body.Len())
}

func TestDeleteSelectionOwnership(t *testing.T) {
	srv := newTestServer(t)
	srv.seedUser(t, "sam@example.com", models.RoleStudent)
	srv.seedUser(t, "eve@example.com", models.RoleStudent)

	class := &models.Class{Name: "Judo", InstructorEmail: "coach@example.com", AvailableSeats: 5, Price: 10, Status: models.ClassApproved}
	require.NoError(t, srv.store.Class().Create(context.Background(), class))

	w := srv.do(t, http.MethodPost, "/selected-classes", map[string]string{"class_id": class.ID}, srv.token(t, "sam@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	selection := decode[models.Selection](t, w)

	w = srv.do(t, http.MethodDelete, "/selected-classes/"+selection.ID, nil, srv.token(t, "eve@example.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(t, http.MethodDelete, "/selected-classes/"+selection.ID, nil, srv.token(t, "sam@example.com"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicCatalog(t *testing.T) {
	srv := newTestServer(t)
	srv.store.SeedTestimonials(models.Testimonial{Name: "Pat", Quote: "Great camp"})

	for _, path := range []string{"/instructors", "/popular-instructors", "/popular-classes"} {
		w := srv.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := srv.do(t, http.MethodGet, "/testimonials", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Testimonial](t, w), 1)

	w = srv.do(t, http.MethodGet, "/classes?sort=bogus", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	srv.do(t, http.MethodGet, "/users", nil, "")

	w := srv.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `camp_auth_decisions_total{outcome="denied",stage="session"} 1`)
	assert.Contains(t, w.Body.String(), `route="/users"`)
}

func TestPopularInstructorsReflectApprovalsAndPayments(t *testing.T) {
	srv := newTestServer(t)
	srv.seedUser(t, "root@example.com", models.RoleAdmin)
	srv.seedUser(t, "sam@example.com", models.RoleStudent)
	srv.seedUser(t, "kim@example.com", models.RoleStudent)
	root := srv.token(t, "root@example.com")

	coachIDs := map[string]string{}
	for _, email := range []string{"coach@example.com", "pro@example.com"} {
		w := srv.do(t, http.MethodPost, "/users", map[string]string{"name": strings.Split(email, "@")[0], "email": email}, "")
		require.Equal(t, http.StatusCreated, w.Code)
		coachIDs[email] = decode[models.User](t, w).ID

		w = srv.do(t, http.MethodPatch, "/make-instructor/"+coachIDs[email], nil, root)
		require.Equal(t, http.StatusOK, w.Code)
	}

	createApproved := func(coach, name string) models.Class {
		t.Helper()
		w := srv.do(t, http.MethodPost, "/classes", map[string]any{"name": name, "available_seats": 5, "price": 15}, srv.token(t, coach))
		require.Equal(t, http.StatusCreated, w.Code)
		class := decode[models.Class](t, w)
		w = srv.do(t, http.MethodPatch, "/classes/"+class.ID+"/approve", nil, root)
		require.Equal(t, http.StatusOK, w.Code)
		return class
	}
	soccer := createApproved("coach@example.com", "Soccer")
	tennis := createApproved("pro@example.com", "Tennis")

	enroll := func(student string, class models.Class) {
		t.Helper()
		token := srv.token(t, student)
		w := srv.do(t, http.MethodPost, "/selected-classes", map[string]string{"class_id": class.ID}, token)
		require.Equal(t, http.StatusCreated, w.Code)
		selection := decode[models.Selection](t, w)
		w = srv.do(t, http.MethodPost, "/payments", map[string]string{"selection_id": selection.ID, "transaction_id": "pi_" + student + class.ID}, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	enroll("sam@example.com", tennis)
	enroll("kim@example.com", tennis)
	enroll("sam@example.com", soccer)

	w := srv.do(t, http.MethodGet, "/popular-instructors", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	popular := decode[[]models.Instructor](t, w)
	require.Len(t, popular, 2)
	assert.Equal(t, "pro@example.com", popular[0].Email)
	assert.Equal(t, 2, popular[0].ClassesTaken)
	assert.JSONEq(t, `["Tennis"]`, string(popular[0].Classes))
	assert.Equal(t, "coach@example.com", popular[1].Email)
	assert.Equal(t, 1, popular[1].ClassesTaken)

	// Deleting an instructor takes the public profile with it.
	w = srv.do(t, http.MethodDelete, "/users/"+coachIDs["pro@example.com"], nil, root)
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodGet, "/instructors", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	remaining := decode[[]models.Instructor](t, w)
	require.Len(t, remaining, 1)
	assert.Equal(t, "coach@example.com", remaining[0].Email)
}

func TestPaymentForDeniedClassIsRejected(t *testing.T) {
	srv := newTestServer(t)
	srv.seedUser(t, "root@example.com", models.RoleAdmin)
	srv.seedUser(t, "sam@example.com", models.RoleStudent)
	sam := srv.token(t, "sam@example.com")

	class := &models.Class{Name: "Rowing", InstructorEmail: "coach@example.com", AvailableSeats: 2, Price: 30, Status: models.ClassApproved}
	require.NoError(t, srv.store.Class().Create(context.Background(), class))

	w := srv.do(t, http.MethodPost, "/selected-classes", map[string]string{"class_id": class.ID}, sam)
	require.Equal(t, http.StatusCreated, w.Code)
	selection := decode[models.Selection](t, w)

	w = srv.do(t, http.MethodPatch, "/classes/"+class.ID+"/deny", nil, srv.token(t, "root@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodPost, "/payments", map[string]string{"selection_id": selection.ID, "transaction_id": "pi_9"}, sam)
	assert.Equal(t, http.StatusConflict, w.Code)

	stored, err := srv.store.Class().GetByID(context.Background(), class.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.AvailableSeats)
}

func TestAdminListFilters(t *testing.T) {
	srv := newTestServer(t)
	srv.seedUser(t, "root@example.com", models.RoleAdmin)
	srv.seedUser(t, "sam@example.com", models.RoleStudent)
	root := srv.token(t, "root@example.com")

	w := srv.do(t, http.MethodGet, "/users?role=student", nil, root)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[services.UserListResponse](t, w)
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "sam@example.com", resp.Users[0].Email)

	w = srv.do(t, http.MethodGet, "/users?role=coach", nil, root)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, http.MethodGet, "/classes/all?status=pending", nil, root)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = srv.do(t, http.MethodGet, "/classes/all?status=archived", nil, root)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
