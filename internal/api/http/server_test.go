package http

import (
	"context"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ibrahimhozhun/food-ordering-app/internal/api/http/handlers"
	"github.com/ibrahimhozhun/food-ordering-app/internal/auth"
	"github.com/ibrahimhozhun/food-ordering-app/internal/config"
	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
	"github.com/ibrahimhozhun/food-ordering-app/internal/events"
	"github.com/ibrahimhozhun/food-ordering-app/internal/observability"
	"github.com/ibrahimhozhun/food-ordering-app/internal/service"
)

// In-memory repositories backing the full HTTP stack in tests. The routes,
// middlewares and handlers are the production ones; only the storage and the
// external dependencies are swapped out.

type memCustomerRepo struct{ records map[uuid.UUID]*domain.Customer }

func (r *memCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	customer.ID = uuid.New()
	customer.CreatedAt = time.Now()
	clone := *customer
	r.records[customer.ID] = &clone
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	if customer, ok := r.records[id]; ok {
		clone := *customer
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, customer := range r.records {
		if customer.Email == email {
			clone := *customer
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	customers := make([]domain.Customer, 0, len(r.records))
	for _, customer := range r.records {
		customers = append(customers, *customer)
	}
	return customers, nil
}

type memRestaurantRepo struct{ records map[uuid.UUID]*domain.Restaurant }

func (r *memRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant) error {
	restaurant.ID = uuid.New()
	restaurant.CreatedAt = time.Now()
	clone := *restaurant
	r.records[restaurant.ID] = &clone
	return nil
}

func (r *memRestaurantRepo) Update(_ context.Context, restaurant *domain.Restaurant) error {
	if _, ok := r.records[restaurant.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *restaurant
	r.records[restaurant.ID] = &clone
	return nil
}

func (r *memRestaurantRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	if restaurant, ok := r.records[id]; ok {
		clone := *restaurant
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memRestaurantRepo) GetByEmail(_ context.Context, email string) (*domain.Restaurant, error) {
	for _, restaurant := range r.records {
		if restaurant.Email == email {
			clone := *restaurant
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memRestaurantRepo) List(_ context.Context) ([]domain.Restaurant, error) {
	restaurants := make([]domain.Restaurant, 0, len(r.records))
	for _, restaurant := range r.records {
		restaurants = append(restaurants, *restaurant)
	}
	return restaurants, nil
}

type memFoodRepo struct{ records map[uuid.UUID]*domain.Food }

func (r *memFoodRepo) Create(_ context.Context, food *domain.Food) error {
	food.ID = uuid.New()
	clone := *food
	r.records[food.ID] = &clone
	return nil
}

func (r *memFoodRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Food, error) {
	if food, ok := r.records[id]; ok {
		clone := *food
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memFoodRepo) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]domain.Food, error) {
	var foods []domain.Food
	for _, food := range r.records {
		if food.RestaurantID == restaurantID {
			foods = append(foods, *food)
		}
	}
	return foods, nil
}

type memOrderRepo struct {
	records map[uuid.UUID]*domain.Order
	foods   *memFoodRepo
}

func (r *memOrderRepo) Create(_ context.Context, order *domain.Order) error {
	order.ID = uuid.New()
	order.CreatedAt = time.Now()
	clone := *order
	r.records[order.ID] = &clone
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, ok := r.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *order
	if food, err := r.foods.GetByID(ctx, clone.FoodID); err == nil {
		clone.Food = food
	}
	return &clone, nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.OrderStatus) error {
	order, ok := r.records[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.Status = status
	return nil
}

func (r *memOrderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	var orders []domain.Order
	for id, order := range r.records {
		if order.CustomerID == customerID {
			loaded, _ := r.GetByID(ctx, id)
			orders = append(orders, *loaded)
		}
	}
	return orders, nil
}

func (r *memOrderRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	var orders []domain.Order
	for id, order := range r.records {
		if order.RestaurantID == restaurantID {
			loaded, _ := r.GetByID(ctx, id)
			orders = append(orders, *loaded)
		}
	}
	return orders, nil
}

type memLikeKey struct{ customerID, restaurantID uuid.UUID }

type memLikeRepo struct {
	links       map[memLikeKey]struct{}
	restaurants *memRestaurantRepo
}

func (r *memLikeRepo) Exists(_ context.Context, customerID, restaurantID uuid.UUID) (bool, error) {
	_, ok := r.links[memLikeKey{customerID, restaurantID}]
	return ok, nil
}

func (r *memLikeRepo) Add(_ context.Context, customerID, restaurantID uuid.UUID) error {
	r.links[memLikeKey{customerID, restaurantID}] = struct{}{}
	return nil
}

func (r *memLikeRepo) Remove(_ context.Context, customerID, restaurantID uuid.UUID) error {
	delete(r.links, memLikeKey{customerID, restaurantID})
	return nil
}

func (r *memLikeRepo) ListLikedRestaurants(_ context.Context, customerID uuid.UUID) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	for key := range r.links {
		if key.customerID != customerID {
			continue
		}
		if restaurant, ok := r.restaurants.records[key.restaurantID]; ok {
			restaurants = append(restaurants, *restaurant)
		}
	}
	return restaurants, nil
}

type serverFixture struct {
	app         *fiber.App
	restaurants *memRestaurantRepo
	foods       *memFoodRepo
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{
			Name:                  "food-ordering-app",
			Env:                   "test",
			RequestTimeoutSeconds: 5,
		},
		Auth: config.AuthConfig{
			JWTSecret:       "server-test-secret",
			AccessTokenDays: 15,
			BcryptCost:      bcrypt.MinCost,
		},
		CORS: config.CORSConfig{ClientURL: "http://localhost:3000"},
	}

	customers := &memCustomerRepo{records: make(map[uuid.UUID]*domain.Customer)}
	restaurants := &memRestaurantRepo{records: make(map[uuid.UUID]*domain.Restaurant)}
	foods := &memFoodRepo{records: make(map[uuid.UUID]*domain.Food)}
	orders := &memOrderRepo{records: make(map[uuid.UUID]*domain.Order), foods: foods}
	likes := &memLikeRepo{links: make(map[memLikeKey]struct{}), restaurants: restaurants}

	dispatcher := events.NewInMemoryDispatcher()
	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(cfg, service.AuthDependencies{
		CustomerRepo:   customers,
		RestaurantRepo: restaurants,
	})
	customerService := service.NewCustomerService(service.CustomerDependencies{
		CustomerRepo:   customers,
		RestaurantRepo: restaurants,
		FoodRepo:       foods,
		OrderRepo:      orders,
		LikeRepo:       likes,
	})
	restaurantService := service.NewRestaurantService(service.RestaurantDependencies{
		RestaurantRepo: restaurants,
		FoodRepo:       foods,
		OrderRepo:      orders,
	})
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:      orders,
		RestaurantRepo: restaurants,
		FoodRepo:       foods,
		Dispatcher:     dispatcher,
	})

	cookies := auth.NewCookieManager(authService.TokenManager().TTL())
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), customers, restaurants, logger)

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, cfg)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authService, customerService, restaurantService, cookies),
		Customers:      handlers.NewCustomersHandler(customerService),
		Restaurants:    handlers.NewRestaurantsHandler(restaurantService),
		Orders:         handlers.NewOrdersHandler(orderService),
		AuthMiddleware: authMiddleware,
	})

	return &serverFixture{app: app, restaurants: restaurants, foods: foods}
}

func (f *serverFixture) do(t *testing.T, method, path, body string, cookies ...*stdhttp.Cookie) *stdhttp.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err := f.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *stdhttp.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return body
}

func findSessionCookie(resp *stdhttp.Response) *stdhttp.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}
	return nil
}

func TestSignupCustomerEndToEnd(t *testing.T) {
	f := newServerFixture(t)

	resp := f.do(t, stdhttp.MethodPost, "/auth/signup/CUSTOMER",
		`{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`)
	if resp.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	cookie := findSessionCookie(resp)
	if cookie == nil {
		t.Fatal("session cookie not set")
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}

	body := decodeBody(t, resp)
	if body["username"] != "alice" || body["email"] != "alice@example.com" {
		t.Fatalf("body = %v", body)
	}
	if _, ok := body["access_token"]; ok {
		t.Fatal("token leaked into the response body")
	}
	if _, ok := body["password"]; ok {
		t.Fatal("password leaked into the response body")
	}
	if orders, ok := body["orders"].([]any); !ok || len(orders) != 0 {
		t.Fatalf("orders = %v, want []", body["orders"])
	}
	if liked, ok := body["liked_restaurants"].([]any); !ok || len(liked) != 0 {
		t.Fatalf("liked_restaurants = %v, want []", body["liked_restaurants"])
	}
}

func TestSignupRejectsBadRoleSegment(t *testing.T) {
	f := newServerFixture(t)

	// The role segment is the uppercase enum value; anything else, including
	// lowercase spellings, is refused.
	for _, role := range []string{"admin", "customer", "Restaurant"} {
		resp := f.do(t, stdhttp.MethodPost, "/auth/signup/"+role,
			`{"username":"eve","email":"eve@example.com","password":"Sup3rSecret"}`)
		if resp.StatusCode != stdhttp.StatusUnprocessableEntity {
			t.Fatalf("role %q: status = %d, want 422", role, resp.StatusCode)
		}
	}
}

func TestSignupWeakPassword(t *testing.T) {
	f := newServerFixture(t)

	resp := f.do(t, stdhttp.MethodPost, "/auth/signup/CUSTOMER",
		`{"username":"alice","email":"alice@example.com","password":"short"}`)
	if resp.StatusCode != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestMeRequiresSession(t *testing.T) {
	f := newServerFixture(t)

	resp := f.do(t, stdhttp.MethodGet, "/auth/me", "")
	if resp.StatusCode != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("body = %v, want error envelope", body)
	}
	if errObj["code"] != "INVALID_CREDENTIALS" {
		t.Fatalf("error code = %v", errObj["code"])
	}
}

func TestSessionRoundTrip(t *testing.T) {
	f := newServerFixture(t)

	signup := f.do(t, stdhttp.MethodPost, "/auth/signup/CUSTOMER",
		`{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`)
	cookie := findSessionCookie(signup)
	if cookie == nil {
		t.Fatal("session cookie not set")
	}

	resp := f.do(t, stdhttp.MethodGet, "/auth/me", "", cookie)
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["email"] != "alice@example.com" {
		t.Fatalf("body = %v", body)
	}
}

func TestSigninWrongPasswordMessage(t *testing.T) {
	f := newServerFixture(t)

	f.do(t, stdhttp.MethodPost, "/auth/signup/CUSTOMER",
		`{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`)

	resp := f.do(t, stdhttp.MethodPost, "/auth/signin/CUSTOMER",
		`{"email":"alice@example.com","password":"WrongPass1"}`)
	if resp.StatusCode != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]any)
	if errObj["message"] != "Incorrect email or password" {
		t.Fatalf("message = %v", errObj["message"])
	}
}

func TestSignoutClearsCookie(t *testing.T) {
	f := newServerFixture(t)

	resp := f.do(t, stdhttp.MethodPost, "/auth/signout", "")
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	cookie := findSessionCookie(resp)
	if cookie == nil {
		t.Fatal("signout must send an expired cookie")
	}
	if cookie.Value != "" {
		t.Fatalf("cookie value = %q, want empty", cookie.Value)
	}
	body := decodeBody(t, resp)
	if body["message"] != "Successfully signed out" {
		t.Fatalf("body = %v", body)
	}
}

func TestOrderStatusRouteRefusesCustomers(t *testing.T) {
	f := newServerFixture(t)

	signup := f.do(t, stdhttp.MethodPost, "/auth/signup/CUSTOMER",
		`{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`)
	cookie := findSessionCookie(signup)
	if cookie == nil {
		t.Fatal("session cookie not set")
	}

	resp := f.do(t, stdhttp.MethodPatch, "/orders/"+uuid.NewString()+"/status",
		`{"status":"preparing"}`, cookie)
	if resp.StatusCode != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestOrderFlowEndToEnd(t *testing.T) {
	f := newServerFixture(t)

	restaurantSignup := f.do(t, stdhttp.MethodPost, "/auth/signup/RESTAURANT",
		`{"username":"pizzeria","email":"pizza@example.com","password":"Sup3rSecret","restaurant_name":"Napoli"}`)
	if restaurantSignup.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("restaurant signup status = %d", restaurantSignup.StatusCode)
	}
	restaurantCookie := findSessionCookie(restaurantSignup)
	restaurantBody := decodeBody(t, restaurantSignup)
	restaurantID := restaurantBody["id"].(string)

	menuResp := f.do(t, stdhttp.MethodPost, "/restaurants/me/menu",
		`{"title":"Margherita","price":12.5,"image":"https://cdn.example.com/margherita.jpg"}`, restaurantCookie)
	if menuResp.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("menu status = %d", menuResp.StatusCode)
	}
	menuBody := decodeBody(t, menuResp)
	foodID := menuBody["id"].(string)

	customerSignup := f.do(t, stdhttp.MethodPost, "/auth/signup/CUSTOMER",
		`{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`)
	customerCookie := findSessionCookie(customerSignup)

	orderResp := f.do(t, stdhttp.MethodPost, "/orders/new-order",
		`{"restaurant_id":"`+restaurantID+`","food_id":"`+foodID+`"}`, customerCookie)
	if orderResp.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("order status = %d", orderResp.StatusCode)
	}
	orderBody := decodeBody(t, orderResp)
	if orderBody["status"] != "pending" {
		t.Fatalf("order body = %v", orderBody)
	}
	orderID := orderBody["id"].(string)

	updateResp := f.do(t, stdhttp.MethodPatch, "/orders/"+orderID+"/status",
		`{"status":"preparing"}`, restaurantCookie)
	if updateResp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("update status = %d", updateResp.StatusCode)
	}
	updated := decodeBody(t, updateResp)
	if updated["status"] != "preparing" {
		t.Fatalf("updated body = %v", updated)
	}

	getResp := f.do(t, stdhttp.MethodGet, "/orders/"+orderID, "", customerCookie)
	if getResp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("get status = %d", getResp.StatusCode)
	}
}
