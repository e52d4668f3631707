package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "github.com/dwikikusuma/storefront/internal/auth/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	reviewdomain "github.com/dwikikusuma/storefront/internal/review/domain"
	"github.com/dwikikusuma/storefront/pkg/apperr"
	"github.com/dwikikusuma/storefront/pkg/logger"
)

type captured struct {
	Method    string
	Path      string
	Query     string
	Body      string
	Type      string
	RequestID string
}

// fakeBackend answers every request with status/body and records what it got.
type fakeBackend struct {
	mu     sync.Mutex
	status int
	body   string
	got    []captured
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.got = append(f.got, captured{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.RawQuery,
		Body:      string(b),
		Type:      r.Header.Get("Content-Type"),
		RequestID: r.Header.Get("X-Request-ID"),
	})
	status, body := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (f *fakeBackend) last(t *testing.T) captured {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.got)
	return f.got[len(f.got)-1]
}

func newClient(t *testing.T, status int, body string) (*Client, *fakeBackend) {
	t.Helper()
	fb := &fakeBackend{status: status, body: body}
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/"}, logger.Discard()), fb
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("ok -> user and message", func(t *testing.T) {
		c, fb := newClient(t, http.StatusOK, `{"message":"Login successful","user":{"_id":"u1","username":"amy","age":"21"}}`)

		res, err := c.Login(ctx, authdomain.Credentials{Username: "amy", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "Login successful", res.Message)
		assert.Equal(t, "u1", res.User.ID)
		assert.Equal(t, authdomain.Age(21), res.User.Age)

		got := fb.last(t)
		assert.Equal(t, http.MethodPost, got.Method)
		assert.Equal(t, "/api/login", got.Path)
		assert.Equal(t, "application/json", got.Type)
		assert.JSONEq(t, `{"username":"amy","password":"pw"}`, got.Body)
		_, err = uuid.Parse(got.RequestID)
		assert.NoError(t, err)
	})

	t.Run("invalid login surfaces message verbatim", func(t *testing.T) {
		c, _ := newClient(t, http.StatusUnauthorized, `{"message":"Invalid username or password"}`)

		_, err := c.Login(ctx, authdomain.Credentials{Username: "amy", Password: "bad"})
		require.Error(t, err)
		assert.Equal(t, "Invalid username or password", err.Error())
		assert.ErrorIs(t, err, apperr.ErrNotAuthenticated)
	})

	t.Run("no message -> default", func(t *testing.T) {
		c, _ := newClient(t, http.StatusInternalServerError, `oops`)

		_, err := c.Login(ctx, authdomain.Credentials{Username: "amy", Password: "pw"})
		assert.EqualError(t, err, "Login failed")
	})
}

func TestSignupSendsNumericAge(t *testing.T) {
	c, fb := newClient(t, http.StatusCreated, `{"message":"User registered successfully"}`)

	msg, err := c.Signup(context.Background(), authdomain.Registration{
		Username: "amy", Password: "pw", ConfirmPassword: "pw", Age: "19", MobileNumber: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", msg)
	assert.JSONEq(t, `{"username":"amy","password":"pw","age":19,"mobileNumber":"9876543210"}`, fb.last(t).Body)
}

func TestGetUserNotFound(t *testing.T) {
	c, fb := newClient(t, http.StatusNotFound, `{"message":"User not found"}`)

	_, err := c.GetUser(context.Background(), "u1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "/api/users/u1", fb.last(t).Path)
	assert.Empty(t, fb.last(t).Type)
}

func TestProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("list -> decoded", func(t *testing.T) {
		c, _ := newClient(t, http.StatusOK, `[{"_id":"p1","name":"Tee","price":199.5,"salePrice":null,"size":["M"]},
			{"_id":"p2","name":"Cap","price":50,"salePrice":40}]`)

		ps, err := c.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, ps, 2)
		assert.False(t, ps[0].SalePrice.Valid)
		assert.Equal(t, []string{"M"}, ps[0].Sizes)
		assert.True(t, ps[1].EffectivePrice().Equal(decimal.NewFromInt(40)))
	})

	t.Run("get failure -> fixed message", func(t *testing.T) {
		c, _ := newClient(t, http.StatusNotFound, `{"message":"Product not found"}`)

		_, err := c.GetProduct(ctx, "p9")
		assert.EqualError(t, err, "Failed to fetch product details.")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("server error without body -> status message", func(t *testing.T) {
		c, _ := newClient(t, http.StatusBadGateway, ``)

		_, err := c.ListProducts(ctx)
		assert.EqualError(t, err, "HTTP error! Status: 502")
	})
}

func TestPlaceOrder(t *testing.T) {
	c, fb := newClient(t, http.StatusCreated, `{"message":"Order placed","order":{"_id":"o1","userId":"u1","orderStatus":"Pending","totalPrice":20.5}}`)

	o, err := c.PlaceOrder(context.Background(), orderdomain.NewOrder{
		UserID:          "u1",
		Products:        []orderdomain.Line{{ProductID: "p1", Name: "Tee", Quantity: 2, Price: decimal.RequireFromString("10.25")}},
		ShippingAddress: orderdomain.ShippingAddress{PersonName: "Amy", Pincode: "560001"},
		PaymentMethod:   orderdomain.DefaultPaymentMethod,
		TotalPrice:      decimal.RequireFromString("20.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)
	assert.Equal(t, orderdomain.StatusPending, o.Status)

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(fb.last(t).Body), &sent))
	assert.Equal(t, "Pending", sent["orderStatus"])
	assert.Equal(t, 20.5, sent["totalPrice"])
	assert.Equal(t, "Cash on Delivery", sent["paymentMethod"])
	line := sent["products"].([]any)[0].(map[string]any)
	assert.Equal(t, "p1", line["productId"])
	assert.Equal(t, 10.25, line["price"])
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket in query", func(t *testing.T) {
		c, fb := newClient(t, http.StatusOK, `[{"_id":"o1","userId":{"_id":"u1"},"orderStatus":"Shipped"}]`)

		orders, err := c.ListOrders(ctx, "u1", orderdomain.BucketHistory)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.True(t, orders[0].OwnedBy("u1"))
		assert.Equal(t, "/api/orders/user/u1", fb.last(t).Path)
		assert.Equal(t, "status=history", fb.last(t).Query)
	})

	t.Run("failure -> bucket default", func(t *testing.T) {
		c, _ := newClient(t, http.StatusInternalServerError, `{}`)

		_, err := c.ListOrders(ctx, "u1", orderdomain.BucketActive)
		assert.EqualError(t, err, "Failed to fetch active orders")
	})
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel -> PUT with owner", func(t *testing.T) {
		c, fb := newClient(t, http.StatusOK, `{"order":{"_id":"o1","orderStatus":"Cancelled"}}`)

		o, err := c.CancelOrder(ctx, "o1", "u1")
		require.NoError(t, err)
		assert.Equal(t, orderdomain.StatusCancelled, o.Status)

		got := fb.last(t)
		assert.Equal(t, http.MethodPut, got.Method)
		assert.Equal(t, "/api/orders/o1/cancel", got.Path)
		assert.JSONEq(t, `{"userId":"u1"}`, got.Body)
	})

	t.Run("confirm failure -> backend message", func(t *testing.T) {
		c, fb := newClient(t, http.StatusBadRequest, `{"message":"Order is not out for delivery"}`)

		_, err := c.ConfirmReceived(ctx, "o1", "u1")
		assert.EqualError(t, err, "Order is not out for delivery")
		assert.Equal(t, "/api/orders/o1/confirm-received", fb.last(t).Path)
	})
}

func TestSubmitReview(t *testing.T) {
	c, fb := newClient(t, http.StatusCreated, `{"message":"Review added"}`)

	err := c.SubmitReview(context.Background(), reviewdomain.NewReview{ProductID: "p1", UserID: "u1", Rating: 5, Comment: "nice"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"productId":"p1","userId":"u1","rating":5,"comment":"nice"}`, fb.last(t).Body)
}
