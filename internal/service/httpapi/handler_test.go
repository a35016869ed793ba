package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cart/internal/cart"
	"github.com/vladislavdragonenkov/cart/internal/domain"
	"github.com/vladislavdragonenkov/cart/internal/service/httpapi"
	"github.com/vladislavdragonenkov/cart/internal/storage/memory"
)

type apiClient struct {
	t       *testing.T
	handler http.Handler
	session string
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	entry := logger.WithField("component", "test")

	h := httpapi.NewHandler(memory.NewSessionStore(0), "cart_session", cart.Options{}, entry)
	return &apiClient{t: t, handler: httpapi.NewRouter(h), session: "http-test"}
}

func (c *apiClient) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != "" {
		req.Header.Set(httpapi.SessionHeader, c.session)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

const widgetJSON = `{"id":"1","name":"Widget","quantity":2,"price":10,"tax":"10%","discount":"-10%"}`

func TestAPI_ItemsAndTotal(t *testing.T) {
	api := newAPI(t)

	rec := api.do(http.MethodPost, "/v1/cart/items", widgetJSON)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "http-test", rec.Header().Get(httpapi.SessionHeader))
	assert.Equal(t, 1, decodeBody[map[string]int](t, rec)["count"])

	rec = api.do(http.MethodGet, "/v1/cart/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody[map[string][]domain.LineItem](t, rec)["items"]
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	rec = api.do(http.MethodGet, "/v1/cart/total", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 19.8, decodeBody[map[string]float64](t, rec)["total_due"], 1e-9)

	rec = api.do(http.MethodPost, "/v1/cart/coupons", `{"id":"c1","name":"Spring","code":"S5","discount":"-5%"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(http.MethodGet, "/v1/cart/total?summary=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeBody[domain.Summary](t, rec)
	assert.True(t, summary.CouponsApplied)
	assert.InDelta(t, 18.81, summary.TotalDue, 1e-9)

	rec = api.do(http.MethodDelete, "/v1/cart/items/1?quantity=1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(http.MethodPut, "/v1/cart/items", `{"id":"1","name":"Widget","quantity":4,"price":2.5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(http.MethodGet, "/v1/cart/items", "")
	items = decodeBody[map[string][]domain.LineItem](t, rec)["items"]
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, 2.5, items[0].Price)

	rec = api.do(http.MethodDelete, "/v1/cart/items/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, decodeBody[map[string]int](t, rec)["count"])
}

func TestAPI_ChargesCouponsAndClear(t *testing.T) {
	api := newAPI(t)

	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/v1/cart/items", widgetJSON).Code)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/v1/cart/charges", `{"id":"ship","name":"Shipping","amount":"5.00"}`).Code)

	rec := api.do(http.MethodGet, "/v1/cart/charges", "")
	require.Equal(t, http.StatusOK, rec.Code)
	charges := decodeBody[map[string][]domain.OtherCharge](t, rec)["charges"]
	require.Len(t, charges, 1)

	rec = api.do(http.MethodGet, "/v1/cart/total", "")
	assert.InDelta(t, 24.8, decodeBody[map[string]float64](t, rec)["total_due"], 1e-9)

	require.Equal(t, http.StatusOK, api.do(http.MethodDelete, "/v1/cart/charges/ship", "").Code)
	require.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/v1/cart/charges/ship", "").Code)

	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/v1/cart/coupons", `{"id":"c1","name":"Spring","code":"S5","discount":"-5%"}`).Code)
	rec = api.do(http.MethodGet, "/v1/cart/coupons", "")
	require.Len(t, decodeBody[map[string][]domain.Coupon](t, rec)["coupons"], 1)
	require.Equal(t, http.StatusOK, api.do(http.MethodDelete, "/v1/cart/coupons/c1", "").Code)

	rec = api.do(http.MethodDelete, "/v1/cart", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(http.MethodGet, "/v1/cart/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, decodeBody[map[string]int](t, rec)["count"])
}

func TestAPI_Errors(t *testing.T) {
	api := newAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/v1/cart/items", widgetJSON).Code)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"malformed json", http.MethodPost, "/v1/cart/items", `{`, http.StatusBadRequest, "invalid_json"},
		{"invalid tax", http.MethodPost, "/v1/cart/items", `{"id":"2","name":"x","quantity":1,"price":1,"tax":"5"}`, http.StatusBadRequest, "validation_failed"},
		{"add without quantity", http.MethodPost, "/v1/cart/items", `{"id":"2","name":"Widget","price":1}`, http.StatusBadRequest, "validation_failed"},
		{"add without price", http.MethodPost, "/v1/cart/items", `{"id":"2","name":"Widget","quantity":1}`, http.StatusBadRequest, "validation_failed"},
		{"add without quantity and price", http.MethodPost, "/v1/cart/items", `{"id":"2","name":"Widget"}`, http.StatusBadRequest, "validation_failed"},
		{"update without quantity", http.MethodPut, "/v1/cart/items", `{"id":"1","name":"Widget","price":1}`, http.StatusBadRequest, "validation_failed"},
		{"update without price", http.MethodPut, "/v1/cart/items", `{"id":"1","name":"Widget","quantity":5}`, http.StatusBadRequest, "validation_failed"},
		{"update missing", http.MethodPut, "/v1/cart/items", `{"id":"9","name":"x","quantity":1,"price":1}`, http.StatusNotFound, "not_found"},
		{"over removal", http.MethodDelete, "/v1/cart/items/1?quantity=3", "", http.StatusConflict, "insufficient_quantity"},
		{"bad quantity", http.MethodDelete, "/v1/cart/items/1?quantity=abc", "", http.StatusBadRequest, "invalid_quantity"},
		{"missing coupon", http.MethodDelete, "/v1/cart/coupons/nope", "", http.StatusNotFound, "not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := api.do(tc.method, tc.path, tc.body)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			body := decodeBody[map[string]string](t, rec)
			assert.Equal(t, tc.code, body["code"])
			assert.NotEmpty(t, body["message"])
		})
	}

	rec := api.do(http.MethodGet, "/v1/cart/items", "")
	items := decodeBody[map[string][]domain.LineItem](t, rec)["items"]
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 10.0, items[0].Price)
}

func TestAPI_ExplicitZeroQuantityAndPrice(t *testing.T) {
	api := newAPI(t)

	rec := api.do(http.MethodPost, "/v1/cart/items", `{"id":"gift","name":"Gift wrap","quantity":0,"price":0}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 1, decodeBody[map[string]int](t, rec)["count"])
}

func TestAPI_GeneratesSession(t *testing.T) {
	api := newAPI(t)
	api.session = ""

	rec := api.do(http.MethodPost, "/v1/cart/items", widgetJSON)
	require.Equal(t, http.StatusCreated, rec.Code)
	issued := rec.Header().Get(httpapi.SessionHeader)
	require.NotEmpty(t, issued)

	api.session = issued
	rec = api.do(http.MethodGet, "/v1/cart/count", "")
	assert.Equal(t, 1, decodeBody[map[string]int](t, rec)["count"])
}
