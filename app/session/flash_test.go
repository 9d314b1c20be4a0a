package session

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carry copies the cookies set on w onto a fresh request.
func carry(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestFlashRoundTrip(t *testing.T) {
	f := NewFlasher("secret")

	w := httptest.NewRecorder()
	f.Add(w, httptest.NewRequest(http.MethodPost, "/create", nil), `Post "Hello" created`)

	req := carry(t, w)
	w = httptest.NewRecorder()
	assert.Equal(t, []string{`Post "Hello" created`}, f.Pop(w, req))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, FlashCookie, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0, "Pop should expire the cookie")
}

func TestFlashAccumulates(t *testing.T) {
	f := NewFlasher("secret")

	w := httptest.NewRecorder()
	f.Add(w, httptest.NewRequest(http.MethodGet, "/", nil), "one")

	req := carry(t, w)
	w = httptest.NewRecorder()
	f.Add(w, req, "two")

	assert.Equal(t, []string{"one", "two"}, f.Pop(httptest.NewRecorder(), carry(t, w)))
}

func TestFlashKeepsNewestMessages(t *testing.T) {
	f := NewFlasher("secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	var w *httptest.ResponseRecorder
	for i := 0; i < MaxFlashes+3; i++ {
		w = httptest.NewRecorder()
		f.Add(w, req, strconv.Itoa(i))
		req = carry(t, w)
	}

	got := f.Pop(httptest.NewRecorder(), req)
	require.Len(t, got, MaxFlashes)
	assert.Equal(t, "3", got[0])
	assert.Equal(t, strconv.Itoa(MaxFlashes+2), got[MaxFlashes-1])
}

func TestFlashWithoutCookie(t *testing.T) {
	f := NewFlasher("secret")
	w := httptest.NewRecorder()

	assert.Nil(t, f.Pop(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Empty(t, w.Result().Cookies())
}

func TestFlashRejectsForeignSignature(t *testing.T) {
	w := httptest.NewRecorder()
	NewFlasher("one secret").Add(w, httptest.NewRequest(http.MethodGet, "/", nil), "hello")

	other := NewFlasher("another secret")
	assert.Nil(t, other.Pop(httptest.NewRecorder(), carry(t, w)))
}

func TestFlashRejectsGarbage(t *testing.T) {
	f := NewFlasher("secret")
	for _, value := range []string{"", "nodot", "!!!.???", "e30.AAAA"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: FlashCookie, Value: value})
		assert.Nil(t, f.Pop(httptest.NewRecorder(), req), value)
	}
}
