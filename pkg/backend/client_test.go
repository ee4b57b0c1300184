package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, staticToken(token))
	require.NoError(t, err)
	return c, srv
}

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	r := mux.NewRouter()
	r.HandleFunc(APIPrefix+"/policy/getall", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}).Methods("GET")

	c, _ := newTestClient(t, r, "tok123")

	_, err := c.ListPolicies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestMissingTokenSendsNoHeader(t *testing.T) {
	var gotAuth string
	r := mux.NewRouter()
	r.HandleFunc(APIPrefix+"/policy/getall", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}).Methods("GET")

	c, _ := newTestClient(t, r, "")

	_, err := c.ListPolicies(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedFiresHookOncePerResponse(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc(APIPrefix+"/announcement/get-all", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}).Methods("GET")

	c, _ := newTestClient(t, r, "stale")

	var hookCalls int
	c.SetOnUnauthorized(func() { hookCalls++ })

	_, err := c.ListAnnouncements(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, hookCalls)

	_, err = c.ListAnnouncements(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 2, hookCalls)
}

func TestAuthenticateSendsFormCredentials(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc(APIPrefix+"/auth/token", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseForm())
		assert.Equal(t, "a@x.com", req.PostFormValue("username"))
		assert.Equal(t, "secret", req.PostFormValue("password"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok123","token_type":"bearer","user_id":"42","role":"manager"}`))
	}).Methods("POST")

	c, _ := newTestClient(t, r, "")

	tr, err := c.Authenticate(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok123", tr.AccessToken)
	assert.Equal(t, "42", tr.UserID)
	assert.Equal(t, "manager", tr.Role)
}

func TestAuthenticateSurfacesBackendDetailVerbatim(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc(APIPrefix+"/auth/token", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}).Methods("POST")

	c, _ := newTestClient(t, r, "")

	var hookCalls int
	c.SetOnUnauthorized(func() { hookCalls++ })

	_, err := c.Authenticate(context.Background(), "a@x.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", err.Error())
	// A rejected login is a credential error, not a stale session.
	assert.Equal(t, 0, hookCalls)
}

func TestErrorBodyFallsBackToStatus(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc(APIPrefix+"/policy/getall", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json`))
	}).Methods("GET")

	c, _ := newTestClient(t, r, "tok123")

	_, err := c.ListPolicies(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSyncCookieMirrorsToken(t *testing.T) {
	var gotCookie string
	r := mux.NewRouter()
	r.HandleFunc(APIPrefix+"/testimonials/getall", func(w http.ResponseWriter, req *http.Request) {
		gotCookie = ""
		if cookie, err := req.Cookie("access_token"); err == nil {
			gotCookie = cookie.Value
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}).Methods("GET")

	c, _ := newTestClient(t, r, "tok123")

	c.SyncCookie("tok123")
	_, err := c.ListTestimonials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok123", gotCookie)

	c.SyncCookie("")
	_, err = c.ListTestimonials(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotCookie)
}

func TestListEmployeesPassesPagination(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc(APIPrefix+"/employees/getall", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "10", req.URL.Query().Get("skip"))
		assert.Equal(t, "5", req.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Ada","email":"ada@synvotra.test","is_admin":true}]`))
	}).Methods("GET")

	c, _ := newTestClient(t, r, "tok123")

	employees, err := c.ListEmployees(context.Background(), 10, 5)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Ada", employees[0].Name)
	assert.True(t, employees[0].IsAdmin)
}
