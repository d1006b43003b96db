package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-shop-server/internal/application"
	"github.com/oksasatya/go-shop-server/internal/domain/entity"
	"github.com/oksasatya/go-shop-server/internal/session"
)

type fakeAccountService struct {
	createCalls int
	createInput application.CreateAccountInput
	createErr   error
	authCalls   int
	authErr     error
	authUser    *entity.User
}

func (f *fakeAccountService) CreateAccount(_ context.Context, in application.CreateAccountInput) (*entity.User, error) {
	f.createCalls++
	f.createInput = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &entity.User{ID: "user-1", Email: in.Email}, nil
}

func (f *fakeAccountService) Authenticate(context.Context, string, string) (*entity.User, error) {
	f.authCalls++
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.authUser, nil
}

func newAccountRouter(t *testing.T, svc AccountService) (*gin.Engine, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	mgr := session.NewManager(store, "sid", "localhost", false, 336*time.Hour, nil)

	r := gin.New()
	r.Use(mgr.Middleware())
	h := NewAccountHandler(svc, nil)
	r.POST("/login", h.PostLogin)
	r.POST("/signup", h.PostSignup)
	return r, store
}

func postForm(t *testing.T, r *gin.Engine, path, referer string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func sessionData(t *testing.T, store *session.MemoryStore, rr *httptest.ResponseRecorder) *session.Data {
	t.Helper()
	res := http.Response{Header: rr.Header()}
	for _, c := range res.Cookies() {
		if c.Name == "sid" {
			d, err := store.Get(context.Background(), c.Value)
			require.NoError(t, err)
			require.NotNil(t, d)
			return d
		}
	}
	t.Fatal("no sid cookie set")
	return nil
}

func flashMsgs(d *session.Data) []string {
	var out []string
	for _, m := range d.FlashErrors {
		out = append(out, m.Msg)
	}
	return out
}

func validSignupForm() url.Values {
	return url.Values{
		"name":       {"Ana"},
		"lastname":   {"Ruiz"},
		"email":      {"ana@example.com"},
		"password":   {"secret1"},
		"repassword": {"secret1"},
		"privacy":    {"on"},
	}
}

func TestPostSignup_CollectsAllValidationErrors(t *testing.T) {
	svc := &fakeAccountService{}
	r, store := newAccountRouter(t, svc)

	rr := postForm(t, r, "/signup", "/signup", url.Values{})

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/signup", rr.Header().Get("Location"))
	// the service is never invoked on validation failure
	assert.Zero(t, svc.createCalls)

	d := sessionData(t, store, rr)
	assert.Equal(t, []string{
		"The name must have a value",
		"The lastname must have a value",
		"The email is not valid",
		"The password is obligatory",
		"The password confirmation is obligatory",
		"You must accept our terms and conditions",
	}, flashMsgs(d))
}

func TestPostSignup_PasswordMismatch(t *testing.T) {
	svc := &fakeAccountService{}
	r, store := newAccountRouter(t, svc)

	form := validSignupForm()
	form.Set("repassword", "different")
	rr := postForm(t, r, "/signup", "/signup", form)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Zero(t, svc.createCalls)
	assert.Equal(t, []string{"Passwords must be same"}, flashMsgs(sessionData(t, store, rr)))
}

func TestPostSignup_Success(t *testing.T) {
	svc := &fakeAccountService{}
	r, store := newAccountRouter(t, svc)

	form := validSignupForm()
	form.Set("birthdate", "1990-05-01")
	rr := postForm(t, r, "/signup", "/signup", form)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	require.Equal(t, 1, svc.createCalls)
	assert.Equal(t, "Ana", svc.createInput.Name)
	assert.Equal(t, "Ruiz", svc.createInput.Lastname)
	assert.Equal(t, "ana@example.com", svc.createInput.Email)
	assert.True(t, svc.createInput.Privacy)
	require.NotNil(t, svc.createInput.Birthdate)
	assert.Equal(t, 1990, svc.createInput.Birthdate.Year())

	d := sessionData(t, store, rr)
	assert.Empty(t, d.FlashErrors)
	assert.Equal(t, "Signup successful", d.FlashSuccess)
}

func TestPostSignup_DuplicateAccount(t *testing.T) {
	svc := &fakeAccountService{createErr: application.ErrDuplicateAccount}
	r, store := newAccountRouter(t, svc)

	rr := postForm(t, r, "/signup", "/somewhere", validSignupForm())

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/signup", rr.Header().Get("Location"))
	assert.Equal(t, []string{"Account already exists."}, flashMsgs(sessionData(t, store, rr)))
}

func TestPostSignup_PersistenceFailureSurfaces(t *testing.T) {
	svc := &fakeAccountService{createErr: errors.New("store down")}
	r, store := newAccountRouter(t, svc)

	rr := postForm(t, r, "/signup", "/signup", validSignupForm())

	assert.Equal(t, http.StatusFound, rr.Code)
	d := sessionData(t, store, rr)
	require.Len(t, d.FlashErrors, 1)
	assert.Equal(t, genericFailureMsg, d.FlashErrors[0].Msg)
	assert.Empty(t, d.FlashSuccess)
}

func TestPostLogin_ValidationErrors(t *testing.T) {
	svc := &fakeAccountService{}
	r, store := newAccountRouter(t, svc)

	rr := postForm(t, r, "/login", "/login", url.Values{"email": {"not-an-email"}})

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.Zero(t, svc.authCalls)
	assert.Equal(t, []string{
		"The email is not valid",
		"The password is obligatory",
	}, flashMsgs(sessionData(t, store, rr)))
}

func TestPostLogin_InvalidCredentials(t *testing.T) {
	svc := &fakeAccountService{authErr: application.ErrInvalidCredentials}
	r, store := newAccountRouter(t, svc)

	rr := postForm(t, r, "/login", "/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"secret1"},
	})

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	d := sessionData(t, store, rr)
	assert.Equal(t, []string{"Invalid email or password."}, flashMsgs(d))
	// no session is established
	assert.Empty(t, d.UserID)
}

func TestPostLogin_Success(t *testing.T) {
	svc := &fakeAccountService{authUser: &entity.User{ID: "user-1", Email: "ana@example.com"}}
	r, store := newAccountRouter(t, svc)

	rr := postForm(t, r, "/login", "/login", url.Values{
		"email":    {"ana@example.com"},
		"password": {"secret1"},
	})

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	d := sessionData(t, store, rr)
	assert.Equal(t, "user-1", d.UserID)
	assert.Empty(t, d.FlashErrors)
}
