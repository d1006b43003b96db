package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-server/internal/application"
	"github.com/oksasatya/go-shop-server/internal/domain/entity"
	"github.com/oksasatya/go-shop-server/internal/session"
	"github.com/oksasatya/go-shop-server/pkg/validation"
)

// AccountService is the slice of the application layer the account
// handlers need; tests substitute fakes.
type AccountService interface {
	CreateAccount(ctx context.Context, in application.CreateAccountInput) (*entity.User, error)
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
}

type AccountHandler struct {
	Svc    AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

// Field order drives the order validation messages are collected in.
type signupForm struct {
	Name       string `form:"name" validate:"required"`
	Lastname   string `form:"lastname" validate:"required"`
	Email      string `form:"email" validate:"required,email"`
	Password   string `form:"password" validate:"required"`
	Repassword string `form:"repassword" validate:"required,eqfield=Password"`
	Birthdate  string `form:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Privacy    string `form:"privacy" validate:"required"`
}

var signupMessages = map[string]string{
	"Name":                "The name must have a value",
	"Lastname":            "The lastname must have a value",
	"Email":               "The email is not valid",
	"Password":            "The password is obligatory",
	"Repassword.required": "The password confirmation is obligatory",
	"Repassword.eqfield":  "Passwords must be same",
	"Birthdate":           "The birthdate must be a valid date",
	"Privacy":             "You must accept our terms and conditions",
}

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

var loginMessages = map[string]string{
	"Email":    "The email is not valid",
	"Password": "The password is obligatory",
}

const genericFailureMsg = "Something went wrong. Please try again."

func (h *AccountHandler) GetLogin(c *gin.Context) {
	render(c, "login.html", gin.H{"Title": "Login"})
}

func (h *AccountHandler) PostLogin(c *gin.Context) {
	var form loginForm
	_ = c.ShouldBind(&form)

	sess := session.FromContext(c)
	if msgs := validation.Struct(form, loginMessages); len(msgs) > 0 {
		sess.AddErrors(msgs)
		redirectBack(c, "/login")
		return
	}

	u, err := h.Svc.Authenticate(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			sess.AddError("Invalid email or password.")
		} else {
			sess.AddError(genericFailureMsg)
		}
		redirectBack(c, "/login")
		return
	}

	sess.LoginAs(u.ID)
	c.Redirect(http.StatusFound, "/")
}

func (h *AccountHandler) GetSignup(c *gin.Context) {
	render(c, "signup.html", gin.H{"Title": "Signup"})
}

func (h *AccountHandler) PostSignup(c *gin.Context) {
	var form signupForm
	_ = c.ShouldBind(&form)

	sess := session.FromContext(c)
	if msgs := validation.Struct(form, signupMessages); len(msgs) > 0 {
		sess.AddErrors(msgs)
		redirectBack(c, "/signup")
		return
	}

	var birthdate *time.Time
	if form.Birthdate != "" {
		t, _ := time.Parse("2006-01-02", form.Birthdate)
		birthdate = &t
	}

	_, err := h.Svc.CreateAccount(c.Request.Context(), application.CreateAccountInput{
		Name:      form.Name,
		Lastname:  form.Lastname,
		Email:     form.Email,
		Password:  form.Password,
		Birthdate: birthdate,
		Privacy:   form.Privacy == "on",
	})
	if err != nil {
		if errors.Is(err, application.ErrDuplicateAccount) {
			sess.AddError("Account already exists.")
			c.Redirect(http.StatusFound, "/signup")
			return
		}
		sess.AddError(genericFailureMsg)
		redirectBack(c, "/signup")
		return
	}

	sess.SetSuccess("Signup successful")
	c.Redirect(http.StatusFound, "/login")
}
