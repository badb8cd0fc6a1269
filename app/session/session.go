package session

import (
	"github.com/mytheresa/go-shopping-cart/app/cart"
	"github.com/mytheresa/go-shopping-cart/models"
)

// Authenticator logs users in.
type Authenticator interface {
	Login(phone, password string) (*models.User, error)
	DemoLogin() (*models.User, error)
}

// Session is the state of one running client: who is logged in and what is
// in their cart. It is passed explicitly to the operations that need it.
type Session struct {
	user *models.User
	cart *cart.Cart
}

// New returns an anonymous session with an empty cart.
func New() *Session {
	return &Session{cart: cart.New()}
}

// Login authenticates and attaches the user. A user returned alongside a
// write error is still attached; the error is passed on.
func (s *Session) Login(auth Authenticator, phone, password string) error {
	user, err := auth.Login(phone, password)
	if user != nil {
		s.user = user
	}
	return err
}

// DemoLogin attaches the demo account.
func (s *Session) DemoLogin(auth Authenticator) error {
	user, err := auth.DemoLogin()
	if user != nil {
		s.user = user
	}
	return err
}

// Attach sets the current user directly, e.g. after a profile update.
func (s *Session) Attach(user *models.User) {
	s.user = user
}

// Logout drops the user and empties the cart.
func (s *Session) Logout() {
	s.user = nil
	s.cart.Clear()
}

// User returns the current user, or nil.
func (s *Session) User() *models.User {
	return s.user
}

// LoggedIn reports whether a user is attached.
func (s *Session) LoggedIn() bool {
	return s.user != nil
}

// RequireUser returns the current user or models.ErrNotLoggedIn.
func (s *Session) RequireUser() (*models.User, error) {
	if s.user == nil {
		return nil, models.ErrNotLoggedIn
	}
	return s.user, nil
}

// Cart returns the session cart.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}
