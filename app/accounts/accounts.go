package accounts

import (
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/mytheresa/go-shopping-cart/metrics"
	"github.com/mytheresa/go-shopping-cart/models"
)

// Demo account created on the first demo login.
const (
	DemoUsername = "demo"
	DemoPhone    = "13800138000"
	DemoPassword = "123456"
)

// MinPasswordLength applies to password changes.
const MinPasswordLength = 6

var (
	registerPhonePattern = regexp.MustCompile(`^\d{11}$`)
	profilePhonePattern  = regexp.MustCompile(`^1[3-9]\d{9}$`)
)

type UserStore interface {
	GetByPhone(phone string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UsernameTaken(username, exceptPhone string) bool
	PhoneTaken(phone string) bool
	CreateUser(user *models.User) error
	UpdateUser(phone string, user *models.User) error
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Username string
	Phone    string
	Email    string
}

// Accounts implements registration, login and the per-user profile and
// address book. Users are keyed by phone.
type Accounts struct {
	users   UserStore
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewAccounts(users UserStore, log *zap.Logger, m *metrics.Metrics) *Accounts {
	if log == nil {
		log = zap.NewNop()
	}
	return &Accounts{users: users, log: log, metrics: m}
}

// Register creates an account with an empty address book.
func (a *Accounts) Register(username, phone, password string) (*models.User, error) {
	switch {
	case username == "":
		return nil, models.NewValidationError("username", "required")
	case phone == "":
		return nil, models.NewValidationError("phone", "required")
	case password == "":
		return nil, models.NewValidationError("password", "required")
	}
	if a.users.UsernameTaken(username, "") {
		return nil, models.ErrDuplicateUsername
	}
	if a.users.PhoneTaken(phone) {
		return nil, models.ErrDuplicatePhone
	}
	if !registerPhonePattern.MatchString(phone) {
		return nil, models.NewValidationError("phone", "must be 11 digits")
	}

	user := &models.User{
		Username:     username,
		Phone:        phone,
		Password:     password,
		UsualAddress: []models.Address{},
		RegisterTime: models.Now(),
	}
	if err := a.users.CreateUser(user); err != nil {
		return nil, err
	}
	a.log.Info("user registered", zap.String("username", username))
	return user, nil
}

// Login checks phone and password and stamps the last login time.
// If only the stamp could not be saved, the user is returned together with
// the *models.PersistenceError.
func (a *Accounts) Login(phone, password string) (*models.User, error) {
	user, err := a.users.GetByPhone(phone)
	if err != nil {
		a.metrics.RecordLogin("unknown_user")
		return nil, err
	}
	if user.Password != password {
		a.metrics.RecordLogin("wrong_password")
		return nil, models.ErrWrongPassword
	}
	return a.touch(user)
}

// DemoLogin logs into the demo account, registering it first if needed.
func (a *Accounts) DemoLogin() (*models.User, error) {
	user, err := a.users.GetByUsername(DemoUsername)
	if errors.Is(err, models.ErrUserNotFound) {
		user, err = a.users.GetByPhone(DemoPhone)
	}
	if errors.Is(err, models.ErrUserNotFound) {
		user, err = a.Register(DemoUsername, DemoPhone, DemoPassword)
	}
	if err != nil {
		a.metrics.RecordLogin("demo_failed")
		return nil, err
	}
	return a.touch(user)
}

func (a *Accounts) touch(user *models.User) (*models.User, error) {
	user.LastLoginTime = models.Now()
	if err := a.users.UpdateUser(user.Phone, user); err != nil {
		a.metrics.RecordLogin(metrics.OutcomeWriteError)
		return user, err
	}
	a.metrics.RecordLogin(metrics.OutcomeSuccess)
	a.log.Info("user logged in", zap.String("username", user.Username))
	return user, nil
}

// User returns the account registered under phone.
func (a *Accounts) User(phone string) (*models.User, error) {
	return a.users.GetByPhone(phone)
}

// ChangePassword replaces the password after checking the old one.
func (a *Accounts) ChangePassword(phone, oldPassword, newPassword, confirm string) error {
	user, err := a.users.GetByPhone(phone)
	if err != nil {
		return err
	}
	if oldPassword == "" || newPassword == "" || confirm == "" {
		return models.NewValidationError("password", "all fields are required")
	}
	if oldPassword != user.Password {
		return models.ErrWrongPassword
	}
	if newPassword != confirm {
		return models.NewValidationError("confirm", "does not match the new password")
	}
	if len(newPassword) < MinPasswordLength {
		return models.NewValidationError("password", "must be at least 6 characters")
	}

	user.Password = newPassword
	return a.users.UpdateUser(phone, user)
}

// UpdateProfile changes name, phone and email. Name and phone stay unique.
func (a *Accounts) UpdateProfile(phone string, update ProfileUpdate) (*models.User, error) {
	user, err := a.users.GetByPhone(phone)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(update.Username)
	newPhone := strings.TrimSpace(update.Phone)
	email := strings.TrimSpace(update.Email)

	if username == "" {
		return nil, models.NewValidationError("username", "required")
	}
	if !profilePhonePattern.MatchString(newPhone) {
		return nil, models.NewValidationError("phone", "malformed mobile number")
	}
	if !strings.Contains(email, "@") {
		return nil, models.NewValidationError("email", "must contain @")
	}
	if a.users.UsernameTaken(username, phone) {
		return nil, models.ErrDuplicateUsername
	}
	if newPhone != phone && a.users.PhoneTaken(newPhone) {
		return nil, models.ErrDuplicatePhone
	}

	user.Username = username
	user.Phone = newPhone
	user.Email = email
	if err := a.users.UpdateUser(phone, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Addresses returns the address book, oldest first.
func (a *Accounts) Addresses(phone string) ([]models.Address, error) {
	user, err := a.users.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	return user.UsualAddress, nil
}

// AddAddress appends to the address book. Beyond models.MaxAddresses the
// oldest entry is dropped.
func (a *Accounts) AddAddress(phone string, address models.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	user, err := a.users.GetByPhone(phone)
	if err != nil {
		return err
	}
	if len(user.UsualAddress) >= models.MaxAddresses {
		user.UsualAddress = user.UsualAddress[len(user.UsualAddress)-models.MaxAddresses+1:]
	}
	user.UsualAddress = append(user.UsualAddress, address)
	return a.users.UpdateUser(phone, user)
}

// EditAddress replaces the address at index.
func (a *Accounts) EditAddress(phone string, index int, address models.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	user, err := a.users.GetByPhone(phone)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(user.UsualAddress) {
		return models.ErrAddressNotFound
	}
	user.UsualAddress[index] = address
	return a.users.UpdateUser(phone, user)
}

// DeleteAddress removes the address at index.
func (a *Accounts) DeleteAddress(phone string, index int) error {
	user, err := a.users.GetByPhone(phone)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(user.UsualAddress) {
		return models.ErrAddressNotFound
	}
	user.UsualAddress = append(user.UsualAddress[:index], user.UsualAddress[index+1:]...)
	return a.users.UpdateUser(phone, user)
}
