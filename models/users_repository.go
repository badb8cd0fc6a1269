package models

import (
	"go.uber.org/zap"
)

// UsersRepository owns the users file. Phone is the lookup key.
type UsersRepository struct {
	path  string
	log   *zap.Logger
	users []*User
}

// NewUsersRepository loads the users file at path. A missing or malformed
// file yields no users.
func NewUsersRepository(path string, log *zap.Logger) *UsersRepository {
	r := &UsersRepository{path: path, log: nopIfNil(log)}
	var records []*User
	exists, err := loadJSONArray(path, &records)
	switch {
	case !exists:
	case err != nil:
		r.log.Warn("failed to load users, starting with none", zap.String("path", path), zap.Error(err))
	default:
		for _, u := range records {
			if u == nil {
				continue
			}
			if u.UsualAddress == nil {
				u.UsualAddress = []Address{}
			}
			r.users = append(r.users, u)
		}
	}
	return r
}

// Path returns the file the repository persists to.
func (r *UsersRepository) Path() string {
	return r.path
}

// GetAllUsers returns copies of every user.
func (r *UsersRepository) GetAllUsers() []User {
	out := make([]User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u.Clone())
	}
	return out
}

// GetByPhone returns a copy of the user registered with phone.
func (r *UsersRepository) GetByPhone(phone string) (*User, error) {
	if u := r.find(func(u *User) bool { return u.Phone == phone }); u != nil {
		return u.Clone(), nil
	}
	return nil, ErrUserNotFound
}

// GetByUsername returns a copy of the user with the given name.
func (r *UsersRepository) GetByUsername(username string) (*User, error) {
	if u := r.find(func(u *User) bool { return u.Username == username }); u != nil {
		return u.Clone(), nil
	}
	return nil, ErrUserNotFound
}

// UsernameTaken reports whether another user than the one at exceptPhone uses username.
func (r *UsersRepository) UsernameTaken(username, exceptPhone string) bool {
	return r.find(func(u *User) bool { return u.Username == username && u.Phone != exceptPhone }) != nil
}

// PhoneTaken reports whether phone is registered.
func (r *UsersRepository) PhoneTaken(phone string) bool {
	return r.find(func(u *User) bool { return u.Phone == phone }) != nil
}

// CreateUser appends a user and persists the file.
func (r *UsersRepository) CreateUser(user *User) error {
	r.users = append(r.users, user.Clone())
	return r.Save()
}

// UpdateUser replaces the user currently registered under phone with user
// (whose phone may differ) and persists the file.
func (r *UsersRepository) UpdateUser(phone string, user *User) error {
	for i, u := range r.users {
		if u.Phone == phone {
			r.users[i] = user.Clone()
			return r.Save()
		}
	}
	return ErrUserNotFound
}

func (r *UsersRepository) find(match func(*User) bool) *User {
	for _, u := range r.users {
		if match(u) {
			return u
		}
	}
	return nil
}

// Save rewrites the whole users file.
func (r *UsersRepository) Save() error {
	records := r.users
	if records == nil {
		records = []*User{}
	}
	if err := saveJSONArray(r.path, records); err != nil {
		r.log.Error("failed to save users", zap.String("path", r.path), zap.Error(err))
		return err
	}
	return nil
}
