package user

import (
	"errors"

	"github.com/trezcool/campusconnect/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrEmptyCredentials   = errors.New("empty credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	Repository interface {
		QueryAllUsers() ([]User, error)
		GetUserByID(id string) (User, error)
		// GetUserByEmail does a case-insensitive match on User.Email.
		GetUserByEmail(email string) (User, error)
		QueryUsersByRole(role Role) ([]User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate validates a credential pair against the directory and returns a Session.
// The email is trimmed and matched case-insensitively; the password must match exactly.
// Unknown email and wrong password both return ErrInvalidCredentials: the caller must not
// be able to tell which of the two was wrong.
func (svc *Service) Authenticate(email, pwd string) (Session, error) {
	email = core.CleanString(email, true /* lower */)
	if email == "" || pwd == "" {
		return Session{}, ErrEmptyCredentials
	}

	usr, err := svc.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if usr.Password != pwd {
		return Session{}, ErrInvalidCredentials
	}
	return usr.Session(), nil
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

func (svc *Service) QueryByRole(role Role) ([]User, error) {
	return svc.repo.QueryUsersByRole(role)
}
