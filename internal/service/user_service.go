package service

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"cafe-backend/internal/domain"
)

type UserService struct {
	repo   UserRepository
	logger *log.Logger
}

func NewUserService(repo UserRepository, logger *log.Logger) *UserService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Create(req UserCreate) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: string(hash),
		IsAdmin:        req.IsAdmin,
		IsActive:       true,
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}
	s.logger.WithFields(log.Fields{"user_id": user.ID, "username": user.Username}).Info("user created")
	return user, nil
}

func (s *UserService) List(skip, limit int) ([]domain.User, error) {
	return s.repo.ListUsers(skip, limit)
}

func (s *UserService) Get(id int) (*domain.User, error) {
	return s.repo.GetUser(id)
}

func (s *UserService) Update(id int, req UserUpdate) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateUser(id, req.Fields())
}

func (s *UserService) UpdatePassword(id int, req PasswordUpdate) error {
	if err := req.Validate(); err != nil {
		return err
	}
	user, err := s.repo.GetUser(id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.CurrentPassword)) != nil {
		return domain.ErrInvalidCredential
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.repo.UpdateUser(id, map[string]interface{}{"hashed_password": string(hash)})
	return err
}

// Authenticate never reveals whether the username or the password was wrong.
func (s *UserService) Authenticate(username, password string) (*domain.User, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredential
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredential
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredential
	}
	return user, nil
}

var _ UserServiceInterface = (*UserService)(nil)
