package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/foodbridge/food-donation-api/internal/constants"
	"github.com/foodbridge/food-donation-api/internal/models"
	"github.com/foodbridge/food-donation-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken         = errors.New("username already exists")
	ErrUsernameRequired      = errors.New("username is required")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrPasswordTooShort      = errors.New("password too short")
	ErrInvalidRole           = errors.New("role must be Donor or NGO")
	ErrProfileNameRequired   = errors.New("profile name is required")
	ErrUserNotFound          = errors.New("user not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrFailedToHashPassword  = errors.New("failed to hash password")
	ErrFailedToCreateUser    = errors.New("failed to create user")
	ErrFailedToCreateProfile = errors.New("failed to create profile")
)

// AuthService handles identity and profile registration.
type AuthService struct {
	userRepo  repository.UserRepository
	donorRepo repository.DonorRepository
	ngoRepo   repository.NGORepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, donorRepo repository.DonorRepository, ngoRepo repository.NGORepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		donorRepo: donorRepo,
		ngoRepo:   ngoRepo,
	}
}

// SignupInput represents the required information to create a new user and
// their donor or NGO profile.
type SignupInput struct {
	Username string
	Password string
	Role     models.UserRole
	Name     string
	Email    string
	Phone    string
	Street   string
	City     string
}

// Signup creates a new user along with their donor or NGO profile.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if input.Role != models.RoleDonor && input.Role != models.RoleNGO {
		return nil, ErrInvalidRole
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrProfileNameRequired
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
	}

	switch input.Role {
	case models.RoleDonor:
		donor := &models.Donor{
			Name:   input.Name,
			Email:  input.Email,
			Phone:  input.Phone,
			Street: input.Street,
			City:   input.City,
		}
		err = s.userRepo.CreateWithDonorProfile(user, donor)
	case models.RoleNGO:
		ngo := &models.NGO{
			Name:   input.Name,
			Email:  input.Email,
			Phone:  input.Phone,
			Street: input.Street,
			City:   input.City,
		}
		err = s.userRepo.CreateWithNGOProfile(user, ngo)
	}

	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCreateUser):
			return nil, ErrFailedToCreateUser
		case errors.Is(err, repository.ErrCreateProfile):
			return nil, ErrFailedToCreateProfile
		default:
			return nil, fmt.Errorf("failed to complete signup: %w", err)
		}
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user. A missing
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// GetDonorProfile retrieves the donor profile owned by a user.
func (s *AuthService) GetDonorProfile(userID uint64) (*models.Donor, error) {
	donor, err := s.donorRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find donor profile: %w", err)
	}
	return donor, nil
}

// GetNGOProfile retrieves the NGO profile owned by a user.
func (s *AuthService) GetNGOProfile(userID uint64) (*models.NGO, error) {
	ngo, err := s.ngoRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find NGO profile: %w", err)
	}
	return ngo, nil
}

// ListNGOs returns every registered NGO ordered by name.
func (s *AuthService) ListNGOs() ([]models.NGO, error) {
	ngos, err := s.ngoRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list NGOs: %w", err)
	}
	return ngos, nil
}
