package user

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
	"github.com/rnrran/HUBDAM-KP/internal/fixtures"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/password"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/storage"
	"golang.org/x/crypto/bcrypt"
)

var allowedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type UserServiceImpl struct {
	user.UserRepository
	storage storage.FileStorage
}

func NewUserService(userRepository user.UserRepository, fileStorage storage.FileStorage) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
		storage:        fileStorage,
	}
}

func (s *UserServiceImpl) toResponse(ctx context.Context, u user.User) user.UserResponse {
	resp := user.UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		RegistrationNumber: u.RegistrationNumber,
		Rank:               u.Rank,
		Role:               string(u.Role),
	}
	if u.ProfilePhoto != nil {
		if url, err := s.storage.GetURL(ctx, *u.ProfilePhoto); err == nil {
			resp.ProfilePhotoURL = &url
		}
	}
	return resp
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, s.toResponse(ctx, u))
	}
	return responses, nil
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (user.UserResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.toResponse(ctx, userData), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Name:               req.Name,
		Email:              req.Email,
		PasswordHash:       string(hash),
		RegistrationNumber: req.RegistrationNumber,
		Rank:               req.Rank,
		Role:               user.Role(req.Role),
	}

	created, err := s.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.toResponse(ctx, created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		req.Password = &hashed
	}

	updated, err := s.UserRepository.Update(ctx, req)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.toResponse(ctx, updated), nil
}

// GeneratePassword implements user.UserService. The plaintext is returned once
// so the admin can hand it to the account holder; only the hash is ever stored.
func (s *UserServiceImpl) GeneratePassword(ctx context.Context) (user.GeneratedPasswordResponse, error) {
	generated, err := password.Generate(password.GeneratedLength)
	if err != nil {
		return user.GeneratedPasswordResponse{}, err
	}
	return user.GeneratedPasswordResponse{Password: generated}, nil
}

// UploadProfilePhoto implements user.UserService.
func (s *UserServiceImpl) UploadProfilePhoto(ctx context.Context, id int64, file io.Reader, filename string, contentType string) (user.UserResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	ext, ok := allowedPhotoTypes[strings.ToLower(contentType)]
	if !ok {
		return user.UserResponse{}, user.ErrInvalidProfilePhoto
	}
	if e := strings.ToLower(filepath.Ext(filename)); e == ".jpeg" {
		ext = ".jpg"
	}

	path := fmt.Sprintf("profile-photos/%s%s", uuid.New().String(), ext)
	storedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to store profile photo: %w", err)
	}

	if err := s.UserRepository.UpdateProfilePhoto(ctx, id, storedPath); err != nil {
		return user.UserResponse{}, err
	}

	// Old photo is best-effort cleanup; a stale file must not fail the upload.
	if userData.ProfilePhoto != nil && *userData.ProfilePhoto != storedPath {
		_ = s.storage.Delete(ctx, *userData.ProfilePhoto)
	}

	userData.ProfilePhoto = &storedPath
	return s.toResponse(ctx, userData), nil
}

// RankOptions implements user.UserService.
func (s *UserServiceImpl) RankOptions(ctx context.Context) []string {
	options := make([]string, len(fixtures.DefaultRankOptions))
	copy(options, fixtures.DefaultRankOptions)
	return options
}
