package user

import (
	"context"
	"io"
)

type UserService interface {
	List(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id int64) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	GeneratePassword(ctx context.Context) (GeneratedPasswordResponse, error)
	UploadProfilePhoto(ctx context.Context, id int64, file io.Reader, filename string, contentType string) (UserResponse, error)
	RankOptions(ctx context.Context) []string
}
