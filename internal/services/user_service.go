package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skilllink_backend/internal/repositories"
	"skilllink_backend/internal/services/dto"
	"skilllink_backend/internal/storage"
	"skilllink_backend/pkg/apperrors"
)

type UserService interface {
	GetMe(db *gorm.DB, userID string) (*dto.UserDTO, error)
	UpdateMe(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserDTO, error)
	UploadPhoto(ctx context.Context, db *gorm.DB, userID, filename string, reader io.Reader, contentType string) (*dto.UserDTO, error)

	// Admin operations
	ListUsers(db *gorm.DB, query *dto.UserListQuery, limit, offset int) (*dto.UserListResponse, error)
	GetUser(db *gorm.DB, id string) (*dto.UserDTO, error)
	SetUserState(db *gorm.DB, id string, req *dto.UpdateUserStateRequest) (*dto.UserDTO, error)
}

type userService struct {
	userRepo repositories.UserRepository
	store    storage.Storage
}

func NewUserService(userRepo repositories.UserRepository, store storage.Storage) UserService {
	return &userService{userRepo: userRepo, store: store}
}

func (s *userService) GetMe(db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUserByID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	out := BuildUserDTO(user)
	return &out, nil
}

func (s *userService) UpdateMe(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUserByID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.BirthDate != nil {
		user.BirthDate = req.BirthDate
	}

	if err := s.userRepo.UpdateUser(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := BuildUserDTO(user)
	return &out, nil
}

func (s *userService) UploadPhoto(ctx context.Context, db *gorm.DB, userID, filename string, reader io.Reader, contentType string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUserByID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	path := fmt.Sprintf("usuarios/%s/%s%s", userID, uuid.NewString(), filepath.Ext(filename))
	if err := s.store.Save(ctx, path, reader, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.PhotoURL = url
	if err := s.userRepo.UpdateUser(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := BuildUserDTO(user)
	return &out, nil
}

func (s *userService) ListUsers(db *gorm.DB, query *dto.UserListQuery, limit, offset int) (*dto.UserListResponse, error) {
	users, total, err := s.userRepo.FindUsers(db, repositories.UserFilter{
		Role:   query.Role,
		State:  query.State,
		Search: query.Search,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, BuildUserDTO(&users[i]))
	}

	return &dto.UserListResponse{
		Users: out,
		Meta:  dto.ListMeta{Total: total, Limit: limit, Offset: offset},
	}, nil
}

func (s *userService) GetUser(db *gorm.DB, id string) (*dto.UserDTO, error) {
	return s.GetMe(db, id)
}

func (s *userService) SetUserState(db *gorm.DB, id string, req *dto.UpdateUserStateRequest) (*dto.UserDTO, error) {
	if err := s.userRepo.UpdateUserState(db, id, req.State); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindUserByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	out := BuildUserDTO(user)
	return &out, nil
}
