package resource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/padelarena/booking-backend/internal/pkg/storage"
)

// Stored photos are normalized to fit these bounds.
const (
	photoMaxSize = 1600
	thumbMaxSize = 400
)

type CreateRequest struct {
	Name        string
	Description string
	HourlyRate  float64
}

type UpdateRequest struct {
	Name        *string
	Description *string
	HourlyRate  *float64
	Status      *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error)
	Delete(ctx context.Context, id string) error

	// UploadPhoto stores a normalized photo and thumbnail for the resource
	// and records their paths. A previous photo is removed afterwards.
	UploadPhoto(ctx context.Context, id string, content io.Reader) (*Resource, error)
	OpenPhoto(ctx context.Context, id string, thumbnail bool) (io.ReadCloser, error)
}

type service struct {
	repo  Repository
	store storage.Storage
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{repo: repo, store: store}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Resource, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.HourlyRate < 0 {
		return nil, ErrInvalidRate
	}

	res := &Resource{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		HourlyRate:  req.HourlyRate,
		Status:      StatusAvailable,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		res.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		res.Description = strings.TrimSpace(*req.Description)
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			return nil, ErrInvalidRate
		}
		res.HourlyRate = *req.HourlyRate
	}
	if req.Status != nil {
		st := Status(*req.Status)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
		res.Status = st
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Best effort: orphaned files are harmless.
	if res.PhotoPath != nil {
		_ = s.store.Remove(ctx, *res.PhotoPath)
	}
	if res.ThumbnailPath != nil {
		_ = s.store.Remove(ctx, *res.ThumbnailPath)
	}
	return nil
}

func (s *service) UploadPhoto(ctx context.Context, id string, content io.Reader) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The upload is read twice (photo + thumbnail), so buffer it.
	raw, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	photo, err := storage.NormalizeImage(bytes.NewReader(raw), photoMaxSize, photoMaxSize)
	if err != nil {
		return nil, err
	}
	thumb, err := storage.NormalizeImage(bytes.NewReader(raw), thumbMaxSize, thumbMaxSize)
	if err != nil {
		return nil, err
	}

	base := uuid.NewString()
	photoPath := fmt.Sprintf("resources/%s/%s.jpg", res.ID, base)
	thumbPath := fmt.Sprintf("resources/%s/%s_thumb.jpg", res.ID, base)

	if err := s.store.Save(ctx, photoPath, photo); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, thumbPath, thumb); err != nil {
		_ = s.store.Remove(ctx, photoPath)
		return nil, err
	}

	oldPhoto, oldThumb := res.PhotoPath, res.ThumbnailPath
	res.PhotoPath = &photoPath
	res.ThumbnailPath = &thumbPath

	if err := s.repo.Update(ctx, res); err != nil {
		_ = s.store.Remove(ctx, photoPath)
		_ = s.store.Remove(ctx, thumbPath)
		return nil, err
	}

	if oldPhoto != nil {
		_ = s.store.Remove(ctx, *oldPhoto)
	}
	if oldThumb != nil {
		_ = s.store.Remove(ctx, *oldThumb)
	}
	return res, nil
}

func (s *service) OpenPhoto(ctx context.Context, id string, thumbnail bool) (io.ReadCloser, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path := res.PhotoPath
	if thumbnail {
		path = res.ThumbnailPath
	}
	if path == nil {
		return nil, ErrNoPhoto
	}
	return s.store.Open(ctx, *path)
}
