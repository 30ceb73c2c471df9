package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/repositories"
	"github.com/mathspoint/mathspoint/internal/pkg/filestorage"
	"github.com/mathspoint/mathspoint/internal/pkg/helpers"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// PDFService defines the interface for library file operations
type PDFService interface {
	Upload(ctx context.Context, req *dto.UploadPDFRequest, file *multipart.FileHeader, uploadedBy string) (*models.PDFFile, error)
	GetAll(ctx context.Context) ([]*models.PDFFile, error)
	GetByCategory(ctx context.Context, category string) ([]*models.PDFFile, error)
	Search(ctx context.Context, term string) ([]*models.PDFFile, error)
	GetByID(ctx context.Context, id int64) (*models.PDFFile, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePDFRequest) (*models.PDFFile, error)
	Delete(ctx context.Context, id int64) error
	RecordDownload(ctx context.Context, id int64) (*models.PDFFile, error)
}

// pdfServiceImpl implements PDFService
type pdfServiceImpl struct {
	pdfRepo *repositories.PDFFileRepository
	storage filestorage.FileStorage
}

// NewPDFService creates a new PDFService
func NewPDFService(pdfRepo *repositories.PDFFileRepository, storage filestorage.FileStorage) PDFService {
	return &pdfServiceImpl{
		pdfRepo: pdfRepo,
		storage: storage,
	}
}

// Upload validates and stores a library PDF and records its metadata. The
// category name, slugified, becomes the file's initial tag.
func (s *pdfServiceImpl) Upload(ctx context.Context, req *dto.UploadPDFRequest, file *multipart.FileHeader, uploadedBy string) (*models.PDFFile, error) {
	if err := filestorage.ValidatePDFFile(file); err != nil {
		return nil, err
	}

	result, err := s.storage.SaveAdminPDF(file)
	if err != nil {
		return nil, fmt.Errorf("error storing library file: %w", err)
	}

	name := req.CustomName
	if name == "" {
		name = file.Filename
	}

	pdfFile := &models.PDFFile{
		Name:         name,
		OriginalName: file.Filename,
		FilePath:     result.ObjectPath,
		FileURL:      result.URL,
		FileSize:     result.Size,
		Category:     req.Category,
		UploadedBy:   uploadedBy,
		Tags:         []string{helpers.CategorySlug(req.Category)},
	}
	if req.Description != "" {
		description := req.Description
		pdfFile.Description = &description
	}

	id, err := s.pdfRepo.Create(ctx, pdfFile)
	if err != nil {
		if delErr := s.storage.DeleteFile(result.ObjectPath); delErr != nil {
			logger.Warn().Err(delErr).Str("path", result.ObjectPath).Msg("Failed to remove orphaned library file")
		}
		return nil, fmt.Errorf("error recording library file: %w", err)
	}

	logger.Info().
		Int64("id", id).
		Str("name", name).
		Str("size", filestorage.FormatFileSize(result.Size)).
		Msg("Library file uploaded")

	return s.pdfRepo.GetByID(ctx, id)
}

// GetAll retrieves every active library file, newest upload first
func (s *pdfServiceImpl) GetAll(ctx context.Context) ([]*models.PDFFile, error) {
	return s.pdfRepo.GetAllActive(ctx)
}

// GetByCategory retrieves active library files in a category
func (s *pdfServiceImpl) GetByCategory(ctx context.Context, category string) ([]*models.PDFFile, error) {
	return s.pdfRepo.GetByCategory(ctx, category)
}

// Search retrieves active library files matching a term
func (s *pdfServiceImpl) Search(ctx context.Context, term string) ([]*models.PDFFile, error) {
	return s.pdfRepo.Search(ctx, term)
}

// GetByID retrieves a library file by ID
func (s *pdfServiceImpl) GetByID(ctx context.Context, id int64) (*models.PDFFile, error) {
	return s.pdfRepo.GetByID(ctx, id)
}

// Update applies the non-nil fields of req to a library file's metadata
func (s *pdfServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdatePDFRequest) (*models.PDFFile, error) {
	pdfFile, err := s.pdfRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pdfFile.Name = *req.Name
	}
	if req.Description != nil {
		pdfFile.Description = req.Description
	}
	if req.Category != nil {
		pdfFile.Category = *req.Category
		pdfFile.Tags = []string{helpers.CategorySlug(*req.Category)}
	}

	if err := s.pdfRepo.Update(ctx, pdfFile); err != nil {
		return nil, fmt.Errorf("error updating library file: %w", err)
	}
	return s.pdfRepo.GetByID(ctx, id)
}

// Delete soft-deletes a library file; the stored object stays in place so
// already-issued links keep resolving
func (s *pdfServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.pdfRepo.SoftDelete(ctx, id)
}

// RecordDownload returns a library file and bumps its download counter. A
// failed counter update is logged and never blocks the download.
func (s *pdfServiceImpl) RecordDownload(ctx context.Context, id int64) (*models.PDFFile, error) {
	pdfFile, err := s.pdfRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.pdfRepo.IncrementDownloadCount(ctx, id); err != nil {
		logger.Warn().Err(err).Int64("fileId", id).Msg("Failed to bump download count")
	}
	return pdfFile, nil
}
