package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// PDFFileRepository handles database operations for PDFFile.
type PDFFileRepository struct {
	DB *pgxpool.Pool
}

// NewPDFFileRepository creates a new instance of PDFFileRepository.
func NewPDFFileRepository(db *pgxpool.Pool) *PDFFileRepository {
	return &PDFFileRepository{DB: db}
}

func (r *PDFFileRepository) selectQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "name", "original_name", "file_path", "file_url", "file_size",
		"category", "description", "uploaded_by", "is_active",
		"download_count", "tags", "uploaded_at",
	).From("pdf_files").
		PlaceholderFormat(squirrel.Dollar)
}

func scanPDFFile(row pgx.Row) (*models.PDFFile, error) {
	var f models.PDFFile
	err := row.Scan(
		&f.ID, &f.Name, &f.OriginalName, &f.FilePath, &f.FileURL, &f.FileSize,
		&f.Category, &f.Description, &f.UploadedBy, &f.IsActive,
		&f.DownloadCount, &f.Tags, &f.UploadedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPDFFileNotFound
		}
		logger.Error().Err(err).Msg("Error scanning pdf file")
		return nil, err
	}
	return &f, nil
}

// Create inserts a new library file record and returns its id.
func (r *PDFFileRepository) Create(ctx context.Context, f *models.PDFFile) (int64, error) {
	sql, args, err := squirrel.Insert("pdf_files").
		Columns(
			"name", "original_name", "file_path", "file_url", "file_size",
			"category", "description", "uploaded_by", "is_active",
			"download_count", "tags",
		).
		Values(
			f.Name, f.OriginalName, f.FilePath, f.FileURL, f.FileSize,
			f.Category, f.Description, f.UploadedBy, true,
			0, f.Tags,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create pdf file SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create pdf file query")
		return 0, err
	}
	return id, nil
}

func (r *PDFFileRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.PDFFile, error) {
	sqlStr, args, err := builder.OrderBy("uploaded_at DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list pdf files SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list pdf files query")
		return nil, err
	}
	defer rows.Close()

	files := make([]*models.PDFFile, 0)
	for rows.Next() {
		f, err := scanPDFFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating pdf file rows")
		return nil, err
	}
	return files, nil
}

// GetAllActive returns every non-deleted library file, newest upload first.
func (r *PDFFileRepository) GetAllActive(ctx context.Context) ([]*models.PDFFile, error) {
	return r.list(ctx, r.selectQuery().Where(squirrel.Eq{"is_active": true}))
}

// GetByCategory returns active library files in a category.
func (r *PDFFileRepository) GetByCategory(ctx context.Context, category string) ([]*models.PDFFile, error) {
	return r.list(ctx, r.selectQuery().Where(squirrel.Eq{
		"is_active": true,
		"category":  category,
	}))
}

// Search returns active files whose name, description or category matches
// the term, case-insensitively.
func (r *PDFFileRepository) Search(ctx context.Context, term string) ([]*models.PDFFile, error) {
	pattern := fmt.Sprintf("%%%s%%", term)
	return r.list(ctx, r.selectQuery().
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"category": pattern},
		}))
}

// GetByID returns a single library file.
func (r *PDFFileRepository) GetByID(ctx context.Context, id int64) (*models.PDFFile, error) {
	sql, args, err := r.selectQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get pdf file SQL")
		return nil, err
	}
	return scanPDFFile(r.DB.QueryRow(ctx, sql, args...))
}

// Update edits the descriptive fields of a library file.
func (r *PDFFileRepository) Update(ctx context.Context, f *models.PDFFile) error {
	sql, args, err := squirrel.Update("pdf_files").
		Set("name", f.Name).
		Set("description", f.Description).
		Set("category", f.Category).
		Set("tags", f.Tags).
		Where(squirrel.Eq{"id": f.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update pdf file SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update pdf file query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPDFFileNotFound
	}
	return nil
}

// SoftDelete hides a library file without removing the row or the stored
// object, so existing links keep resolving.
func (r *PDFFileRepository) SoftDelete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Update("pdf_files").
		Set("is_active", false).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building soft delete pdf file SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing soft delete pdf file query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPDFFileNotFound
	}
	return nil
}

// IncrementDownloadCount reads the current count and writes count+1. The
// read-then-write is not atomic; the counter is informational only.
func (r *PDFFileRepository) IncrementDownloadCount(ctx context.Context, id int64) error {
	file, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	sql, args, err := squirrel.Update("pdf_files").
		Set("download_count", file.DownloadCount+1).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building increment download count SQL")
		return err
	}

	if _, err := r.DB.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing increment download count query")
		return err
	}
	return nil
}
