package problem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

// FinishUpload records content that just landed in blob storage and
// returns its handle. The row starts unreferenced; AttachFile later takes
// the first reference. Re-reporting a known hash returns the existing
// handle instead of creating a duplicate row.
func (s *Service) FinishUpload(ctx context.Context, sha256 string, size int64) (uuid.UUID, error) {
	if sha256 == "" {
		return uuid.Nil, domain.NewValidationError("sha256", "content hash is required")
	}
	if size < 0 {
		return uuid.Nil, domain.NewValidationError("size", "content size must not be negative")
	}

	handle, err := s.store.Register(ctx, sha256, size)
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "upload finished",
		slog.String("sha256", sha256),
		slog.Int64("size", size),
	)
	return handle, nil
}

// AttachFile binds uploaded content to a problem under (type, filename).
// The content reference is acquired first: if the hash was never uploaded,
// the call returns false and no ProblemFile row is touched. Replacing an
// occupied key releases the previous content reference inside the same
// transaction, so a rollback also rolls the count back.
func (s *Service) AttachFile(ctx context.Context, problemID int64, typ domain.ProblemFileType, filename, sha256 string) (bool, error) {
	if !typ.IsValid() {
		return false, domain.NewValidationError("type", "unknown file type")
	}
	if filename == "" {
		return false, domain.NewValidationError("filename", "filename is required")
	}

	attached := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		handle, ok, err := s.store.TryReference(txCtx, sha256)
		if err != nil {
			return fmt.Errorf("reference content: %w", err)
		}
		if !ok {
			return nil
		}

		existing, err := s.files.Get(txCtx, problemID, typ, filename)
		switch {
		case err == nil:
			// The row must point at the new content before the old reference
			// is released: at refcount zero the release deletes the file row,
			// and problem_file.uuid still references it until the rewrite.
			if err := s.files.UpdateUUID(txCtx, problemID, typ, filename, handle); err != nil {
				return fmt.Errorf("rewrite file row: %w", err)
			}
			if err := s.store.Dereference(txCtx, existing.UUID); err != nil {
				return fmt.Errorf("release previous content: %w", err)
			}
		case errors.Is(err, domain.ErrNotFound):
			if err := s.files.Insert(txCtx, &domain.ProblemFile{
				ProblemID: problemID,
				Type:      typ,
				Filename:  filename,
				UUID:      handle,
			}); err != nil {
				return fmt.Errorf("insert file row: %w", err)
			}
		default:
			return fmt.Errorf("look up file row: %w", err)
		}

		attached = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if attached {
		s.log.InfoContext(ctx, "file attached",
			slog.Int64("problem_id", problemID),
			slog.String("type", typ.String()),
			slog.String("filename", filename),
		)
	}

	return attached, nil
}

// DetachFiles removes the named files and releases their content
// references in one transaction. Missing filenames are skipped silently:
// detaching is idempotent.
func (s *Service) DetachFiles(ctx context.Context, problemID int64, typ domain.ProblemFileType, filenames []string) error {
	if len(filenames) == 0 {
		return nil
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, filename := range filenames {
			handle, err := s.files.Delete(txCtx, problemID, typ, filename)
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("delete file row %q: %w", filename, err)
			}
			if err := s.store.Dereference(txCtx, handle); err != nil {
				return fmt.Errorf("release content of %q: %w", filename, err)
			}
		}
		return nil
	})
}

// RenameFile moves a file to a new name under the same (problem, type)
// key. Metadata only: the content handle and its reference count stay
// untouched. Returns false when no file exists at the old name.
func (s *Service) RenameFile(ctx context.Context, problemID int64, typ domain.ProblemFileType, filename, newFilename string) (bool, error) {
	if newFilename == "" {
		return false, domain.NewValidationError("filename", "new filename is required")
	}
	if filename == newFilename {
		return true, nil
	}

	err := s.files.Rename(ctx, problemID, typ, filename, newFilename)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListFiles returns the problem's files of one type in filename order.
// With withSizes set it annotates each entry with the content size from a
// single batch lookup, joined by position.
func (s *Service) ListFiles(ctx context.Context, problemID int64, typ domain.ProblemFileType, withSizes bool) ([]domain.FileInfo, error) {
	rows, err := s.files.ListByType(ctx, problemID, typ)
	if err != nil {
		return nil, err
	}

	infos := make([]domain.FileInfo, len(rows))
	handles := make([]uuid.UUID, len(rows))
	for i, f := range rows {
		infos[i] = domain.FileInfo{Filename: f.Filename, UUID: f.UUID}
		handles[i] = f.UUID
	}

	if withSizes && len(rows) > 0 {
		sizes, err := s.store.SizesOf(ctx, handles)
		if err != nil {
			return nil, fmt.Errorf("file sizes: %w", err)
		}
		for i := range infos {
			infos[i].Size = sizes[i]
		}
	}

	return infos, nil
}
