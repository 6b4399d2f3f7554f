package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/caexinspect/internal/ports/primary"
)

// PhotoAdapter is a thin adapter that translates CLI operations to
// PhotoService calls.
type PhotoAdapter struct {
	service primary.PhotoService
	out     io.Writer
}

// NewPhotoAdapter creates a new PhotoAdapter with the given service.
func NewPhotoAdapter(service primary.PhotoService, out io.Writer) *PhotoAdapter {
	return &PhotoAdapter{
		service: service,
		out:     out,
	}
}

// Attach imports an image file and links it to an answer.
func (a *PhotoAdapter) Attach(ctx context.Context, answerID, sourcePath, description string) error {
	resp, err := a.service.AttachPhoto(ctx, primary.AttachPhotoRequest{
		AnswerID:    answerID,
		SourcePath:  sourcePath,
		Description: description,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Attached %s to %s\n", resp.PhotoID, answerID)
	fmt.Fprintf(a.out, "  Stored at: %s\n", resp.Photo.FilePath)
	return nil
}

// List lists the photos attached to an answer.
func (a *PhotoAdapter) List(ctx context.Context, answerID string) error {
	photos, err := a.service.ListPhotos(ctx, answerID)
	if err != nil {
		return err
	}

	if len(photos) == 0 {
		fmt.Fprintln(a.out, "No photos attached")
		return nil
	}

	fmt.Fprintln(a.out)
	for _, p := range photos {
		marker := ""
		if p.Missing {
			marker = " (file missing)"
		}
		fmt.Fprintf(a.out, "%-10s %s%s\n", p.ID, p.FilePath, marker)
		if p.Description != "" {
			fmt.Fprintf(a.out, "           %s\n", p.Description)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// Detach removes a photo and its stored file.
func (a *PhotoAdapter) Detach(ctx context.Context, photoID string) error {
	if err := a.service.DetachPhoto(ctx, photoID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Detached photo %s\n", photoID)
	return nil
}
