package primary

import "context"

// PhotoService defines the primary port for photo evidence operations.
type PhotoService interface {
	// AttachPhoto copies an image into managed storage and links it to an answer.
	AttachPhoto(ctx context.Context, req AttachPhotoRequest) (*AttachPhotoResponse, error)

	// GetPhoto retrieves a photo by ID.
	GetPhoto(ctx context.Context, photoID string) (*Photo, error)

	// ListPhotos lists the photos attached to an answer.
	ListPhotos(ctx context.Context, answerID string) ([]*Photo, error)

	// DetachPhoto removes a photo row and its stored file.
	DetachPhoto(ctx context.Context, photoID string) error
}

// AttachPhotoRequest contains parameters for attaching a photo.
type AttachPhotoRequest struct {
	AnswerID    string
	SourcePath  string
	Description string
}

// AttachPhotoResponse contains the result of attaching a photo.
type AttachPhotoResponse struct {
	PhotoID string
	Photo   *Photo
}

// Photo represents photo evidence at the port boundary.
type Photo struct {
	ID          string
	AnswerID    string
	FilePath    string
	Description string
	Missing     bool
	CreatedAt   string
}
