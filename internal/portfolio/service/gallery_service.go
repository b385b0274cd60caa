package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rudirimachado/portfolio-backend/internal/logging"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/store"
)

// DefaultModule receives images uploaded without an explicit module name.
const DefaultModule = "general"

var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// UploadFile is one decoded multipart file handed to AddImages.
type UploadFile struct {
	Filename string
	Data     []byte
	Caption  string
}

// GalleryService owns the per-project image collections inside the store.
type GalleryService struct {
	store store.Store
}

// NewGalleryService creates a gallery service over the given store.
func NewGalleryService(st store.Store) *GalleryService {
	return &GalleryService{store: st}
}

// GetGallery returns the project's gallery, or a well-formed empty gallery
// when none exists yet.
func (s *GalleryService) GetGallery(projectID string) domain.Gallery {
	return galleryFor(s.store.Load(), projectID)
}

// AddImages decodes the uploaded files into self-contained image records and
// appends them to the flat list and the named module's list. If setMain is
// true, or the gallery has no main image yet, the first image of the batch
// becomes the new main image. The mutation is persisted before returning.
func (s *GalleryService) AddImages(ctx context.Context, projectID, moduleName string, files []UploadFile, setMain bool) ([]domain.Image, error) {
	if moduleName == "" {
		moduleName = DefaultModule
	}

	var added []domain.Image
	err := s.store.Update(func(doc *domain.Document) error {
		gal := galleryFor(doc, projectID)

		for _, f := range files {
			if f.Filename == "" || len(f.Data) == 0 {
				continue
			}
			img := buildImage(f, moduleName)
			gal.Images = append(gal.Images, img)
			gal.Modules[moduleName] = append(gal.Modules[moduleName], img)

			if (setMain || gal.MainImage == "") && len(added) == 0 {
				gal.MainImage = img.Data
			}
			added = append(added, img)
		}

		doc.Galleries[projectID] = gal
		return nil
	})
	if err != nil {
		logging.FromContext(ctx).Error("gallery_add_images", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreSave, err)
	}
	return added, nil
}

// DeleteImage removes the image from the flat list and every module list.
// If the removed image's payload was the main image, the first remaining
// image takes over, or the main image is cleared.
func (s *GalleryService) DeleteImage(ctx context.Context, projectID, imageID string) error {
	err := s.store.Update(func(doc *domain.Document) error {
		gal, ok := doc.Galleries[projectID]
		if !ok {
			return domain.ErrImageNotFound
		}

		kept := gal.Images[:0]
		found := false
		for _, img := range gal.Images {
			if img.ID == imageID {
				found = true
				continue
			}
			kept = append(kept, img)
		}
		if !found {
			return domain.ErrImageNotFound
		}
		gal.Images = kept

		for name, imgs := range gal.Modules {
			filtered := imgs[:0]
			for _, img := range imgs {
				if img.ID != imageID {
					filtered = append(filtered, img)
				}
			}
			gal.Modules[name] = filtered
		}

		if gal.MainImage != "" && !payloadExists(gal.Images, gal.MainImage) {
			if len(gal.Images) > 0 {
				gal.MainImage = gal.Images[0].Data
			} else {
				gal.MainImage = ""
			}
		}

		doc.Galleries[projectID] = gal
		return nil
	})
	if err != nil {
		if err == domain.ErrImageNotFound {
			return err
		}
		logging.FromContext(ctx).Error("gallery_delete_image", err)
		return fmt.Errorf("%w: %v", domain.ErrStoreSave, err)
	}
	return nil
}

// SetMainImage promotes the identified image's payload to main image.
// Unknown ids leave the gallery unmodified and return ErrImageNotFound.
func (s *GalleryService) SetMainImage(ctx context.Context, projectID, imageID string) error {
	err := s.store.Update(func(doc *domain.Document) error {
		gal, ok := doc.Galleries[projectID]
		if !ok {
			return domain.ErrImageNotFound
		}
		for _, img := range gal.Images {
			if img.ID == imageID {
				gal.MainImage = img.Data
				doc.Galleries[projectID] = gal
				return nil
			}
		}
		return domain.ErrImageNotFound
	})
	if err != nil {
		if err == domain.ErrImageNotFound {
			return err
		}
		logging.FromContext(ctx).Error("gallery_set_main", err)
		return fmt.Errorf("%w: %v", domain.ErrStoreSave, err)
	}
	return nil
}

// DeleteProjectGallery drops the whole gallery entry. Invoked when the
// owning custom project is deleted; a missing gallery is not an error.
func (s *GalleryService) DeleteProjectGallery(ctx context.Context, projectID string) error {
	err := s.store.Update(func(doc *domain.Document) error {
		delete(doc.Galleries, projectID)
		return nil
	})
	if err != nil {
		logging.FromContext(ctx).Error("gallery_delete_project", err)
		return fmt.Errorf("%w: %v", domain.ErrStoreSave, err)
	}
	return nil
}

// buildImage re-encodes the payload as an inline data: URI tagged with the
// media type detected from the filename extension.
func buildImage(f UploadFile, moduleName string) domain.Image {
	ext := strings.ToLower(strings.TrimPrefix(fileExt(f.Filename), "."))
	mime, ok := mimeTypes[ext]
	if !ok {
		mime = "image/png"
	}
	encoded := base64.StdEncoding.EncodeToString(f.Data)

	return domain.Image{
		ID:         newImageID(),
		Filename:   f.Filename,
		Data:       "data:" + mime + ";base64," + encoded,
		Size:       len(f.Data),
		Type:       ext,
		MimeType:   mime,
		Module:     moduleName,
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
		Caption:    f.Caption,
	}
}

func fileExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

// newImageID returns a short hex id, unique per image.
func newImageID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func payloadExists(images []domain.Image, payload string) bool {
	for _, img := range images {
		if img.Data == payload {
			return true
		}
	}
	return false
}
