package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"flowerorder/internal/pkg/errs"
)

const (
	// ProductImageFolder is the file storage folder for product images.
	ProductImageFolder = "orders/products"
	MaxImageSize       = 10 * 1024 * 1024
)

var allowedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif"}

// ProductImage is the metadata of a stored product photo.
type ProductImage struct {
	Path         string
	OriginalName string
	ContentType  string
	Size         int64
}

// ValidateImageUpload checks the declared content type and size of an upload.
func ValidateImageUpload(contentType string, size int64) error {
	var typeErr, sizeErr error
	if !slices.Contains(allowedImageTypes, strings.ToLower(contentType)) {
		typeErr = errs.NewValueIsInvalidErrorWithCause("image content type",
			fmt.Errorf("%q is not one of %s", contentType, strings.Join(allowedImageTypes, ", ")))
	}
	if size <= 0 || size > MaxImageSize {
		sizeErr = errs.NewValueIsOutOfRangeError("image size", size, 1, MaxImageSize)
	}
	return errors.Join(typeErr, sizeErr)
}

// Validate requires a stored path and a non-negative size.
func (i ProductImage) Validate() error {
	if strings.TrimSpace(i.Path) == "" {
		return errs.NewValueIsRequiredError("image path")
	}
	if i.Size < 0 {
		return errs.NewValueIsOutOfRangeError("image size", i.Size, 0, MaxImageSize)
	}
	return nil
}
