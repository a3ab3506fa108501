package handler

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fitlink/trainer-directory/internal/api/metrics"
	"github.com/fitlink/trainer-directory/internal/core/ports"
	"github.com/fitlink/trainer-directory/internal/infrastructure/storage"
)

// storeProfilePicture reads the optional profilePicture part and stores it.
//
// Invalid files (wrong type, oversize) are rejected and returned as an error
// before anything is written. Storage failures on a valid file are swallowed:
// the caller proceeds without a picture, the failure is logged and counted.
func storeProfilePicture(c echo.Context, store ports.ImageStore, log zerolog.Logger) (string, error) {
	file, err := c.FormFile("profilePicture")
	if err != nil {
		// Absent part, or not a multipart request at all.
		return "", nil
	}

	url, err := store.Save(c.Request().Context(), file)
	if err != nil {
		if errors.Is(err, storage.ErrNotImage) || errors.Is(err, storage.ErrTooLarge) {
			return "", err
		}
		metrics.UploadsFailedTotal.Inc()
		log.Warn().Err(err).Str("filename", file.Filename).Msg("profile picture upload failed, saving record without picture")
		return "", nil
	}
	return url, nil
}
