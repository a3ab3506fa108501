package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fitlink/trainer-directory/internal/api/metrics"
	"github.com/fitlink/trainer-directory/internal/core/domain"
	"github.com/fitlink/trainer-directory/internal/core/ports"
)

// BlacklistHandler handles HTTP requests for the blacklist.
type BlacklistHandler struct {
	service ports.BlacklistService
	images  ports.ImageStore
	log     zerolog.Logger
}

func NewBlacklistHandler(service ports.BlacklistService, images ports.ImageStore, log zerolog.Logger) *BlacklistHandler {
	return &BlacklistHandler{service: service, images: images, log: log}
}

// Create handles POST /api/blacklist — a fresh blacklist submission,
// independent of any existing trainer.
//
// @Summary      Blacklist a trainer by submitted fields
// @Tags         blacklist
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        fullName        formData  string  true   "Full name"
// @Param        email           formData  string  true   "Email (unique among entries)"
// @Param        category        formData  string  true   "Category"
// @Param        profilePicture  formData  file    false  "Profile picture (image/*, max 5MB)"
// @Success      200  {object}  blacklistResponse
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /api/blacklist [post]
func (h *BlacklistHandler) Create(c echo.Context) error {
	var req trainerForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pictureURL, err := storeProfilePicture(c, h.images, h.log)
	if err != nil {
		return err
	}

	entry, err := h.service.BlacklistByFields(c.Request().Context(), ports.TrainerInput{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		Category:          req.Category,
		Experience:        req.Experience,
		Location:          req.Location,
		Bio:               req.Bio,
		ProfilePictureURL: pictureURL,
	})
	if err != nil {
		return err
	}

	metrics.BlacklistMigrationsTotal.WithLabelValues("by_fields").Inc()
	return c.JSON(http.StatusOK, blacklistResponse{Message: "Trainer blacklisted", Data: entry})
}

// List handles GET /api/blacklist.
//
// @Summary      List all blacklisted trainers
// @Tags         blacklist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  blacklistListResponse
// @Router       /api/blacklist [get]
func (h *BlacklistHandler) List(c echo.Context) error {
	entries, err := h.service.ListBlacklisted(c.Request().Context())
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*domain.BlacklistEntry{}
	}
	return c.JSON(http.StatusOK, blacklistListResponse{Success: true, Trainers: entries})
}

// MigrateByID handles PATCH /api/blacklist/:id — the canonical migration of
// an existing trainer into the blacklist.
//
// @Summary      Blacklist an existing trainer by id
// @Tags         blacklist
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Trainer id"
// @Success      200  {object}  blacklistResponse
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /api/blacklist/{id} [patch]
func (h *BlacklistHandler) MigrateByID(c echo.Context) error {
	entry, err := h.service.BlacklistByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.BlacklistMigrationsTotal.WithLabelValues("by_id").Inc()
	return c.JSON(http.StatusOK, blacklistResponse{Message: "Trainer blacklisted", Data: entry})
}

// MigrateLegacy handles PATCH /api/:id/blacklist, the route the old admin
// console calls. It performs the same migration as MigrateByID and only the
// response envelope differs.
//
// @Summary      Blacklist an existing trainer by id (legacy route)
// @Tags         blacklist
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Trainer id"
// @Success      200  {object}  legacyBlacklistResponse
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /api/{id}/blacklist [patch]
func (h *BlacklistHandler) MigrateLegacy(c echo.Context) error {
	entry, err := h.service.BlacklistByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.BlacklistMigrationsTotal.WithLabelValues("legacy").Inc()
	return c.JSON(http.StatusOK, legacyBlacklistResponse{Message: "Trainer blacklisted successfully", Trainer: entry})
}
