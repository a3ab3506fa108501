package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fitlink/trainer-directory/internal/api/metrics"
	"github.com/fitlink/trainer-directory/internal/core/ports"
)

// TrainerHandler handles HTTP requests for the trainer directory.
type TrainerHandler struct {
	service ports.TrainerService
	images  ports.ImageStore
	log     zerolog.Logger
}

func NewTrainerHandler(service ports.TrainerService, images ports.ImageStore, log zerolog.Logger) *TrainerHandler {
	return &TrainerHandler{service: service, images: images, log: log}
}

// Create handles POST /api/trainers.
//
// @Summary      Register a trainer profile
// @Tags         trainers
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName        formData  string  true   "Full name"
// @Param        email           formData  string  true   "Email (unique)"
// @Param        category        formData  string  true   "Category, e.g. Yoga Instructor"
// @Param        phone           formData  string  false  "Phone"
// @Param        experience      formData  string  false  "Experience"
// @Param        location        formData  string  false  "Location"
// @Param        bio             formData  string  false  "Bio"
// @Param        profilePicture  formData  file    false  "Profile picture (image/*, max 5MB)"
// @Success      201  {object}  trainerResponse
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /api/trainers [post]
func (h *TrainerHandler) Create(c echo.Context) error {
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

	trainer, err := h.service.Create(c.Request().Context(), ports.TrainerInput{
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

	metrics.TrainersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, trainerResponse{Message: "Registration successful", Trainer: trainer})
}

// List handles GET /api/trainers and GET /api/trainersData.
//
// @Summary      List trainers (paginated)
// @Tags         trainers
// @Produce      json
// @Param        page   query  int  false  "Page (default 1)"
// @Param        limit  query  int  false  "Page size (default 10, max 100)"
// @Success      200  {object}  trainerPageResponse
// @Router       /api/trainers [get]
func (h *TrainerHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trainerPageResponse{
		Total:    result.Total,
		Page:     result.Page,
		Pages:    result.Pages,
		Trainers: result.Items,
	})
}

// UpdateStatus handles PATCH /api/trainers/:id.
//
// @Summary      Apply a review decision to a trainer
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "Trainer id"
// @Param        body  body  updateStatusRequest  true  "New status"
// @Success      200  {object}  trainerResponse
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/trainers/{id} [patch]
func (h *TrainerHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	trainer, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, trainerResponse{Message: "Trainer status updated", Trainer: trainer})
}

// Delete handles DELETE /api/trainers/:id.
//
// @Summary      Remove a trainer from the directory
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Trainer id"
// @Success      200  {object}  trainerResponse
// @Failure      404  {object}  map[string]any
// @Router       /api/trainers/{id} [delete]
func (h *TrainerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trainerResponse{Message: "Trainer deleted"})
}
