package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fitlink/trainer-directory/internal/api/metrics"
	"github.com/fitlink/trainer-directory/internal/core/ports"
)

// AuthHandler handles account registration and the admin login boundary.
type AuthHandler struct {
	service ports.AuthService
	images  ports.ImageStore
	log     zerolog.Logger
}

func NewAuthHandler(service ports.AuthService, images ports.ImageStore, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: service, images: images, log: log}
}

// dateFormats accepted for the dateOfBirth field; the original client sent
// whatever the browser produced.
var dateFormats = []string{time.RFC3339, "2006-01-02"}

func parseDateOfBirth(raw string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Register handles POST /api/userRegistration.
//
// @Summary      Register a user account
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName        formData  string  true   "Full name"
// @Param        username        formData  string  true   "Username (unique)"
// @Param        email           formData  string  true   "Email (unique)"
// @Param        password        formData  string  true   "Password"
// @Param        phone           formData  string  false  "Phone"
// @Param        Gender          formData  string  false  "male, female or other"
// @Param        dateOfBirth     formData  string  false  "Date of birth (RFC3339 or YYYY-MM-DD)"
// @Param        address         formData  string  false  "Address"
// @Param        role            formData  string  false  "admin or trainer (default trainer)"
// @Param        profilePicture  formData  file    false  "Profile picture (image/*, max 5MB)"
// @Success      201  {object}  userResponse
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /api/userRegistration [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req userForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var dob time.Time
	if req.DateOfBirth != "" {
		parsed, ok := parseDateOfBirth(req.DateOfBirth)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "dateOfBirth must be RFC3339 or YYYY-MM-DD")
		}
		dob = parsed
	}

	pictureURL, err := storeProfilePicture(c, h.images, h.log)
	if err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		FullName:          req.FullName,
		Username:          req.Username,
		Email:             req.Email,
		Password:          req.Password,
		Phone:             req.Phone,
		Gender:            req.Gender,
		DateOfBirth:       dob,
		Address:           req.Address,
		Role:              req.Role,
		ProfilePictureURL: pictureURL,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, userResponse{Message: "User created successfully", User: user})
}

// Login handles POST /api/auth/login and returns the bearer token admin
// operations require.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  loginResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}
