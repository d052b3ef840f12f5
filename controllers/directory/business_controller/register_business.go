package business_controller

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	listing_cache "github.com/Gothsec/centro-digital/cache"
	"github.com/Gothsec/centro-digital/config"
	"github.com/Gothsec/centro-digital/models"
	"github.com/Gothsec/centro-digital/utils"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const (
	maxImageSize     = 2 << 20 // 2MB
	maxProductPhotos = 3
)

// RegisterBusiness godoc
// @Summary Register a new business
// @Description Owner registration: validates the form, generates the slug, geocodes the address (best-effort) and uploads the images
// @Tags Directory - Businesses
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/businesses [post]
func RegisterBusiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	// Step 1: Parse form fields
	var req models.RegisterBusinessRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Validate the schedule pair
	if !utils.ValidHoursPair(req.OpensAt, req.ClosesAt) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Opening time must be before closing time"))
		return
	}

	// Step 3: Validate the main image
	imageHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Main business image is required"))
		return
	}
	if !isValidImage(imageHeader.Header.Get("Content-Type"), imageHeader.Size) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Only .webp images up to 2MB are allowed"))
		return
	}

	form, _ := c.MultipartForm()
	productPhotos := form.File["product_photos"]
	if len(productPhotos) > maxProductPhotos {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At most 3 product photos are allowed"))
		return
	}
	for _, photo := range productPhotos {
		if !isValidImage(photo.Header.Get("Content-Type"), photo.Size) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Only .webp images up to 2MB are allowed"))
			return
		}
	}

	// Step 4: Generate the slug and check availability
	businessSlug := slug.Make(req.Name)
	var existing models.Business
	if err := config.Gorm.WithContext(ctx).
		Where("slug = ?", businessSlug).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A business with this name already exists"))
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	// Step 5: Geocode the address. Best-effort: a geocoding failure must not
	// block the registration, the business is simply stored without
	// coordinates.
	var location *models.Location
	if loc, err := geocodingService.Geocode(ctx, req.City, req.Address); err != nil {
		log.Printf("[directory.register] geocoding skipped for %q: %v", businessSlug, err)
	} else {
		location = loc
	}

	// Step 6: Upload images
	folder := "businesses/" + businessSlug

	imageFile, err := imageHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read image"))
		return
	}
	defer imageFile.Close()

	imageURL, err := cloudinaryService.UploadImage(ctx, imageFile, "main", folder)
	if err != nil {
		log.Printf("[directory.register] image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	photoURLs, err := cloudinaryService.UploadBusinessPhotos(ctx, productPhotos, folder)
	if err != nil {
		log.Printf("[directory.register] photo upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload photos"))
		return
	}

	// Step 7: Create the business (active by default)
	business := models.Business{
		Name:        req.Name,
		Slug:        businessSlug,
		Description: req.Description,
		Category:    req.Category,
		Department:  req.Department,
		City:        req.City,
		Address:     req.Address,
		OpensAt:     req.OpensAt,
		ClosesAt:    req.ClosesAt,
		Active:      true,
		Contact: models.Contact{
			WhatsApp:  req.WhatsApp,
			Facebook:  req.Facebook,
			Instagram: req.Instagram,
		},
		Location: location,
		ImageURL: imageURL,
		Photos:   models.PhotoList(photoURLs),
	}

	if err := config.Gorm.WithContext(ctx).Create(&business).Error; err != nil {
		log.Printf("[directory.register] failed to create business: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register business"))
		return
	}

	// Step 8: Drop the cached listing so the next read refetches
	listing_cache.Invalidate()

	business.Hours = utils.FormatHours(business.OpensAt, business.ClosesAt)
	log.Printf("[directory.register] created %s (%s)", business.Name, business.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Business registered successfully", business))
}

func isValidImage(contentType string, size int64) bool {
	return strings.Contains(contentType, "image/webp") && size <= maxImageSize
}
