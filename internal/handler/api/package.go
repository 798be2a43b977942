package api

import (
	"errors"
	"net/http"

	reqdto "bundlestay/internal/handler/dto/request"
	resdto "bundlestay/internal/handler/dto/response"
	"bundlestay/internal/handler/httperr"
	"bundlestay/internal/pkg/errs"
	"bundlestay/internal/usecase/commands"
	"bundlestay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewPackageHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *PackageHandler {
	return &PackageHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary Create package
// @Description Register a hotel package in the catalog
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePackageRequest true "Package definition"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req reqdto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	snapshot, err := h.catalogCommands.CreatePackage(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPackageSpec):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid package definition", nil)
		case errors.Is(err, errs.ErrPackageAlreadyExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "A package with this hotel name already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         snapshot.ID,
		"hotel_name": snapshot.HotelName,
	})
}

// @Summary List packages
// @Description List every package in the catalog
// @Tags packages
// @Produce json
// @Success 200 {array} resdto.PackageResponse
// @Router /packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	views, err := h.catalogQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response, err := resdto.FromPackageViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get package
// @Description Get a package by hotel name
// @Tags packages
// @Produce json
// @Param hotelName path string true "Hotel name"
// @Success 200 {object} resdto.PackageResponse
// @Failure 404 {object} map[string]string
// @Router /packages/{hotelName} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	hotelName := c.Param("hotelName")

	view, err := h.catalogQueries.GetByName(c.Request.Context(), hotelName)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPackageNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromPackageView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}
