package api

import (
	"errors"
	"net/http"

	reqdto "bundlestay/internal/handler/dto/request"
	resdto "bundlestay/internal/handler/dto/response"
	"bundlestay/internal/handler/httperr"
	"bundlestay/internal/handler/middleware"
	"bundlestay/internal/pkg/errs"
	"bundlestay/internal/usecase/commands"
	"bundlestay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BundleHandler struct {
	bundleCommands commands.BundleCommands
	bundleQueries  queries.BundleQueries
}

func NewBundleHandler(bundleCommands commands.BundleCommands, bundleQueries queries.BundleQueries) *BundleHandler {
	return &BundleHandler{
		bundleCommands: bundleCommands,
		bundleQueries:  bundleQueries,
	}
}

// @Summary Purchase bundle
// @Description Purchase a discounted bundle of hotel packages
// @Tags bundles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBundleRequest true "Bundle selection"
// @Success 201 {object} resdto.BundleCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bundles [post]
func (h *BundleHandler) CreateBundle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserID, "Internal server error", nil)
		return
	}

	var req reqdto.CreateBundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bundleCommands.CreateBundle(c.Request.Context(), userID, req.HotelNames)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmptyBundleSelection):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Bundle needs at least one known hotel package", nil)
		case errors.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBundleResult(result))
}

// @Summary Get bundle
// @Description Get a bundle purchase with per-item status and current pricing
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Success 200 {object} resdto.BundleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bundles/{id} [get]
func (h *BundleHandler) GetBundle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bundle ID format", nil)
		return
	}

	view, err := h.bundleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBundleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Bundle not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBundleView(view))
}

// @Summary List customer bundles
// @Description List the authenticated customer's bundle purchases, oldest first
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BundleResponse
// @Failure 401 {object} map[string]string
// @Router /bundles [get]
func (h *BundleHandler) ListBundles(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserID, "Internal server error", nil)
		return
	}

	views, err := h.bundleQueries.ListByCustomer(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBundleViews(views))
}

// @Summary Mark bundle item utilised
// @Description Mark every item in the bundle for the given package as utilised
// @Tags bundles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle ID"
// @Param request body reqdto.MarkUtilisedRequest true "Package to mark"
// @Success 200 {object} resdto.MarkUtilisedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bundles/{id}/utilise [post]
func (h *BundleHandler) MarkUtilised(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bundle ID format", nil)
		return
	}

	var req reqdto.MarkUtilisedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bundleCommands.MarkUtilised(c.Request.Context(), id, req.PackageID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBundleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Bundle not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMarkUtilisedResult(result))
}
