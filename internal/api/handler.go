package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/merchware/shipcast/internal/domain/dto"
	"github.com/merchware/shipcast/internal/domain/models"
	"github.com/merchware/shipcast/internal/middleware"
	"github.com/merchware/shipcast/internal/service"
	"github.com/merchware/shipcast/internal/storage"
)

// Handler maps HTTP requests onto the estimate and config services.
//
// Responsibilities:
//   - Bind and sanity-check request bodies and parameters.
//   - Translate service results and errors into JSON responses.
//   - Keep every error body a dto.ErrorResponse.
type Handler struct {
	estimates service.EstimateService
	configs   service.ConfigService
}

// NewHandler constructs a Handler ready to be registered with the router.
func NewHandler(estimates service.EstimateService, configs service.ConfigService) *Handler {
	return &Handler{estimates: estimates, configs: configs}
}

// Estimate handles POST /api/v1/estimate requests from the storefront widget.
//
// Estimate godoc
// @Summary      Render a delivery estimate
// @Description  Computes the shipping and delivery dates for a product and renders the matching rule's message
// @Tags         estimate
// @Accept       json
// @Produce      json
// @Param        request  body      dto.EstimateRequest  true  "Product facts and evaluation instant"
// @Success      200      {object}  dto.EstimateResponse   "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/estimate [post]
func (h *Handler) Estimate(c *gin.Context) {
	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.estimates.Estimate(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "failed to compute estimate", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Preview handles POST /api/v1/preview requests from the admin UI.
//
// Preview godoc
// @Summary      Preview every rule
// @Description  Renders each active rule of the shop against a sample product, marking the rule the storefront would pick
// @Tags         estimate
// @Accept       json
// @Produce      json
// @Param        request  body      dto.PreviewRequest  true  "Sample product facts and evaluation instant"
// @Success      200      {object}  dto.PreviewResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse    "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/preview [post]
func (h *Handler) Preview(c *gin.Context) {
	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.estimates.Preview(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "failed to compute preview", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Countries handles GET /api/v1/countries.
//
// Countries godoc
// @Summary      List holiday calendars
// @Description  Enumerates the bank-holiday calendars a merchant can pick from
// @Tags         settings
// @Produce      json
// @Success      200  {array}  dto.CountryOption  "Success"
// @Router       /api/v1/countries [get]
func (h *Handler) Countries(c *gin.Context) {
	c.JSON(http.StatusOK, h.estimates.Countries(c.Request.Context()))
}

// GetSettings handles GET /api/v1/settings?shop=… requests.
//
// GetSettings godoc
// @Summary      Get shop settings
// @Description  Returns the shop's saved settings, or the defaults when nothing was saved yet
// @Tags         settings
// @Produce      json
// @Param        shop  query     string  true  "Shop domain" example(demo.myshopify.com)
// @Success      200   {object}  models.Settings    "Success"
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	shop, ok := shopParam(c)
	if !ok {
		return
	}
	s, err := h.configs.GetSettings(c.Request.Context(), shop)
	if err != nil {
		h.fail(c, "failed to load settings", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// PutSettings handles PUT /api/v1/settings requests.
//
// PutSettings godoc
// @Summary      Save shop settings
// @Description  Validates and saves the shop's global settings and custom holidays
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      models.Settings  true  "Settings to save"
// @Success      200      {object}  models.Settings    "Saved"
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/settings [put]
func (h *Handler) PutSettings(c *gin.Context) {
	var s models.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.configs.SaveSettings(c.Request.Context(), &s); err != nil {
		h.fail(c, "failed to save settings", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ListRules handles GET /api/v1/rules?shop=… requests.
//
// ListRules godoc
// @Summary      List rules
// @Description  Returns the shop's rules in evaluation order
// @Tags         rules
// @Produce      json
// @Param        shop  query     string  true  "Shop domain" example(demo.myshopify.com)
// @Success      200   {array}   models.Rule        "Success"
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/rules [get]
func (h *Handler) ListRules(c *gin.Context) {
	shop, ok := shopParam(c)
	if !ok {
		return
	}
	rules, err := h.configs.ListRules(c.Request.Context(), shop)
	if err != nil {
		h.fail(c, "failed to load rules", err)
		return
	}
	if rules == nil {
		rules = []models.Rule{}
	}
	c.JSON(http.StatusOK, rules)
}

// CreateRule handles POST /api/v1/rules requests.
//
// CreateRule godoc
// @Summary      Create a rule
// @Description  Validates the rule, compiles its match expression and stores it
// @Tags         rules
// @Accept       json
// @Produce      json
// @Param        request  body      models.Rule  true  "Rule to create"
// @Success      201      {object}  models.Rule        "Created"
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/rules [post]
func (h *Handler) CreateRule(c *gin.Context) {
	var r models.Rule
	if err := c.ShouldBindJSON(&r); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.configs.CreateRule(c.Request.Context(), &r); err != nil {
		h.fail(c, "failed to create rule", err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// GetRule handles GET /api/v1/rules/:id?shop=… requests.
//
// GetRule godoc
// @Summary      Get one rule
// @Tags         rules
// @Produce      json
// @Param        shop  query     string  true  "Shop domain" example(demo.myshopify.com)
// @Param        id    path      string  true  "Rule id"
// @Success      200   {object}  models.Rule        "Success"
// @Failure      404   {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/rules/{id} [get]
func (h *Handler) GetRule(c *gin.Context) {
	shop, ok := shopParam(c)
	if !ok {
		return
	}
	r, err := h.configs.GetRule(c.Request.Context(), shop, c.Param("id"))
	if err != nil {
		h.fail(c, "failed to load rule", err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// UpdateRule handles PUT /api/v1/rules/:id requests. The path id wins over
// any id in the body.
//
// UpdateRule godoc
// @Summary      Update a rule
// @Tags         rules
// @Accept       json
// @Produce      json
// @Param        id       path      string       true  "Rule id"
// @Param        request  body      models.Rule  true  "Rule fields"
// @Success      200      {object}  models.Rule        "Updated"
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse  "Not Found"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/rules/{id} [put]
func (h *Handler) UpdateRule(c *gin.Context) {
	var r models.Rule
	if err := c.ShouldBindJSON(&r); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	r.ID = c.Param("id")
	if err := h.configs.UpdateRule(c.Request.Context(), &r); err != nil {
		h.fail(c, "failed to update rule", err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeleteRule handles DELETE /api/v1/rules/:id?shop=… requests.
//
// DeleteRule godoc
// @Summary      Delete a rule
// @Tags         rules
// @Produce      json
// @Param        shop  query  string  true  "Shop domain" example(demo.myshopify.com)
// @Param        id    path   string  true  "Rule id"
// @Success      204   "Deleted"
// @Failure      404   {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/rules/{id} [delete]
func (h *Handler) DeleteRule(c *gin.Context) {
	shop, ok := shopParam(c)
	if !ok {
		return
	}
	if err := h.configs.DeleteRule(c.Request.Context(), shop, c.Param("id")); err != nil {
		h.fail(c, "failed to delete rule", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// fail maps service errors onto HTTP statuses: validation to 400, missing
// rules to 404, everything else to 500.
func (h *Handler) fail(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		middleware.AbortWithError(c, http.StatusBadRequest, message, err)
	case errors.Is(err, storage.ErrRuleNotFound):
		middleware.AbortWithError(c, http.StatusNotFound, message, err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, message, err)
	}
}

func shopParam(c *gin.Context) (string, bool) {
	shop := strings.TrimSpace(c.Query("shop"))
	if shop == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "shop is required", nil)
		return "", false
	}
	return shop, true
}
