package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zerosmoke/health-portal/internal/core/ports"
)

type FAQHandler struct {
	faqs ports.FAQService
}

func NewFAQHandler(faqs ports.FAQService) *FAQHandler {
	return &FAQHandler{faqs: faqs}
}

// List godoc
//
// @Summary  List FAQs by category
// @Tags     faqs
// @Produce  json
// @Success  200  {array}  domain.FAQ
// @Router   /faqs [get]
func (h *FAQHandler) List(c echo.Context) error {
	faqs, err := h.faqs.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faqs)
}

// Get godoc
//
// @Summary  Get a FAQ
// @Tags     faqs
// @Produce  json
// @Param    id   path      string  true  "FAQ ID"
// @Success  200  {object}  domain.FAQ
// @Failure  404  {object}  map[string]string
// @Router   /faqs/{id} [get]
func (h *FAQHandler) Get(c echo.Context) error {
	faq, err := h.faqs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faq)
}

// Create godoc
//
// @Summary   Create a FAQ
// @Tags      faqs
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      createFAQRequest  true  "FAQ"
// @Success   201   {object}  domain.FAQ
// @Failure   400   {object}  map[string]string
// @Router    /faqs [post]
func (h *FAQHandler) Create(c echo.Context) error {
	var req createFAQRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	faq, err := h.faqs.Create(c.Request().Context(), ports.CreateFAQInput{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, faq)
}

// Update godoc
//
// @Summary   Update a FAQ
// @Tags      faqs
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      string            true  "FAQ ID"
// @Param     body  body      updateFAQRequest  true  "Fields to change"
// @Success   200   {object}  domain.FAQ
// @Failure   400   {object}  map[string]string
// @Failure   404   {object}  map[string]string
// @Router    /faqs/{id} [put]
func (h *FAQHandler) Update(c echo.Context) error {
	var req updateFAQRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	faq, err := h.faqs.Update(c.Request().Context(), c.Param("id"), ports.UpdateFAQInput{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faq)
}

// Delete godoc
//
// @Summary   Delete a FAQ
// @Tags      faqs
// @Security  BearerAuth
// @Param     id  path  string  true  "FAQ ID"
// @Success   204
// @Failure   404  {object}  map[string]string
// @Router    /faqs/{id} [delete]
func (h *FAQHandler) Delete(c echo.Context) error {
	if err := h.faqs.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
