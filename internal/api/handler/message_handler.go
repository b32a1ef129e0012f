package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

// MessageHandler serves the public contact form and the admin inbox.
type MessageHandler struct {
	messages ports.MessageService
}

func NewMessageHandler(messages ports.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Submit godoc
//
// @Summary  Submit a contact message
// @Tags     messages
// @Accept   json
// @Produce  json
// @Param    body  body      submitMessageRequest  true  "Contact form"
// @Success  201   {object}  domain.Message
// @Failure  400   {object}  map[string]string
// @Router   /messages [post]
func (h *MessageHandler) Submit(c echo.Context) error {
	var req submitMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.messages.Submit(c.Request().Context(), ports.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.text(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// List godoc
//
// @Summary   List contact messages, newest first
// @Tags      messages
// @Produce   json
// @Security  BearerAuth
// @Param     status  query     string  false  "new, read or answered"
// @Success   200     {array}   domain.Message
// @Failure   400     {object}  map[string]string
// @Router    /messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	filter := ports.MessageFilter{Status: domain.MessageStatus(c.QueryParam("status"))}
	msgs, err := h.messages.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// Get returns a message and marks it read when it is still new.
//
// @Summary   Open a contact message
// @Tags      messages
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Message ID"
// @Success   200  {object}  domain.Message
// @Failure   404  {object}  map[string]string
// @Router    /messages/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	msg, err := h.messages.MarkAsRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

// Reply godoc
//
// @Summary   Answer a contact message by email
// @Tags      messages
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      string        true  "Message ID"
// @Param     body  body      replyRequest  true  "Reply"
// @Success   200   {object}  domain.Message
// @Failure   400   {object}  map[string]string
// @Failure   404   {object}  map[string]string
// @Router    /messages/{id}/reply [post]
func (h *MessageHandler) Reply(c echo.Context) error {
	var req replyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.messages.Reply(c.Request().Context(), c.Param("id"), req.ReplyText)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

// Delete godoc
//
// @Summary   Delete a contact message
// @Tags      messages
// @Security  BearerAuth
// @Param     id  path  string  true  "Message ID"
// @Success   204
// @Failure   404  {object}  map[string]string
// @Router    /messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	if err := h.messages.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
