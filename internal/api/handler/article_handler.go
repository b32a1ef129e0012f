package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

// ArticleHandler serves the public article reader and the admin editor.
type ArticleHandler struct {
	articles ports.ArticleService
	users    ports.UserService
}

// NewArticleHandler builds the handler. users resolves the author's display
// name on create and may be nil.
func NewArticleHandler(articles ports.ArticleService, users ports.UserService) *ArticleHandler {
	return &ArticleHandler{articles: articles, users: users}
}

// ListPublished godoc
//
// @Summary  List published articles
// @Tags     articles
// @Produce  json
// @Success  200  {array}  domain.Article
// @Router   /articles [get]
func (h *ArticleHandler) ListPublished(c echo.Context) error {
	articles, err := h.articles.List(c.Request().Context(), ports.ArticleFilter{Status: domain.ArticlePublished})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// GetPublished godoc
//
// @Summary  Get a published article
// @Tags     articles
// @Produce  json
// @Param    id   path      string  true  "Article ID"
// @Success  200  {object}  domain.Article
// @Failure  404  {object}  map[string]string
// @Router   /articles/{id} [get]
func (h *ArticleHandler) GetPublished(c echo.Context) error {
	article, err := h.articles.Get(c.Request().Context(), c.Param("id"), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// ListAll godoc
//
// @Summary   List every article, drafts included
// @Tags      articles
// @Produce   json
// @Security  BearerAuth
// @Param     status  query     string  false  "draft or published"
// @Success   200     {array}   domain.Article
// @Failure   400     {object}  map[string]string
// @Router    /admin/articles [get]
func (h *ArticleHandler) ListAll(c echo.Context) error {
	filter := ports.ArticleFilter{Status: domain.ArticleStatus(c.QueryParam("status"))}
	articles, err := h.articles.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// GetAny godoc
//
// @Summary   Get an article in any status
// @Tags      articles
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Article ID"
// @Success   200  {object}  domain.Article
// @Failure   404  {object}  map[string]string
// @Router    /admin/articles/{id} [get]
func (h *ArticleHandler) GetAny(c echo.Context) error {
	article, err := h.articles.Get(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Create godoc
//
// @Summary   Create an article
// @Tags      articles
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      createArticleRequest  true  "Article"
// @Success   201   {object}  domain.Article
// @Failure   400   {object}  map[string]string
// @Router    /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	author := ""
	if h.users != nil {
		if u, err := h.users.Get(ctx, claims.Subject); err == nil {
			author = u.Name
		}
	}

	article, err := h.articles.Create(ctx, ports.CreateArticleInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Image:    req.Image,
		Status:   req.Status,
		Tags:     req.Tags,
		AuthorID: claims.Subject,
		Author:   author,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, article)
}

// Update godoc
//
// @Summary   Update an article's content or status
// @Tags      articles
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      string                true  "Article ID"
// @Param     body  body      updateArticleRequest  true  "Fields to change"
// @Success   200   {object}  domain.Article
// @Failure   400   {object}  map[string]string
// @Failure   404   {object}  map[string]string
// @Router    /articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	var req updateArticleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	article, err := h.articles.Update(c.Request().Context(), c.Param("id"), ports.UpdateArticleInput{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Image:   req.Image,
		Tags:    req.Tags,
		Status:  req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Publish godoc
//
// @Summary   Publish a draft article
// @Tags      articles
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Article ID"
// @Success   200  {object}  domain.Article
// @Failure   400  {object}  map[string]string
// @Failure   404  {object}  map[string]string
// @Router    /articles/{id}/publish [post]
func (h *ArticleHandler) Publish(c echo.Context) error {
	article, err := h.articles.Publish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Unpublish godoc
//
// @Summary   Move a published article back to draft
// @Tags      articles
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Article ID"
// @Success   200  {object}  domain.Article
// @Failure   400  {object}  map[string]string
// @Failure   404  {object}  map[string]string
// @Router    /articles/{id}/unpublish [post]
func (h *ArticleHandler) Unpublish(c echo.Context) error {
	article, err := h.articles.Unpublish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Delete godoc
//
// @Summary   Delete an article
// @Tags      articles
// @Security  BearerAuth
// @Param     id  path  string  true  "Article ID"
// @Success   204
// @Failure   404  {object}  map[string]string
// @Router    /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.articles.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
