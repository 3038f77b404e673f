package handlers

import (
	"net/http"
	"strings"

	"techsphere-api/helper"
	"techsphere-api/middleware"
	"techsphere-api/models"
	"techsphere-api/pagination"
	"techsphere-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	pages          pagination.Parser
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, pages pagination.Parser) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		pages:          pages,
		Helper:         &helper.HTTPHelper{},
	}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	params, ok := h.Helper.ParsePage(c, h.pages)
	if !ok {
		return
	}

	articles, meta, err := h.articleService.ListArticles(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendPage(c, articles, meta, nil)
}

func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	params, ok := h.Helper.ParsePage(c, h.pages)
	if !ok {
		return
	}

	searchText := strings.TrimSpace(c.Query("searchText"))
	articles, meta, err := h.articleService.SearchArticles(c.Request.Context(), searchText, params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var extra gin.H
	if searchText != "" {
		extra = gin.H{"searchText": searchText}
	}
	h.Helper.SendPage(c, articles, meta, extra)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id", models.MessageInvalidArticleID)
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, article)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	caller, _ := middleware.CurrentCaller(c)

	var req models.CreateArticleRequest
	if err := h.Helper.DecodeJSON(c, &req, false); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), caller, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{
		"message": "Article created successfully",
		"article": article,
	})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	caller, _ := middleware.CurrentCaller(c)
	id, ok := h.Helper.ParseID(c, "id", models.MessageInvalidArticleID)
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if err := h.Helper.DecodeJSON(c, &req, false); err != nil {
		// Access failures take precedence over a malformed body.
		if accessErr := h.articleService.CheckAccess(c.Request.Context(), caller, id); accessErr != nil {
			err = accessErr
		}
		h.Helper.SendError(c, err)
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), caller, id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"message": "Article updated successfully",
		"article": article,
	})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	caller, _ := middleware.CurrentCaller(c)
	id, ok := h.Helper.ParseID(c, "id", models.MessageInvalidArticleID)
	if !ok {
		return
	}

	article, err := h.articleService.DeleteArticle(c.Request.Context(), caller, id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"message": "Article deleted successfully",
		"article": article,
	})
}

func (h *ArticleHandler) CountArticles(c *gin.Context) {
	count, err := h.articleService.CountArticles(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"count": count})
}
