package handlers

import (
	"net/http"

	"techsphere-api/helper"
	"techsphere-api/middleware"
	"techsphere-api/models"
	"techsphere-api/pagination"
	"techsphere-api/repositories"
	"techsphere-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	pages          pagination.Parser
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, pages pagination.Parser) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		pages:          pages,
		Helper:         &helper.HTTPHelper{},
	}
}

// GetComments lists comments newest first, optionally for one article.
// articleId=0 or a missing articleId lists every comment.
func (h *CommentHandler) GetComments(c *gin.Context) {
	params, ok := h.Helper.ParsePage(c, h.pages)
	if !ok {
		return
	}

	var query models.CommentListParams
	if err := c.ShouldBindQuery(&query); err != nil {
		h.Helper.SendBadRequest(c, models.MessageInvalidArticleID)
		return
	}

	filter := repositories.CommentFilter{ArticleID: query.ArticleID}
	comments, meta, err := h.commentService.ListComments(c.Request.Context(), filter, params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendPage(c, comments, meta, nil)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	caller, _ := middleware.CurrentCaller(c)

	var req models.CreateCommentRequest
	if err := h.Helper.DecodeJSON(c, &req, false); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), caller, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	caller, _ := middleware.CurrentCaller(c)
	id, ok := h.Helper.ParseID(c, "id", models.MessageInvalidCommentID)
	if !ok {
		return
	}

	var req models.UpdateCommentRequest
	if err := h.Helper.DecodeJSON(c, &req, false); err != nil {
		if accessErr := h.commentService.CheckAccess(c.Request.Context(), caller, id); accessErr != nil {
			err = accessErr
		}
		h.Helper.SendError(c, err)
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), caller, id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"message": "Comment updated successfully",
		"comment": comment,
	})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	caller, _ := middleware.CurrentCaller(c)
	id, ok := h.Helper.ParseID(c, "id", models.MessageInvalidCommentID)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), caller, id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

func (h *CommentHandler) CountComments(c *gin.Context) {
	count, err := h.commentService.CountComments(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"count": count})
}
