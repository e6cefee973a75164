package albums

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/api/common"
	"github.com/qlxz/couple-space/database/repo/albums"
)

// 自由文本字段用指针校验：只要求字段出现，空字符串是合法输入
type commentRequest struct {
	// username 为留言者自填昵称，不使用认证身份
	Username *string `json:"username" binding:"required,max=50"`
	Content  *string `json:"content" binding:"required"`
}

// CreateCommentHandler 为相册添加评论，返回含最新评论的相册
func (h *Handler) CreateCommentHandler(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req commentRequest
	if !common.BindJSON(c, &req) {
		return
	}

	album, err := h.repo.AddComment(id, *req.Username, *req.Content)
	if err != nil {
		if errors.Is(err, albums.ErrAlbumNotFound) {
			common.RespondNotFound(c, "Album not found")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	c.JSON(http.StatusOK, album)
}
