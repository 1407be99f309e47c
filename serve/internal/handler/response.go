package handler

import (
	"errors"
	"net/http"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
	"github.com/HuXin0817/dots-chain/serve/internal/logic"
	"github.com/HuXin0817/dots-chain/serve/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, logic.GameNotFoundErr):
		return http.StatusNotFound
	case errors.Is(err, logic.GameOverErr),
		errors.Is(err, logic.NotYourTurnErr),
		errors.Is(err, chess.ErrAlreadyDrawn):
		return http.StatusConflict
	case errors.Is(err, logic.BoardSizeOutOfRangeErr),
		errors.Is(err, logic.InvalidGameUidErr),
		errors.Is(err, logic.UnknownPlayerErr),
		errors.Is(err, logic.UnknownFirstPlayerErr),
		errors.Is(err, chess.ErrBoardSize),
		errors.Is(err, chess.ErrInvalidFormat),
		errors.Is(err, chess.ErrNotAdjacent):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	code := statusOf(err)
	resp := types.ErrorResp{Code: code, Message: err.Error()}

	if o := chess.OutcomeOf(err); o.Rejected() {
		resp.Outcome = &o
	}
	if code == http.StatusInternalServerError {
		logx.WithContext(c.Request.Context()).Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		resp.Message = http.StatusText(code)
	}

	c.AbortWithStatusJSON(code, resp)
}

func ok(c *gin.Context, code int, v any) {
	c.JSON(code, v)
}
