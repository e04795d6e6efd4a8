package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"care-companion/internal/assessment"
	"care-companion/internal/sessions"
)

type progress struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

func progressOf(s *assessment.Session) progress {
	answered, total := s.Progress()
	return progress{Answered: answered, Total: total}
}

// assessmentError 将评估引擎错误映射为 HTTP 状态码
func assessmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sessions.ErrNotFound):
		sendError(c, http.StatusNotFound, "assessment session not found", err)
	case errors.Is(err, assessment.ErrInvalidAnswer):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, assessment.ErrSequenceComplete),
		errors.Is(err, assessment.ErrNotComplete),
		errors.Is(err, assessment.ErrEmptyResponseSet):
		sendError(c, http.StatusConflict, err.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "assessment error", err)
	}
}

func audienceParam(raw string) assessment.Audience {
	if raw == "" {
		return assessment.AudienceAll
	}
	return assessment.Audience(raw)
}

// ListQuestions 按人群返回题目列表
func (h *Handler) ListQuestions(c *gin.Context) {
	items := h.engine.Bank().FilterForAudience(audienceParam(c.Query("audience")))
	c.JSON(http.StatusOK, gin.H{
		"questions": items,
		"count":     len(items),
	})
}

// StartAssessment 开始一次评估
func (h *Handler) StartAssessment(c *gin.Context) {
	var req struct {
		Audience string `json:"audience"`
	}
	// 空请求体使用默认人群
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	id, sess := h.sessions.Start(audienceParam(req.Audience))
	first, err := sess.CurrentQuestion()
	if err != nil {
		h.sessions.Delete(id)
		assessmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id":     id,
		"first_question": first,
		"progress":       progressOf(sess),
	})
}

// AnswerQuestion 提交当前题目的答案
func (h *Handler) AnswerQuestion(c *gin.Context) {
	var req struct {
		Value *int `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "value is required", err)
		return
	}

	var resp gin.H
	err := h.sessions.With(c.Param("id"), func(s *assessment.Session) error {
		state, err := s.Answer(*req.Value)
		if err != nil {
			return err
		}
		if state == assessment.StateComplete {
			resp = gin.H{"complete": true, "progress": progressOf(s)}
			return nil
		}
		next, err := s.CurrentQuestion()
		if err != nil {
			return err
		}
		resp = gin.H{"complete": false, "next_question": next, "progress": progressOf(s)}
		return nil
	})
	if err != nil {
		assessmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetResult 获取评估结果
func (h *Handler) GetResult(c *gin.Context) {
	var res assessment.Result
	err := h.sessions.With(c.Param("id"), func(s *assessment.Session) error {
		var err error
		res, err = s.Result()
		return err
	})
	if err != nil {
		assessmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetResources 获取推荐资源
func (h *Handler) GetResources(c *gin.Context) {
	var recs []assessment.Resource
	err := h.sessions.With(c.Param("id"), func(s *assessment.Session) error {
		var err error
		recs, err = s.Recommendations()
		return err
	})
	if err != nil {
		assessmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// ResetAssessment 重新开始评估
func (h *Handler) ResetAssessment(c *gin.Context) {
	var resp gin.H
	err := h.sessions.With(c.Param("id"), func(s *assessment.Session) error {
		s.Reset()
		first, err := s.CurrentQuestion()
		if err != nil {
			return err
		}
		resp = gin.H{"first_question": first, "progress": progressOf(s)}
		return nil
	})
	if err != nil {
		assessmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DiscardAssessment 丢弃评估会话
func (h *Handler) DiscardAssessment(c *gin.Context) {
	if !h.sessions.Delete(c.Param("id")) {
		sendError(c, http.StatusNotFound, "assessment session not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assessment discarded"})
}
