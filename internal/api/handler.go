package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"care-companion/internal/assessment"
	"care-companion/internal/assistant"
	"care-companion/internal/models"
	"care-companion/internal/sessions"
)

type Handler struct {
	db        *gorm.DB
	engine    *assessment.Engine
	sessions  *sessions.Store
	assistant *assistant.Assistant
}

func NewHandler(db *gorm.DB, engine *assessment.Engine, store *sessions.Store, as *assistant.Assistant) *Handler {
	return &Handler{db: db, engine: engine, sessions: store, assistant: as}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, mw ...gin.HandlerFunc) {
	api := r.Group("/api", mw...)
	{
		a := api.Group("/assessment")
		a.GET("/questions", h.ListQuestions)
		a.POST("/start", h.StartAssessment)
		a.POST("/:id/answer", h.AnswerQuestion)
		a.GET("/:id/result", h.GetResult)
		a.GET("/:id/resources", h.GetResources)
		a.POST("/:id/reset", h.ResetAssessment)
		a.DELETE("/:id", h.DiscardAssessment)

		api.POST("/appointments", h.CreateAppointment)
		api.GET("/appointments", h.ListAppointments)
		api.PUT("/appointments/:id", h.UpdateAppointment)
		api.DELETE("/appointments/:id", h.DeleteAppointment)

		api.POST("/medications", h.CreateMedication)
		api.GET("/medications", h.ListMedications)
		api.PUT("/medications/:id", h.UpdateMedication)
		api.DELETE("/medications/:id", h.DeleteMedication)

		api.POST("/chat", h.Chat)
		api.GET("/articles", h.GetArticles)
	}
}

// sendError 写入错误响应，服务端错误同时记录日志
func sendError(c *gin.Context, code int, msg string, err error) {
	if code >= http.StatusInternalServerError {
		if err != nil {
			log.Printf("[ERROR] %s: %v", msg, err)
		} else {
			log.Printf("[ERROR] %s", msg)
		}
	}
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}

// Chat AI 健康助手
func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "message is required", err)
		return
	}

	reply := h.assistant.Respond(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, reply)
}

// GetArticles 获取健康资讯列表
func (h *Handler) GetArticles(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		sendError(c, http.StatusBadRequest, "limit must be between 1 and 100", err)
		return
	}

	query := h.db.Order("published_at DESC").Limit(limit)
	if source := c.Query("source"); source != "" {
		query = query.Where("source = ?", source)
	}

	var articles []models.Article
	if err := query.Find(&articles).Error; err != nil {
		sendError(c, http.StatusInternalServerError, "failed to load articles", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}
