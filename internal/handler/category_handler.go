package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tablero/internal/catalog"
)

// CategoryHandler handles product category configuration endpoints.
type CategoryHandler struct {
	store *catalog.Store
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(store *catalog.Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// Get handles GET /api/v1/categories
func (h *CategoryHandler) Get(c *gin.Context) {
	config, err := h.store.Load()
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, config)
}

// CategoryInput carries a category name.
type CategoryInput struct {
	Name string `json:"name"`
}

// AddCategory handles POST /api/v1/categories
func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if input.Name == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		return
	}

	if err := h.store.AddCategory(input.Name); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"name": input.Name})
}

// RemoveCategory handles DELETE /api/v1/categories/:name
func (h *CategoryHandler) RemoveCategory(c *gin.Context) {
	if err := h.store.RemoveCategory(c.Param("name")); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// CodeInput carries a product code.
type CodeInput struct {
	Code string `json:"code"`
}

// AddCode handles POST /api/v1/categories/:name/codes
func (h *CategoryHandler) AddCode(c *gin.Context) {
	var input CodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if input.Code == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "code is required")
		return
	}

	if err := h.store.AddCode(c.Param("name"), input.Code); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"code": input.Code})
}

// RemoveCode handles DELETE /api/v1/categories/:name/codes/:index
func (h *CategoryHandler) RemoveCode(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid code index")
		return
	}

	if err := h.store.RemoveCode(c.Param("name"), index); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
