package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zubalebr/contestacoes-backend/internal/app/service"
	apperrors "github.com/zubalebr/contestacoes-backend/internal/errors"
	"github.com/zubalebr/contestacoes-backend/pkg/logger"
)

type StoreController struct {
	storeService service.StoreService
}

func NewStoreController(storeService service.StoreService) *StoreController {
	return &StoreController{
		storeService: storeService,
	}
}

// ListStores returns the distinct, sorted store names as a bare JSON
// array, the shape the form's autocomplete consumes.
// GET /api/v1/stores
func (ctrl *StoreController) ListStores(c *gin.Context) {
	stores, err := ctrl.storeService.ListStores(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list stores", err)
		info := apperrors.ParseError(err)
		apperrors.RespondWithError(c, info.Status, info.Code, info.Message)
		return
	}

	c.JSON(http.StatusOK, stores)
}
