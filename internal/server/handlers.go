package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/besskit/bess-calculator/internal/calculation"
	"github.com/besskit/bess-calculator/internal/domain"
)

// SizingHandler serves the sizing endpoints over a shared engine.
type SizingHandler struct {
	engine *calculation.Engine
}

// NewSizingHandler creates a new sizing handler
func NewSizingHandler(engine *calculation.Engine) *SizingHandler {
	return &SizingHandler{engine: engine}
}

// RunSizing handles POST /api/v1/sizing. The body is a SizingInput; the
// response is the full report including design alternatives.
func (h *SizingHandler) RunSizing(c *gin.Context) {
	var input domain.SizingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: CodeInvalidRequest, Message: err.Error()},
		})
		return
	}

	result, err := h.engine.Calculate(input)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	recommendations, err := h.engine.GenerateRecommendations(input)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.Report{
		Result:          result,
		Recommendations: recommendations,
	})
}

// GetCatalog handles GET /api/v1/catalog.
func (h *SizingHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Catalog)
}

// writeEngineError maps engine errors onto HTTP semantics: rejected inputs
// are a client error, an unsatisfiable catalog constraint is an
// unprocessable configuration, anything else is internal.
func writeEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calculation.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: CodeInvalidInput, Message: err.Error()},
		})
	case calculation.IsInfeasible(err):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: ErrorDetail{Code: CodeInfeasible, Message: err.Error()},
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: CodeInternal, Message: err.Error()},
		})
	}
}
