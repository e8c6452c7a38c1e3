package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"breast-cancer-api/internal/adapters/primary/http/dto"
	"breast-cancer-api/internal/core/domain"
)

// bindError classifies a request binding failure into a domain error.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs) && len(verrs) > 0:
		return fmt.Errorf("%w: %s", domain.ErrMissingFeature, verrs[0].Field())
	case errors.Is(err, domain.ErrNonNumericFeature),
		errors.Is(err, domain.ErrNonFiniteFeature):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrMalformedBody, err)
	}
}

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrMissingFeature):
		// carries only the field name, see bindError
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, domain.ErrNonFiniteFeature):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(domain.ErrNonFiniteFeature.Error()))
	case errors.Is(err, domain.ErrNonNumericFeature):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(domain.ErrNonNumericFeature.Error()))
	case errors.Is(err, domain.ErrMalformedBody):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(domain.ErrMalformedBody.Error()))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MsgInternalError))
	}
}
