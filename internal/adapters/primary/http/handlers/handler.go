package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"breast-cancer-api/internal/adapters/primary/http/dto"
	"breast-cancer-api/internal/adapters/primary/http/web"
	"breast-cancer-api/internal/core/services"
)

const (
	pageTitle   = "Breast Cancer Prediction"
	apiSpecPath = "/apispec_1.json"
)

type Handler struct {
	predictionSvc *services.PredictionService
	templates     *template.Template
	apiSpec       map[string]interface{}
}

func New(predictionSvc *services.PredictionService) (*Handler, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	spec, err := web.OpenAPI()
	if err != nil {
		return nil, err
	}
	return &Handler{
		predictionSvc: predictionSvc,
		templates:     tmpl,
		apiSpec:       spec,
	}, nil
}

// RegisterRoutes mounts every endpoint on r. Unknown routes and methods get
// the JSON error body as well.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(h.templates)
	r.HandleMethodNotAllowed = true

	// Pages
	r.GET("/", h.Home)
	r.GET("/apidocs/", h.APIDocs)
	r.GET(apiSpecPath, h.APISpec)

	// Prediction
	r.POST("/predict", h.Predict)

	// Health
	r.GET("/healthz", h.Health)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("not found"))
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(
			fmt.Sprintf("method %s not allowed", c.Request.Method)))
	})
}
