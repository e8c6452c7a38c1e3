package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"breast-cancer-api/internal/core/domain"
)

type featureField struct {
	Name    string
	Example float64
}

func (h *Handler) Home(c *gin.Context) {
	fields := make([]featureField, 0, domain.FeatureCount)
	for i, name := range domain.FeatureNames {
		fields = append(fields, featureField{Name: name, Example: domain.ExampleFeatures[i]})
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":    pageTitle,
		"Features": fields,
	})
}

func (h *Handler) APIDocs(c *gin.Context) {
	c.HTML(http.StatusOK, "apidocs.html", gin.H{
		"Title":   pageTitle,
		"SpecURL": apiSpecPath,
	})
}

func (h *Handler) APISpec(c *gin.Context) {
	c.JSON(http.StatusOK, h.apiSpec)
}
