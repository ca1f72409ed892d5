package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"lojinha/internal/config"
	"lojinha/internal/domain"
	"lojinha/internal/logger"
	"lojinha/internal/metrics"
	"lojinha/internal/repository"
	"lojinha/internal/service"
	"lojinha/internal/upload"
)

type Server struct {
	engine   *gin.Engine
	products *service.ProductService
	orders   *service.OrderService
	uploads  *upload.Saver
}

// NewServer wires the API routes, the uploads static mount and the
// ambient middleware. Pass a nil HTTPMetrics to skip the metrics
// endpoint (tests do).
func NewServer(cfg *config.Config, products *service.ProductService, orders *service.OrderService, uploads *upload.Saver, m *metrics.HTTPMetrics) *Server {
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestID(), logger.RequestLogger())
	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	s := &Server{engine: r, products: products, orders: orders, uploads: uploads}
	s.registerRoutes(cfg.UploadsDir)
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes(uploadsDir string) {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// uploaded images, read-only
	s.engine.Static("/uploads", uploadsDir)

	api := s.engine.Group("/api")
	{
		products := api.Group("/products")
		products.GET("", s.listProducts)
		products.GET(":id", s.getProduct)
		products.GET("category/:name", s.listByCategory)
		products.POST("", s.createProduct)
		products.PUT(":id", s.updateProduct)
		products.DELETE(":id", s.deleteProduct)

		api.POST("/orders", s.createOrder)
	}
}

// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	list, err := s.products.List(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := s.products.GetByID(c, id)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary List products in a category
// @Tags products
// @Produce json
// @Param name path string true "Category name (case-insensitive)"
// @Success 200 {array} domain.Product
// @Router /products/category/{name} [get]
func (s *Server) listByCategory(c *gin.Context) {
	list, err := s.products.ListByCategory(c, c.Param("name"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create product
// @Tags products
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param price formData string true "Price"
// @Param stock formData int true "Stock"
// @Param categoria formData string true "Category"
// @Param destaque formData bool false "Featured flag"
// @Param image formData file true "Product image"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image uploaded"})
		return
	}

	var stock int64
	if v := c.PostForm("stock"); v != "" {
		stock, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stock"})
			return
		}
	}

	imageURL, err := s.uploads.Save(fh)
	if err != nil {
		logger.FromContext(c).Error("save upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	p, err := s.products.Create(c, domain.Product{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Stock:       stock,
		Categoria:   c.PostForm("categoria"),
		Destaque:    c.PostForm("destaque") == "true",
		ImageURL:    imageURL,
	})
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param input body service.ProductPatch true "Fields to change"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func (s *Server) updateProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var patch service.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.products.Update(c, id, patch)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Delete product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.products.Delete(c, id); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param input body object true "Order payload (stored as-is)"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /orders [post]
func (s *Server) createOrder(c *gin.Context) {
	var payload map[string]json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.orders.Create(c, payload)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "order created", "order": o})
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func mapErrorToStatus(err error) int {
	switch err {
	case service.ErrInvalidInput:
		return http.StatusBadRequest
	case repository.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
