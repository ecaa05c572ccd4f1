package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Themorocd/ShopFast/middleware"
	"github.com/Themorocd/ShopFast/models"
)

// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Preload("Supplier").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// parseProductForm reads the multipart fields shared by create and update.
func parseProductForm(c *gin.Context) (models.Product, error) {
	var p models.Product

	p.Name = c.PostForm("name")
	p.Description = c.PostForm("description")

	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return p, errors.New("invalid price")
		}
		p.Price = price
	}
	if stockStr := c.PostForm("stock"); stockStr != "" {
		stock, err := strconv.Atoi(stockStr)
		if err != nil {
			return p, errors.New("invalid stock")
		}
		p.Stock = stock
	}
	if idStr := c.PostForm("category_id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return p, errors.New("invalid category_id")
		}
		p.CategoryID = uint(id)
	}
	if idStr := c.PostForm("supplier_id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return p, errors.New("invalid supplier_id")
		}
		p.SupplierID = uint(id)
	}
	return p, nil
}

// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := parseProductForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if product.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		if file, err := c.FormFile("image"); err == nil {
			imagePath, err := middleware.SaveUploadedImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			product.Image = imagePath
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		update, err := parseProductForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if update.Name != "" {
			product.Name = update.Name
		}
		if update.Description != "" {
			product.Description = update.Description
		}
		if c.PostForm("price") != "" {
			product.Price = update.Price
		}
		if c.PostForm("stock") != "" {
			product.Stock = update.Stock
		}
		if update.CategoryID != 0 {
			product.CategoryID = update.CategoryID
		}
		if update.SupplierID != 0 {
			product.SupplierID = update.SupplierID
		}

		if file, err := c.FormFile("image"); err == nil {
			imagePath, err := middleware.SaveUploadedImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			product.Image = imagePath
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
	}
}

// DELETE /api/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Product{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
