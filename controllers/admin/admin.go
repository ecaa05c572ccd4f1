package adminControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/Themorocd/ShopFast/controllers/catalog"
	productControllers "github.com/Themorocd/ShopFast/controllers/product"
	"github.com/Themorocd/ShopFast/models"
)

// The admin surface duplicates the public catalog CRUD behind the admin
// role gate. Products reuse the multipart handlers; categories and
// suppliers get their own admin variants below.

func ListProducts(db *gorm.DB) gin.HandlerFunc  { return productControllers.GetProducts(db) }
func CreateProduct(db *gorm.DB) gin.HandlerFunc { return productControllers.CreateProduct(db) }
func UpdateProduct(db *gorm.DB) gin.HandlerFunc { return productControllers.UpdateProduct(db) }
func DeleteProduct(db *gorm.DB) gin.HandlerFunc { return productControllers.DeleteProduct(db) }

func ListCategories(db *gorm.DB) gin.HandlerFunc { return catalogControllers.GetCategories(db) }
func CreateCategory(db *gorm.DB) gin.HandlerFunc { return catalogControllers.CreateCategory(db) }
func UpdateCategory(db *gorm.DB) gin.HandlerFunc { return catalogControllers.UpdateCategory(db) }
func DeleteCategory(db *gorm.DB) gin.HandlerFunc { return catalogControllers.DeleteCategory(db) }

func ListSuppliers(db *gorm.DB) gin.HandlerFunc  { return catalogControllers.GetSuppliers(db) }
func CreateSupplier(db *gorm.DB) gin.HandlerFunc { return catalogControllers.CreateSupplier(db) }

// PUT /api/admin/suppliers/:id
func UpdateSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var supplier models.Supplier
		if err := db.First(&supplier, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch supplier"})
			return
		}

		var input catalogControllers.SupplierInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		supplier.CategoryID = input.CategoryID
		supplier.Name = input.Name
		supplier.Email = input.Email
		supplier.Phone = input.Phone

		if err := db.Save(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Supplier updated", "supplier": supplier})
	}
}

// DELETE /api/admin/suppliers/:id
func DeleteSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Supplier{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
	}
}
