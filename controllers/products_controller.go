package controllers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/east-hides/eastbackend/catalog"
	"github.com/east-hides/eastbackend/models"
	"github.com/east-hides/eastbackend/utils"
)

func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		categorySlug := strings.TrimSpace(c.Query("category"))
		datasheet, err := utils.ParseBoolQuery(c.Query("datasheet"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid datasheet filter"})
			return
		}
		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), 20)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}
		if limit > 100 {
			limit = 100
		}

		all := catalog.ListProducts()
		items := make([]models.Product, 0, len(all))
		for _, p := range all {
			if categorySlug != "" && utils.GenerateSlug(p.Category) != categorySlug {
				continue
			}
			if datasheet != nil && (p.DatasheetURL != "") != *datasheet {
				continue
			}
			items = append(items, p)
		}

		sortParam := strings.TrimSpace(c.Query("sort"))
		switch sortParam {
		case "moq_asc":
			sort.SliceStable(items, func(i, j int) bool { return items[i].MOQKg < items[j].MOQKg })
		case "moq_desc":
			sort.SliceStable(items, func(i, j int) bool { return items[i].MOQKg > items[j].MOQKg })
		case "leadtime_asc":
			sort.SliceStable(items, func(i, j int) bool { return items[i].LeadTimeDays < items[j].LeadTimeDays })
		default:
			sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		}

		total := len(items)
		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		c.JSON(http.StatusOK, gin.H{
			"items":    items[start:end],
			"page":     page,
			"limit":    limit,
			"total":    total,
			"category": categorySlug,
			"sort":     sortParam,
			"ts":       time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		p, ok := catalog.GetProductBySlug(slug)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
