package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"floreria-be/internal/catalog"
	"floreria-be/internal/utils"
	"floreria-be/internal/validation"
)

// listOptions reads the shared search/pagination query params. Public
// listings only show active products; the admin passes all=true to see
// everything.
func listOptions(c *gin.Context) catalog.ListOptions {
	opts := catalog.ListOptions{OnlyActive: c.Query("all") != "true"}

	if q := c.Query("q"); q != "" {
		opts.Search = utils.StrPtr(q)
	}
	if limit, err := strconv.ParseInt(c.Query("limit"), 10, 32); err == nil {
		opts.Limit = int32(limit)
	}
	if page, err := strconv.ParseInt(c.Query("page"), 10, 32); err == nil {
		opts.Page = int32(page)
	}

	return opts
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := utils.ToInt64(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) ListBouquets(c *gin.Context) {
	out, err := h.catalog.ListBouquets(c.Request.Context(), listOptions(c))
	if err != nil {
		respondError(c, err)
		return
	}

	views := []bouquetView{}
	for _, b := range out {
		views = append(views, toBouquetView(b))
	}
	c.JSON(http.StatusOK, gin.H{"bouquets": views})
}

func (h *Handler) GetBouquet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.catalog.GetBouquet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBouquetView(b))
}

func (h *Handler) CreateBouquet(c *gin.Context) {
	var req validation.NewBouquetRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	b, err := h.catalog.CreateBouquet(c.Request.Context(), catalog.NewBouquetInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBouquetView(b))
}

func (h *Handler) UpdateBouquet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validation.UpdateBouquetRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	b, err := h.catalog.UpdateBouquet(c.Request.Context(), id, catalog.UpdateBouquetInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Active:      req.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBouquetView(b))
}

func (h *Handler) ListFlowers(c *gin.Context) {
	out, err := h.catalog.ListFlowers(c.Request.Context(), listOptions(c))
	if err != nil {
		respondError(c, err)
		return
	}

	views := []flowerView{}
	for _, f := range out {
		views = append(views, toFlowerView(f))
	}
	c.JSON(http.StatusOK, gin.H{"flowers": views})
}

func (h *Handler) GetFlower(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	f, err := h.catalog.GetFlower(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlowerView(f))
}

func (h *Handler) CreateFlower(c *gin.Context) {
	var req validation.NewFlowerRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	f, err := h.catalog.CreateFlower(c.Request.Context(), catalog.NewFlowerInput{
		Name:     req.Name,
		Color:    req.Color,
		Price:    req.Price,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlowerView(f))
}

func (h *Handler) UpdateFlower(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validation.UpdateFlowerRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	f, err := h.catalog.UpdateFlower(c.Request.Context(), id, catalog.UpdateFlowerInput{
		Name:     req.Name,
		Color:    req.Color,
		Price:    req.Price,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
		Active:   req.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlowerView(f))
}
