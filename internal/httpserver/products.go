package httpserver

import (
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"telecom-catalog/internal/domain"
	productsvc "telecom-catalog/internal/service/product"
	"telecom-catalog/internal/storage"
)

type productHandlers struct {
	svc    *productsvc.Service
	files  storage.FileStore
	logger *log.Logger
}

func (h *productHandlers) list(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *productHandlers) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *productHandlers) listByCategory(c *gin.Context) {
	products, err := h.svc.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *productHandlers) listByOfferID(c *gin.Context) {
	offerID, ok := pathID(c, "offerId")
	if !ok {
		return
	}
	products, err := h.svc.ListByOfferID(c.Request.Context(), offerID)
	if err != nil {
		writeError(c, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// create accepts a multipart form: name, category, description, price,
// offer (offer id) and an optional file. The file is stored before the
// manager call; its URL rides along on the product.
func (h *productHandlers) create(c *gin.Context) {
	in, ok := bindProductForm(c)
	if !ok {
		return
	}
	if !h.attachFile(c, &in) {
		return
	}

	created, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *productHandlers) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	in, ok := bindProductForm(c)
	if !ok {
		return
	}

	// Keep the stored image when no replacement file is uploaded.
	existing, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	in.ImageURL = existing.ImageURL
	if !h.attachFile(c, &in) {
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *productHandlers) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *productHandlers) uploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil || fh.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}
	url, err := h.saveUpload(fh)
	if err != nil {
		h.logger.Printf("upload image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

// attachFile stores the optional "file" form part and sets the product's
// image URL. Reports false after writing a 500 when the save fails.
func (h *productHandlers) attachFile(c *gin.Context, p *domain.Product) bool {
	fh, err := c.FormFile("file")
	if err != nil || fh.Size == 0 {
		return true
	}
	url, err := h.saveUpload(fh)
	if err != nil {
		h.logger.Printf("save product image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store file"})
		return false
	}
	p.ImageURL = url
	return true
}

func (h *productHandlers) saveUpload(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return h.files.Save(fh.Filename, data)
}

func bindProductForm(c *gin.Context) (domain.Product, bool) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid price"})
		return domain.Product{}, false
	}

	p := domain.Product{
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Price:       price,
	}

	if raw := c.PostForm("offer"); raw != "" {
		offerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid offer id"})
			return domain.Product{}, false
		}
		p.Offer = &domain.Offer{ID: offerID}
	}
	return p, true
}
