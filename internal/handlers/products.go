package handlers

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

type ProductHandler struct {
	Store     *store.Store
	UploadDir string
}

// List handles GET /api/products?category=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && !models.ValidProductCategory(category) {
		ErrorResponse(w, http.StatusBadRequest, "Unknown category")
		return
	}

	products, err := h.Store.ListProducts(r.Context(), category)
	if err != nil {
		slog.Error("failed to list products", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	JSONResponse(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.Store.GetProductByID(r.Context(), r.PathValue("id"))
	if err != nil {
		storeErrorResponse(w, err, "Product not found")
		return
	}
	JSONResponse(w, http.StatusOK, product)
}

type createProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	ImageURL    string   `json:"image_url"`
	ImageURLs   []string `json:"image_urls"`
	IsOneOfOne  bool     `json:"is_one_of_one"`
}

func (req *createProductRequest) validate() string {
	switch {
	case req.Name == "":
		return "Name is required"
	case req.Description == "":
		return "Description is required"
	case !models.ValidProductCategory(req.Category):
		return "Unknown category"
	case req.Price <= 0:
		return "Price must be positive"
	case req.Stock < 0:
		return "Stock must be non-negative"
	}
	return ""
}

// Create handles POST /api/products (admin only, guarded in the route table).
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := req.validate(); msg != "" {
		ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		ImageURLs:   req.ImageURLs,
		IsOneOfOne:  req.IsOneOfOne,
	}
	if err := h.Store.CreateProduct(r.Context(), product); err != nil {
		slog.Error("failed to create product", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	slog.Info("product created", "product_id", product.ID, "name", product.Name)
	JSONResponse(w, http.StatusCreated, successResponse{Success: true, ID: product.ID})
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	ImageURL    *string  `json:"image_url"`
	IsOneOfOne  *bool    `json:"is_one_of_one"`
}

func (req *updateProductRequest) validate() string {
	switch {
	case req.Name != nil && *req.Name == "":
		return "Name cannot be empty"
	case req.Category != nil && !models.ValidProductCategory(*req.Category):
		return "Unknown category"
	case req.Price != nil && *req.Price <= 0:
		return "Price must be positive"
	case req.Stock != nil && *req.Stock < 0:
		return "Stock must be non-negative"
	}
	return ""
}

// Update handles PATCH /api/products/{id}; omitted fields stay unchanged.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := req.validate(); msg != "" {
		ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	upd := store.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		IsOneOfOne:  req.IsOneOfOne,
	}
	if err := h.Store.UpdateProduct(r.Context(), r.PathValue("id"), upd); err != nil {
		storeErrorResponse(w, err, "Product not found")
		return
	}
	JSONResponse(w, http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		storeErrorResponse(w, err, "Product not found")
		return
	}
	JSONResponse(w, http.StatusOK, successResponse{Success: true})
}

// UploadImage handles POST /api/products/{id}/image: decodes the upload,
// resizes to max width 800 and stores an optimized JPEG under the upload dir.
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.Store.GetProductByID(r.Context(), id); err != nil {
		storeErrorResponse(w, err, "Product not found")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "File too large. Max 10MB.")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	var img image.Image
	switch filepath.Ext(header.Filename) {
	case ".png":
		img, err = png.Decode(file)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(file)
	default:
		ErrorResponse(w, http.StatusBadRequest, "Unsupported image format. Only PNG, JPG, JPEG are allowed.")
		return
	}
	if err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Failed to decode image")
		return
	}

	// Max width 800px, preserve aspect ratio
	resized := resize.Resize(800, 0, img, resize.Lanczos3)

	filename := fmt.Sprintf("%s.jpg", uuid.NewString())
	out, err := os.Create(filepath.Join(h.UploadDir, filename))
	if err != nil {
		slog.Error("failed to create upload file", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Error saving image file")
		return
	}
	defer out.Close()

	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 80}); err != nil {
		slog.Error("failed to encode image", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Error encoding image")
		return
	}

	imageURL := "/static/uploads/" + filename
	if err := h.Store.UpdateProductImage(r.Context(), id, imageURL); err != nil {
		storeErrorResponse(w, err, "Product not found")
		return
	}

	JSONResponse(w, http.StatusOK, map[string]string{"image_url": imageURL})
}
