package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/karnaval-obuv/shop/app/models"
	"github.com/karnaval-obuv/shop/app/repositories"
	"github.com/karnaval-obuv/shop/app/services"
	"github.com/shopspring/decimal"
)

const maxUploadBytes = 10 << 20

type ProductForm struct {
	Name          string `validate:"required,min=2,max=255"`
	SubcategoryID string `validate:"required,number"`
	Description   string
	Price         string `validate:"required"`
	OldPrice      string
	Sizes         []string
	Color         string
	IsNew         bool
	IsFeatured    bool
	IsActive      bool
}

func (h *AdminHandler) ProductsPage(w http.ResponseWriter, r *http.Request) {
	categoryID := parseUintParam(r.URL.Query().Get("category_id"))
	subcategoryID := parseUintParam(r.URL.Query().Get("subcategory_id"))
	search := r.URL.Query().Get("search")
	showDeleted := r.URL.Query().Get("show_deleted") != ""

	products, err := h.catalog.AdminProducts(r.Context(), categoryID, subcategoryID, search, showDeleted)
	if err != nil {
		log.Printf("ProductsPage: failed to load products: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		log.Printf("ProductsPage: failed to load categories: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	data := h.baseData(w, r, map[string]interface{}{
		"Title":                 "Управление товарами",
		"Products":              products,
		"Categories":            categories,
		"SelectedCategoryID":    categoryID,
		"SelectedSubcategoryID": subcategoryID,
		"Search":                search,
		"ShowDeleted":           showDeleted,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/products", data)
}

func (h *AdminHandler) ProductAddPage(w http.ResponseWriter, r *http.Request) {
	h.renderProductForm(w, r, http.StatusOK, "/admin/products/add", nil, &ProductForm{IsActive: true}, nil)
}

func (h *AdminHandler) ProductAddPost(w http.ResponseWriter, r *http.Request) {
	form, input, formErrors := h.parseProductForm(r)
	if len(formErrors) > 0 {
		h.renderProductForm(w, r, http.StatusBadRequest, "/admin/products/add", nil, form, formErrors)
		return
	}

	if _, err := h.productSvc.Create(r.Context(), *input); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.renderProductForm(w, r, http.StatusBadRequest, "/admin/products/add", nil, form,
				map[string]string{"SubcategoryID": "Подкатегория не найдена"})
			return
		}
		log.Printf("ProductAddPost: failed to create product: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	h.flash.Add(w, r, "Товар добавлен")
	http.Redirect(w, r, "/admin/products", http.StatusFound)
}

func (h *AdminHandler) ProductEditPage(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	product, err := h.catalog.ProductByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("ProductEditPage: failed to load product %d: %v", id, err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	form := &ProductForm{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.String(),
		Color:       product.Color,
		IsNew:       product.IsNew,
		IsFeatured:  product.IsFeatured,
		IsActive:    product.IsActive,
	}
	if product.OldPrice.Valid {
		form.OldPrice = product.OldPrice.Decimal.String()
	}
	if product.SubcategoryID != nil {
		form.SubcategoryID = strconv.FormatUint(uint64(*product.SubcategoryID), 10)
	}
	for _, size := range product.Sizes() {
		form.Sizes = append(form.Sizes, strconv.Itoa(size))
	}

	h.renderProductForm(w, r, http.StatusOK, "/admin/products/edit/"+strconv.FormatUint(uint64(product.ID), 10), product, form, nil)
}

func (h *AdminHandler) ProductEditPost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	action := "/admin/products/edit/" + strconv.FormatUint(uint64(id), 10)
	form, input, formErrors := h.parseProductForm(r)
	if len(formErrors) > 0 {
		h.renderProductForm(w, r, http.StatusBadRequest, action, nil, form, formErrors)
		return
	}

	if _, err := h.productSvc.Update(r.Context(), id, *input); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("ProductEditPost: failed to update product %d: %v", id, err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	h.flash.Add(w, r, "Товар обновлён")
	http.Redirect(w, r, "/admin/products", http.StatusFound)
}

func (h *AdminHandler) ProductDelete(w http.ResponseWriter, r *http.Request) {
	h.productAction(w, r, "Товар скрыт", h.productSvc.SoftDelete)
}

func (h *AdminHandler) ProductRestore(w http.ResponseWriter, r *http.Request) {
	h.productAction(w, r, "Товар восстановлен", h.productSvc.Restore)
}

func (h *AdminHandler) ProductHardDelete(w http.ResponseWriter, r *http.Request) {
	h.productAction(w, r, "Товар удалён безвозвратно", h.productSvc.HardDelete)
}

func (h *AdminHandler) productAction(w http.ResponseWriter, r *http.Request, message string, action func(ctx context.Context, id uint) error) {
	id, err := parsePathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := action(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("productAction: failed for product %d: %v", id, err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	h.flash.Add(w, r, message)
	http.Redirect(w, r, "/admin/products", http.StatusFound)
}

func parsePathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	return uint(id), err
}

func parseUintParam(raw string) *uint {
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	id := uint(parsed)
	return &id
}

// parseProductForm reads the multipart submission into the typed form,
// validates it, and builds the service input. Returned errors are keyed
// by field for redisplay.
func (h *AdminHandler) parseProductForm(r *http.Request) (*ProductForm, *services.ProductInput, map[string]string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return &ProductForm{}, nil, map[string]string{"Form": "Не удалось обработать форму"}
	}

	form := &ProductForm{
		Name:          r.PostFormValue("name"),
		SubcategoryID: r.PostFormValue("subcategory_id"),
		Description:   r.PostFormValue("description"),
		Price:         r.PostFormValue("price"),
		OldPrice:      r.PostFormValue("old_price"),
		Sizes:         r.PostForm["sizes"],
		Color:         r.PostFormValue("color"),
		IsNew:         r.PostFormValue("is_new") != "",
		IsFeatured:    r.PostFormValue("is_featured") != "",
		IsActive:      r.PostFormValue("is_active") != "",
	}

	formErrors := map[string]string{}
	if err := h.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				formErrors[fieldErr.Field()] = "Недопустимое значение"
			}
		} else {
			formErrors["Form"] = "Недопустимые данные формы"
		}
		return form, nil, formErrors
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil || price.LessThanOrEqual(decimal.Zero) {
		formErrors["Price"] = "Цена должна быть положительным числом"
	}

	oldPrice := decimal.NullDecimal{}
	if form.OldPrice != "" {
		parsed, err := decimal.NewFromString(form.OldPrice)
		if err != nil {
			formErrors["OldPrice"] = "Старая цена должна быть числом"
		} else {
			oldPrice = decimal.NullDecimal{Decimal: parsed, Valid: true}
		}
	}

	subcategoryID, err := strconv.ParseUint(form.SubcategoryID, 10, 64)
	if err != nil {
		formErrors["SubcategoryID"] = "Выберите подкатегорию"
	}

	if len(formErrors) > 0 {
		return form, nil, formErrors
	}

	input := &services.ProductInput{
		Name:          form.Name,
		SubcategoryID: uint(subcategoryID),
		Description:   form.Description,
		Price:         price,
		OldPrice:      oldPrice,
		Sizes:         form.Sizes,
		Color:         form.Color,
		IsNew:         form.IsNew,
		IsFeatured:    form.IsFeatured,
		IsActive:      form.IsActive,
	}

	if file, header, err := r.FormFile("image"); err == nil && header.Filename != "" {
		input.Image = &services.ImageUpload{File: file, Filename: header.Filename}
	}

	return form, input, nil
}

func (h *AdminHandler) renderProductForm(w http.ResponseWriter, r *http.Request, status int, action string, product *models.Product, form *ProductForm, formErrors map[string]string) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		log.Printf("renderProductForm: failed to load categories: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if formErrors == nil {
		formErrors = map[string]string{}
	}

	data := h.baseData(w, r, map[string]interface{}{
		"Title":      "Товар",
		"Product":    product,
		"Form":       form,
		"FormAction": action,
		"IsEdit":     product != nil,
		"Categories": categories,
		"Errors":     formErrors,
	})
	_ = h.render.HTML(w, status, "admin/product_form", data)
}
