package admin

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/karnaval-obuv/shop/app/models"
	"github.com/karnaval-obuv/shop/app/repositories"
	"github.com/karnaval-obuv/shop/app/services"
)

const promotionDateLayout = "2006-01-02"

type PromotionForm struct {
	Title        string `validate:"required,min=2,max=255"`
	Description  string
	DiscountText string
	StartDate    string
	EndDate      string
	IsActive     bool
}

func (h *AdminHandler) PromotionsPage(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.catalog.AllPromotions(r.Context())
	if err != nil {
		log.Printf("PromotionsPage: failed to load promotions: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	data := h.baseData(w, r, map[string]interface{}{
		"Title":      "Управление акциями",
		"Promotions": promotions,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/promotions", data)
}

func (h *AdminHandler) PromotionAddPage(w http.ResponseWriter, r *http.Request) {
	h.renderPromotionForm(w, r, http.StatusOK, "/admin/promotions/add", nil, &PromotionForm{IsActive: true}, nil)
}

func (h *AdminHandler) PromotionAddPost(w http.ResponseWriter, r *http.Request) {
	form, input, formErrors := h.parsePromotionForm(r)
	if len(formErrors) > 0 {
		h.renderPromotionForm(w, r, http.StatusBadRequest, "/admin/promotions/add", nil, form, formErrors)
		return
	}

	if _, err := h.promotionSvc.Create(r.Context(), *input); err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			h.renderPromotionForm(w, r, http.StatusBadRequest, "/admin/promotions/add", nil, form,
				map[string]string{"Dates": "Дата должна быть в формате ГГГГ-ММ-ДД"})
			return
		}
		log.Printf("PromotionAddPost: failed to create promotion: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	h.flash.Add(w, r, "Акция добавлена")
	http.Redirect(w, r, "/admin/promotions", http.StatusFound)
}

func (h *AdminHandler) PromotionEditPage(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	promotion, err := h.catalog.PromotionByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("PromotionEditPage: failed to load promotion %d: %v", id, err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	form := &PromotionForm{
		Title:        promotion.Title,
		Description:  promotion.Description,
		DiscountText: promotion.DiscountText,
		IsActive:     promotion.IsActive,
	}
	if promotion.StartDate != nil {
		form.StartDate = promotion.StartDate.Format(promotionDateLayout)
	}
	if promotion.EndDate != nil {
		form.EndDate = promotion.EndDate.Format(promotionDateLayout)
	}

	action := "/admin/promotions/edit/" + strconv.FormatUint(uint64(promotion.ID), 10)
	h.renderPromotionForm(w, r, http.StatusOK, action, promotion, form, nil)
}

func (h *AdminHandler) PromotionEditPost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	action := "/admin/promotions/edit/" + strconv.FormatUint(uint64(id), 10)
	form, input, formErrors := h.parsePromotionForm(r)
	if len(formErrors) > 0 {
		h.renderPromotionForm(w, r, http.StatusBadRequest, action, nil, form, formErrors)
		return
	}

	if _, err := h.promotionSvc.Update(r.Context(), id, *input); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, services.ErrInvalidDate):
			h.renderPromotionForm(w, r, http.StatusBadRequest, action, nil, form,
				map[string]string{"Dates": "Дата должна быть в формате ГГГГ-ММ-ДД"})
		default:
			log.Printf("PromotionEditPost: failed to update promotion %d: %v", id, err)
			http.Error(w, "server error", http.StatusInternalServerError)
		}
		return
	}

	h.flash.Add(w, r, "Акция обновлена")
	http.Redirect(w, r, "/admin/promotions", http.StatusFound)
}

func (h *AdminHandler) PromotionDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.promotionSvc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("PromotionDelete: failed to delete promotion %d: %v", id, err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	h.flash.Add(w, r, "Акция удалена")
	http.Redirect(w, r, "/admin/promotions", http.StatusFound)
}

func (h *AdminHandler) parsePromotionForm(r *http.Request) (*PromotionForm, *services.PromotionInput, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return &PromotionForm{}, nil, map[string]string{"Form": "Не удалось обработать форму"}
	}

	form := &PromotionForm{
		Title:        r.PostFormValue("title"),
		Description:  r.PostFormValue("description"),
		DiscountText: r.PostFormValue("discount_text"),
		StartDate:    r.PostFormValue("start_date"),
		EndDate:      r.PostFormValue("end_date"),
		IsActive:     r.PostFormValue("is_active") != "",
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

	return form, &services.PromotionInput{
		Title:        form.Title,
		Description:  form.Description,
		DiscountText: form.DiscountText,
		StartDate:    form.StartDate,
		EndDate:      form.EndDate,
		IsActive:     form.IsActive,
	}, nil
}

func (h *AdminHandler) renderPromotionForm(w http.ResponseWriter, r *http.Request, status int, action string, promotion *models.Promotion, form *PromotionForm, formErrors map[string]string) {
	if formErrors == nil {
		formErrors = map[string]string{}
	}
	data := h.baseData(w, r, map[string]interface{}{
		"Title":      "Акция",
		"Promotion":  promotion,
		"Form":       form,
		"FormAction": action,
		"IsEdit":     promotion != nil,
		"Errors":     formErrors,
	})
	_ = h.render.HTML(w, status, "admin/promotion_form", data)
}
