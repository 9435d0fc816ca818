package renderer

import (
	"html/template"

	"github.com/karnaval-obuv/shop/app/models"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

func New() *render.Render {
	rub := accounting.Accounting{Symbol: "₽", Precision: 0, Thousand: " ", Format: "%v %s"}

	return render.New(render.Options{
		Directory:  "app/templates",
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"formatPrice": func(d decimal.Decimal) string {
					return rub.FormatMoneyDecimal(d)
				},
				"formatOldPrice": func(d decimal.NullDecimal) string {
					if !d.Valid {
						return ""
					}
					return rub.FormatMoneyDecimal(d.Decimal)
				},
				"sizes": func(p models.Product) []int {
					return p.Sizes()
				},
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
			},
		},
	})
}
