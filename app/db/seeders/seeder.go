package seeders

import (
	"fmt"
	"log"
	"time"

	"github.com/karnaval-obuv/shop/app/models"
	"github.com/karnaval-obuv/shop/app/utils/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type categorySeed struct {
	name      string
	slug      string
	icon      string
	sortOrder int
}

type subcategorySeed struct {
	name         string
	slug         string
	categorySlug string
	sortOrder    int
}

type productSeed struct {
	name           string
	description    string
	price          int64
	oldPrice       int64
	sizes          string
	color          string
	subcategoryKey string
	isNew          bool
	isFeatured     bool
}

var categorySeeds = []categorySeed{
	{"Зимняя обувь", "zimnyaya", "❄️", 1},
	{"Демисезонная обувь", "demisezon", "🍂", 2},
	{"Летняя обувь", "letnyaya", "☀️", 3},
}

var subcategorySeeds = []subcategorySeed{
	{"Сапоги", "sapogi", "zimnyaya", 1},
	{"Ботинки", "botinki", "zimnyaya", 2},
	{"Кроссовки", "krossovki", "zimnyaya", 3},
	{"Угги", "uggi", "zimnyaya", 4},
	{"Сапоги", "sapogi", "demisezon", 1},
	{"Ботинки", "botinki", "demisezon", 2},
	{"Кроссовки", "krossovki", "demisezon", 3},
	{"Туфли", "tufli", "letnyaya", 1},
	{"Кроссовки и кеды", "krossovki", "letnyaya", 2},
	{"Лоферы", "lofery", "letnyaya", 3},
	{"Босоножки", "bosonozhki", "letnyaya", 4},
	{"Мокасины и балетки", "mokasiny", "letnyaya", 5},
}

var productSeeds = []productSeed{
	{
		name:           "Высокие зимние сапоги «Nordic»",
		description:    "Высокие сапоги из гладкой кожи с утеплённой подкладкой.",
		price:          11900, oldPrice: 13400,
		sizes: "[36,37,38,39,40]", color: "шоколадный",
		subcategoryKey: "zimnyaya/sapogi", isFeatured: true,
	},
	{
		name:           "Кожаные сапоги «Frost Queen»",
		description:    "Элегантные зимние сапоги на устойчивом каблуке с натуральным мехом внутри.",
		price:          12500,
		sizes: "[37,38,39]", color: "чёрный",
		subcategoryKey: "zimnyaya/sapogi", isNew: true,
	},
	{
		name:           "Ботинки на шнуровке «Alpina»",
		description:    "Утеплённые ботинки для города на рифлёной подошве.",
		price:          8900, oldPrice: 9900,
		sizes: "[36,37,38,39,40,41]", color: "чёрный",
		subcategoryKey: "zimnyaya/botinki",
	},
	{
		name:           "Демисезонные ботинки «ChelseaID»",
		description:    "Классические челси из мягкой кожи.",
		price:          7400,
		sizes: "[36,37,38,39]", color: "коричневый",
		subcategoryKey: "demisezon/botinki", isNew: true, isFeatured: true,
	},
	{
		name:           "Кожаные лоферы «Milano»",
		description:    "Лёгкие лоферы на лето из перфорированной кожи.",
		price:          6200,
		sizes: "[35,36,37,38]", color: "бежевый",
		subcategoryKey: "letnyaya/lofery",
	},
}

var promotionSeeds = []models.Promotion{
	{
		Title:        "Скидки на зимнюю коллекцию",
		Slug:         "skidki-na-zimnyuyu-kollektsiyu",
		Description:  "Выгода до 20% на сапоги и ботинки из зимней коллекции.",
		DiscountText: "до −20%",
		IsActive:     true,
	},
}

// Seed loads the bootstrap fixture: the category tree, demo products, and
// a starter promotion. An already-seeded database is left alone.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	if count > 0 {
		log.Println("Seed: categories already present, skipping")
		return nil
	}

	categories := map[string]*models.Category{}
	for _, seed := range categorySeeds {
		category := &models.Category{Name: seed.name, Slug: seed.slug, Icon: seed.icon, SortOrder: seed.sortOrder}
		if err := db.Create(category).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", seed.slug, err)
		}
		categories[seed.slug] = category
	}

	subcategories := map[string]*models.Subcategory{}
	for _, seed := range subcategorySeeds {
		subcategory := &models.Subcategory{
			Name:       seed.name,
			Slug:       seed.slug,
			SortOrder:  seed.sortOrder,
			CategoryID: categories[seed.categorySlug].ID,
		}
		if err := db.Create(subcategory).Error; err != nil {
			return fmt.Errorf("failed to seed subcategory %s/%s: %w", seed.categorySlug, seed.slug, err)
		}
		subcategories[seed.categorySlug+"/"+seed.slug] = subcategory
	}

	for _, seed := range productSeeds {
		subcategory := subcategories[seed.subcategoryKey]
		product := &models.Product{
			Name:          seed.name,
			Slug:          slug.Make(seed.name),
			Description:   seed.description,
			Price:         decimal.NewFromInt(seed.price),
			SizesJSON:     seed.sizes,
			Color:         seed.color,
			IsActive:      true,
			IsNew:         seed.isNew,
			IsFeatured:    seed.isFeatured,
			CreatedAt:     time.Now(),
			SubcategoryID: &subcategory.ID,
		}
		if seed.oldPrice > 0 {
			product.OldPrice = decimal.NullDecimal{Decimal: decimal.NewFromInt(seed.oldPrice), Valid: true}
		}
		if err := db.Create(product).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", seed.name, err)
		}
	}

	for i := range promotionSeeds {
		promotion := promotionSeeds[i]
		promotion.CreatedAt = time.Now()
		if err := db.Create(&promotion).Error; err != nil {
			return fmt.Errorf("failed to seed promotion %s: %w", promotion.Slug, err)
		}
	}

	return nil
}
