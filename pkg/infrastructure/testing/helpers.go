package testing

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/domain/services"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/memory"
)

// BuildWorkshopTestData builds a small seeded catalog: four parts and two products.
// Cart uses Wheel twice and Bolt once; Bookshelf has no parts.
func BuildWorkshopTestData() *memory.InventoryRepository {
	repo := memory.NewInventoryRepository()

	bolt := entities.NewInHousePart(1, "Bolt", decimal.RequireFromString("0.50"), 10, 0, 100, 3)
	elbow := entities.NewOutsourcedPart(2, "Elbow", decimal.RequireFromString("2.25"), 4, 1, 20, "Acme Plumbing")
	washer := entities.NewInHousePart(3, "Washer", decimal.RequireFromString("0.10"), 200, 50, 500, 1)
	wheel := entities.NewOutsourcedPart(4, "Wheel", decimal.RequireFromString("7.00"), 8, 2, 40, "Round Things Ltd")

	if err := repo.LoadParts([]*entities.Part{bolt, elbow, washer, wheel}); err != nil {
		panic(err)
	}

	cart := entities.NewProduct(1, "Cart", decimal.RequireFromString("29.99"), 3, 1, 10)
	cart.AddAssociatedPart(wheel)
	cart.AddAssociatedPart(wheel)
	cart.AddAssociatedPart(bolt)
	bookshelf := entities.NewProduct(2, "Bookshelf", decimal.RequireFromString("89.00"), 2, 0, 5)
	if err := repo.LoadProducts([]*entities.Product{cart, bookshelf}); err != nil {
		panic(err)
	}

	return repo
}

// FakePart creates a random valid part with the given id
func FakePart(id int) *entities.Part {
	stock := gofakeit.Number(1, 500)
	minStock := gofakeit.Number(0, stock)
	maxStock := gofakeit.Number(stock, stock+500)
	price := decimal.NewFromFloat(gofakeit.Price(0.01, 999)).Round(2)
	if !price.IsPositive() {
		price = decimal.RequireFromString("0.01")
	}

	if gofakeit.Bool() {
		return entities.NewInHousePart(id, gofakeit.ProductName(), price, stock, minStock, maxStock, gofakeit.Number(1, 99))
	}
	return entities.NewOutsourcedPart(id, gofakeit.ProductName(), price, stock, minStock, maxStock, gofakeit.Company())
}

// FakeProduct creates a random valid product priced above the cost of parts
func FakeProduct(id int, parts ...*entities.Part) *entities.Product {
	stock := gofakeit.Number(1, 100)
	cost := entities.PartsCost(parts)
	price := cost.Add(decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2))

	product := entities.NewProduct(id, gofakeit.ProductName(), price, stock, 0, stock+gofakeit.Number(0, 100))
	for _, p := range parts {
		product.AddAssociatedPart(p)
	}
	return product
}

// FakePartInput returns raw ADD form values that pass validation
func FakePartInput() services.PartInput {
	stock := gofakeit.Number(1, 500)
	return services.PartInput{
		Action:      entities.ActionAdd,
		Name:        gofakeit.ProductName(),
		Price:       strconv.FormatFloat(gofakeit.Price(1, 999), 'f', 2, 64),
		Stock:       strconv.Itoa(stock),
		Min:         strconv.Itoa(gofakeit.Number(0, stock)),
		Max:         strconv.Itoa(stock + gofakeit.Number(0, 500)),
		Source:      entities.InHouse,
		SourceValue: strconv.Itoa(gofakeit.Number(1, 99)),
	}
}

// FakeProductInput returns raw ADD form values that pass validation for the given parts
func FakeProductInput(parts ...*entities.Part) services.ProductInput {
	stock := gofakeit.Number(1, 100)
	price := entities.PartsCost(parts).Add(decimal.NewFromInt(int64(gofakeit.Number(1, 500))))
	return services.ProductInput{
		Action:          entities.ActionAdd,
		Name:            gofakeit.ProductName(),
		Price:           price.StringFixed(2),
		Stock:           strconv.Itoa(stock),
		Min:             "0",
		Max:             strconv.Itoa(stock + gofakeit.Number(0, 100)),
		AssociatedParts: parts,
	}
}
