package seed

import (
	"fmt"

	"github.com/dev-dotsquares/ecommerce/internal/catalog"

	"github.com/brianvoe/gofakeit/v7"
)

// Reviews generates a deterministic review set for every product. The fixed
// seed keeps the data stable across restarts so review counts and ratings do
// not drift.
func Reviews(products []catalog.Product) []catalog.Review {
	faker := gofakeit.New(42)

	var reviews []catalog.Review
	for _, p := range products {
		n := 2 + faker.IntRange(0, 2)
		for i := 0; i < n; i++ {
			reviews = append(reviews, catalog.Review{
				ID:        fmt.Sprintf("review-%s-%d", p.ID, i+1),
				ProductID: p.ID,
				Author:    faker.Name(),
				Rating:    float64(faker.IntRange(3, 5)),
				Title:     faker.Sentence(4),
				Comment:   faker.Sentence(12),
				Date:      faker.Date().Format("2006-01-02"),
			})
		}
	}
	return reviews
}
