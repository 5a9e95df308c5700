package usecase

import (
	"product-reviews/internal/data/entity"
	"product-reviews/internal/dto/response"
)

// AggregateProductRows folds the flat join rows of the products-with-reviews
// query into nested ProductAggregate values.
//
// Input contract (supplied by the query, not re-derived here): rows are
// sorted by product id, then by review creation time descending within a
// product; every row for a product carries the same precomputed avg/count;
// a product without reviews contributes exactly one row with NULL review
// columns.
//
// Output: one aggregate per distinct product id, in first-appearance order.
// Review order within a product equals input order. A product with no
// reviews gets rating {0, 0} and an empty (non-nil) review list.
func AggregateProductRows(rows []entity.ProductReviewRow) []response.ProductAggregate {
	byProduct := make(map[int64]*response.ProductAggregate, len(rows))
	// Map iteration order is not deterministic, so first-seen order is
	// tracked separately.
	var order []int64

	for _, row := range rows {
		agg, seen := byProduct[row.ProductID]
		if !seen {
			agg = &response.ProductAggregate{
				ID:      row.ProductID,
				Name:    row.ProductName,
				Image:   row.ProductImage,
				Rating:  ratingSummary(row),
				Reviews: []response.ReviewView{},
			}
			byProduct[row.ProductID] = agg
			order = append(order, row.ProductID)
		}

		// NULL review id means the left join found no reviews; the
		// product still appears, with its review list empty.
		if row.ReviewID == nil {
			continue
		}

		agg.Reviews = append(agg.Reviews, reviewView(row))
	}

	result := make([]response.ProductAggregate, 0, len(order))
	for _, id := range order {
		result = append(result, *byProduct[id])
	}

	return result
}

// ratingSummary reads the precomputed average and count carried on the
// row, defaulting to zeros when the product has no reviews. The average
// is never recomputed from individual ratings here.
func ratingSummary(row entity.ProductReviewRow) response.RatingSummary {
	var summary response.RatingSummary
	if row.AvgRating != nil {
		summary.Avg = *row.AvgRating
	}
	if row.RatingCount != nil {
		summary.Count = *row.RatingCount
	}
	return summary
}

// reviewView builds one review entry from a row with a non-NULL review id
func reviewView(row entity.ProductReviewRow) response.ReviewView {
	view := response.ReviewView{
		ID:       *row.ReviewID,
		Comment:  row.ReviewText,
		ImageURL: row.ReviewImage,
	}
	if row.Rating != nil {
		view.Rating = *row.Rating
	}
	if row.ReviewCreatedAt != nil {
		view.CreatedAt = *row.ReviewCreatedAt
	}
	if row.UserID != nil {
		view.User.ID = *row.UserID
	}
	if row.UserName != nil {
		view.User.Name = *row.UserName
	}
	return view
}
