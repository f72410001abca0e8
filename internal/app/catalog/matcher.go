package catalog

import (
	"strings"

	"github.com/solemate/solemate-backend/internal/app/model"
)

// EnrichedShoe is the display shape the frontend consumes: scalar fields
// passed through from the catalog record plus resolved lookups. Field names
// follow the wire contract the UI already reads.
type EnrichedShoe struct {
	ID                uint         `json:"id"`
	Name              string       `json:"name"`
	Price             float64      `json:"price"`
	Rating            float64      `json:"rating"`
	Reviews           int          `json:"reviews"`
	Image             string       `json:"image"`
	Tags              []string     `json:"tags"`
	Description       string       `json:"description"`
	MedicalConditions []string     `json:"medicalConditions"`
	Styles            []string     `json:"styles"`
	Gender            model.Gender `json:"gender"`
	ProductURL        string       `json:"product_url"`
}

// Match filters the catalog by the query and returns the surviving shoes
// enriched for display. Filters are conjunctive; catalog order is preserved;
// an over-constrained query yields an empty slice, never an error. The
// computation is pure: same snapshot and query, same result.
func (s *Snapshot) Match(q Query) []EnrichedShoe {
	survivors := s.shoes

	if q.hasCondition() {
		// An unknown slug leaves the filter a no-op rather than failing
		// the query.
		if condition, ok := s.ResolveCondition(q.Condition); ok {
			withCondition := s.shoesByCondition[condition.ID]
			filtered := make([]model.Shoe, 0, len(survivors))
			for _, shoe := range survivors {
				if _, ok := withCondition[shoe.ID]; ok {
					filtered = append(filtered, shoe)
				}
			}
			survivors = filtered
		}
	}

	if q.hasStyle() {
		if styleID, ok := s.styleIDByName[strings.ToLower(q.Style)]; ok {
			filtered := make([]model.Shoe, 0, len(survivors))
			for _, shoe := range survivors {
				if shoe.StyleID == styleID {
					filtered = append(filtered, shoe)
				}
			}
			survivors = filtered
		}
	}

	if q.hasGender() {
		filtered := make([]model.Shoe, 0, len(survivors))
		for _, shoe := range survivors {
			gender := strings.ToLower(string(shoe.Gender))
			if gender == strings.ToLower(q.Gender) || gender == string(model.GenderUnisex) {
				filtered = append(filtered, shoe)
			}
		}
		survivors = filtered
	}

	if q.PriceMin != nil {
		filtered := make([]model.Shoe, 0, len(survivors))
		for _, shoe := range survivors {
			if shoe.Price >= *q.PriceMin {
				filtered = append(filtered, shoe)
			}
		}
		survivors = filtered
	}

	if q.PriceMax != nil {
		filtered := make([]model.Shoe, 0, len(survivors))
		for _, shoe := range survivors {
			if shoe.Price <= *q.PriceMax {
				filtered = append(filtered, shoe)
			}
		}
		survivors = filtered
	}

	results := make([]EnrichedShoe, 0, len(survivors))
	for _, shoe := range survivors {
		results = append(results, s.enrich(shoe))
	}
	return results
}

// ShoeByID returns the enriched shoe with the given id.
func (s *Snapshot) ShoeByID(id uint) (EnrichedShoe, bool) {
	index, ok := s.shoeIndexByID[id]
	if !ok {
		return EnrichedShoe{}, false
	}
	return s.enrich(s.shoes[index]), true
}

func (s *Snapshot) enrich(shoe model.Shoe) EnrichedShoe {
	enriched := EnrichedShoe{
		ID:                shoe.ID,
		Name:              shoe.Name,
		Price:             shoe.Price,
		Rating:            shoe.Rating,
		Reviews:           syntheticReviewCount(shoe.ID),
		Image:             shoe.ImageURL,
		Tags:              []string{},
		Description:       shoe.Description,
		MedicalConditions: []string{},
		Styles:            []string{},
		Gender:            shoe.Gender,
		ProductURL:        shoe.ProductURL,
	}

	if url, ok := s.imageByShoe[shoe.ID]; ok {
		enriched.Image = url
	}

	if brand, ok := s.brandsByID[shoe.BrandID]; ok {
		enriched.Tags = append(enriched.Tags, brand.Name)
	}
	if style, ok := s.stylesByID[shoe.StyleID]; ok {
		enriched.Tags = append(enriched.Tags, style.Name)
		enriched.Styles = append(enriched.Styles, strings.ToLower(style.Name))
	}

	// Condition table order, so the slug list is stable across calls.
	shoeConditions := s.conditionsByShoe[shoe.ID]
	for _, condition := range s.conditions {
		if _, ok := shoeConditions[condition.ID]; ok {
			enriched.MedicalConditions = append(enriched.MedicalConditions, Slugify(condition.Name))
		}
	}

	return enriched
}

// syntheticReviewCount stands in for a review count the catalog does not
// carry. It is cosmetic, but derived from the shoe id instead of a random
// source so repeated queries return identical results.
func syntheticReviewCount(id uint) int {
	h := uint64(id) * 2654435761
	return 20 + int(h%100)
}
