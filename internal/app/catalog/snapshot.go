package catalog

import (
	"fmt"
	"strings"

	"github.com/solemate/solemate-backend/internal/app/model"
)

// Snapshot is an immutable view of the catalog: the shoe collection in
// catalog order plus the lookup tables, indexed for matching. Build one with
// NewSnapshot and never mutate it; concurrent readers share it freely.
type Snapshot struct {
	shoes      []model.Shoe
	styles     []model.Style
	brands     []model.Brand
	conditions []model.Condition

	stylesByID       map[uint]model.Style
	brandsByID       map[uint]model.Brand
	styleIDByName    map[string]uint // lowercased style name
	conditionBySlug  map[string]model.Condition
	shoesByCondition map[uint]map[uint]struct{} // condition id -> shoe id set
	conditionsByShoe map[uint]map[uint]struct{} // shoe id -> condition id set
	imageByShoe      map[uint]string
	shoeIndexByID    map[uint]int
}

// NewSnapshot validates the raw collections and builds the indexed snapshot.
// The shoe slice order is preserved as catalog order. Referential integrity
// failures and out-of-range scalar values are load errors, not something to
// paper over at query time.
func NewSnapshot(
	shoes []model.Shoe,
	styles []model.Style,
	brands []model.Brand,
	conditions []model.Condition,
	shoeConditions []model.ShoeCondition,
	images []model.ShoeImage,
) (*Snapshot, error) {
	s := &Snapshot{
		shoes:            shoes,
		styles:           styles,
		brands:           brands,
		conditions:       conditions,
		stylesByID:       make(map[uint]model.Style, len(styles)),
		brandsByID:       make(map[uint]model.Brand, len(brands)),
		styleIDByName:    make(map[string]uint, len(styles)),
		conditionBySlug:  make(map[string]model.Condition, len(conditions)),
		shoesByCondition: make(map[uint]map[uint]struct{}),
		conditionsByShoe: make(map[uint]map[uint]struct{}),
		imageByShoe:      make(map[uint]string, len(images)),
		shoeIndexByID:    make(map[uint]int, len(shoes)),
	}

	for _, style := range styles {
		s.stylesByID[style.ID] = style
		s.styleIDByName[strings.ToLower(style.Name)] = style.ID
	}
	for _, brand := range brands {
		s.brandsByID[brand.ID] = brand
	}

	conditionIDs := make(map[uint]struct{}, len(conditions))
	for _, condition := range conditions {
		slug := Slugify(condition.Name)
		if existing, ok := s.conditionBySlug[slug]; ok && existing.ID != condition.ID {
			return nil, fmt.Errorf("conditions %q and %q derive the same slug %q", existing.Name, condition.Name, slug)
		}
		s.conditionBySlug[slug] = condition
		conditionIDs[condition.ID] = struct{}{}
	}

	for i, shoe := range shoes {
		if _, dup := s.shoeIndexByID[shoe.ID]; dup {
			return nil, fmt.Errorf("duplicate shoe id %d", shoe.ID)
		}
		if shoe.Price < 0 {
			return nil, fmt.Errorf("shoe %d has negative price %v", shoe.ID, shoe.Price)
		}
		if shoe.Rating < 0 || shoe.Rating > 5 {
			return nil, fmt.Errorf("shoe %d has rating %v outside 0-5", shoe.ID, shoe.Rating)
		}
		if !validGender(shoe.Gender) {
			return nil, fmt.Errorf("shoe %d has unknown gender %q", shoe.ID, shoe.Gender)
		}
		s.shoeIndexByID[shoe.ID] = i
	}

	for _, sc := range shoeConditions {
		if _, ok := s.shoeIndexByID[sc.ShoeID]; !ok {
			return nil, fmt.Errorf("shoe condition references unknown shoe %d", sc.ShoeID)
		}
		if _, ok := conditionIDs[sc.ConditionID]; !ok {
			return nil, fmt.Errorf("shoe condition references unknown condition %d", sc.ConditionID)
		}
		if s.shoesByCondition[sc.ConditionID] == nil {
			s.shoesByCondition[sc.ConditionID] = make(map[uint]struct{})
		}
		s.shoesByCondition[sc.ConditionID][sc.ShoeID] = struct{}{}
		if s.conditionsByShoe[sc.ShoeID] == nil {
			s.conditionsByShoe[sc.ShoeID] = make(map[uint]struct{})
		}
		s.conditionsByShoe[sc.ShoeID][sc.ConditionID] = struct{}{}
	}

	for _, image := range images {
		if _, ok := s.shoeIndexByID[image.ShoeID]; !ok {
			return nil, fmt.Errorf("shoe image references unknown shoe %d", image.ShoeID)
		}
		// first row wins when the table holds more than one
		if _, ok := s.imageByShoe[image.ShoeID]; !ok {
			s.imageByShoe[image.ShoeID] = image.URL
		}
	}

	return s, nil
}

func validGender(g model.Gender) bool {
	switch model.Gender(strings.ToLower(string(g))) {
	case model.GenderMen, model.GenderWomen, model.GenderUnisex:
		return true
	}
	return false
}

// Size returns the number of shoes in the catalog.
func (s *Snapshot) Size() int {
	return len(s.shoes)
}

// Conditions returns the condition table in load order.
func (s *Snapshot) Conditions() []model.Condition {
	return s.conditions
}

// Styles returns the style table in load order.
func (s *Snapshot) Styles() []model.Style {
	return s.styles
}

// ResolveCondition maps a slug back to its Condition. The lookup and
// Slugify agree in both directions.
func (s *Snapshot) ResolveCondition(slug string) (model.Condition, bool) {
	condition, ok := s.conditionBySlug[strings.ToLower(slug)]
	return condition, ok
}
