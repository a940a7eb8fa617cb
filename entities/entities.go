package entities

import (
	"fmt"
	"strconv"
	"strings"
	"vrukshaAdmin/models"
)

// Upload is a file pulled out of a submitted form, on its way to the store
// api as a multipart part.
type Upload struct {
	FieldName string
	Filename  string
	Content   []byte
}

type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// CategoryForm is the category dialog draft. Parent holds the flattened
// parent id, empty for a top-level category. The icon travels separately as
// an Upload because a failed submit cannot repopulate a file input.
type CategoryForm struct {
	Name   string
	Parent string
}

func CategoryFormFromEntity(cat models.Category) CategoryForm {
	form := CategoryForm{Name: cat.Name}
	if cat.Parent != nil {
		form.Parent = cat.Parent.Id
	}
	return form
}

// ParentOptions filters the categories usable as a parent choice: top-level
// ones, never the category being edited itself.
func ParentOptions(cats []models.Category, selfId string) []models.Category {
	var opts []models.Category
	for _, c := range cats {
		if c.Parent == nil && c.Id != selfId {
			opts = append(opts, c)
		}
	}
	return opts
}

// VariationRow keeps the variation fields as submitted, so a rejected form
// renders back exactly what was typed.
type VariationRow struct {
	Weight string
	Price  string
	Pcs    string
}

func (v VariationRow) Empty() bool {
	return strings.TrimSpace(v.Weight) == "" &&
		strings.TrimSpace(v.Price) == "" &&
		strings.TrimSpace(v.Pcs) == ""
}

func (v VariationRow) Coerce() (models.Variation, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(v.Price), 64)
	if err != nil {
		return models.Variation{}, fmt.Errorf("price %q is not a number", v.Price)
	}
	pcs, err := strconv.Atoi(strings.TrimSpace(v.Pcs))
	if err != nil {
		return models.Variation{}, fmt.Errorf("pcs %q is not a number", v.Pcs)
	}
	return models.Variation{Weight: strings.TrimSpace(v.Weight), Price: price, Pcs: pcs}, nil
}

type ProductForm struct {
	Name        string
	Description string
	Category    string
	Variations  []VariationRow
}

func ProductFormFromEntity(prod models.Product) ProductForm {
	form := ProductForm{
		Name:        prod.Name,
		Description: prod.Description,
	}
	if prod.Category != nil {
		form.Category = prod.Category.Id
	}
	for _, v := range prod.Variation {
		form.Variations = append(form.Variations, VariationRow{
			Weight: v.Weight,
			Price:  strconv.FormatFloat(v.Price, 'f', -1, 64),
			Pcs:    strconv.Itoa(v.Pcs),
		})
	}
	if len(form.Variations) == 0 {
		form.Variations = []VariationRow{{}}
	}
	return form
}

// Coerce drops fully empty rows and converts the rest, enforcing the
// at-least-one-variation rule.
func (p ProductForm) Coerce() ([]models.Variation, error) {
	var vars []models.Variation
	for _, row := range p.Variations {
		if row.Empty() {
			continue
		}
		v, err := row.Coerce()
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	if len(vars) == 0 {
		return nil, fmt.Errorf("at least one variation is required")
	}
	return vars, nil
}
