package catalog

// Product is one catalog entry as persisted in the catalog file.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Thumbnail   string  `json:"thumbnail"`
	Code        string  `json:"code"`
	Stock       int     `json:"stock"`
}

// Input carries the fields of a product to create. Price and Stock are
// pointers so that an absent value is distinguishable from zero.
type Input struct {
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Description string   `json:"description" yaml:"description" validate:"required"`
	Price       *float64 `json:"price" yaml:"price" validate:"required,finite,gt=0"`
	Thumbnail   string   `json:"thumbnail" yaml:"thumbnail" validate:"required"`
	Code        string   `json:"code" yaml:"code" validate:"required"`
	Stock       *int     `json:"stock" yaml:"stock" validate:"required,gte=0"`
}

// Patch is a partial update. Nil fields are left untouched; there is no way
// to address the id.
type Patch struct {
	Title       *string  `json:"title,omitempty" validate:"omitnil,min=1"`
	Description *string  `json:"description,omitempty" validate:"omitnil,min=1"`
	Price       *float64 `json:"price,omitempty" validate:"omitnil,finite,gt=0"`
	Thumbnail   *string  `json:"thumbnail,omitempty" validate:"omitnil,min=1"`
	Code        *string  `json:"code,omitempty" validate:"omitnil,min=1"`
	Stock       *int     `json:"stock,omitempty" validate:"omitnil,gte=0"`
}

// Empty reports whether the patch sets no field at all.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil &&
		p.Thumbnail == nil && p.Code == nil && p.Stock == nil
}

func (in Input) product(id int) Product {
	return Product{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Price:       *in.Price,
		Thumbnail:   in.Thumbnail,
		Code:        in.Code,
		Stock:       *in.Stock,
	}
}

// apply returns a copy of p with the patch fields overlaid.
func (pt Patch) apply(p Product) Product {
	if pt.Title != nil {
		p.Title = *pt.Title
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.Price != nil {
		p.Price = *pt.Price
	}
	if pt.Thumbnail != nil {
		p.Thumbnail = *pt.Thumbnail
	}
	if pt.Code != nil {
		p.Code = *pt.Code
	}
	if pt.Stock != nil {
		p.Stock = *pt.Stock
	}
	return p
}
