package main

import (
	"github.com/spf13/cobra"

	"ProductCatalog/internal/catalog"
)

// productFlags binds the product field flags shared by add and update.
// Only flags given on the command line are forwarded to the store.
type productFlags struct {
	title       string
	description string
	price       float64
	thumbnail   string
	code        string
	stock       int
}

func (f *productFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.title, "title", "", "product title")
	fs.StringVar(&f.description, "description", "", "product description")
	fs.Float64Var(&f.price, "price", 0, "unit price, must be positive")
	fs.StringVar(&f.thumbnail, "thumbnail", "", "thumbnail path or URL")
	fs.StringVar(&f.code, "code", "", "unique product code")
	fs.IntVar(&f.stock, "stock", 0, "units in stock")
}

func (f *productFlags) input(cmd *cobra.Command) catalog.Input {
	in := catalog.Input{
		Title:       f.title,
		Description: f.description,
		Thumbnail:   f.thumbnail,
		Code:        f.code,
	}
	if cmd.Flags().Changed("price") {
		price := f.price
		in.Price = &price
	}
	if cmd.Flags().Changed("stock") {
		stock := f.stock
		in.Stock = &stock
	}
	return in
}

func (f *productFlags) patch(cmd *cobra.Command) catalog.Patch {
	var p catalog.Patch
	changed := cmd.Flags().Changed

	if changed("title") {
		p.Title = &f.title
	}
	if changed("description") {
		p.Description = &f.description
	}
	if changed("price") {
		p.Price = &f.price
	}
	if changed("thumbnail") {
		p.Thumbnail = &f.thumbnail
	}
	if changed("code") {
		p.Code = &f.code
	}
	if changed("stock") {
		p.Stock = &f.stock
	}
	return p
}
