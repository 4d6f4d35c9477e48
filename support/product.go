package support

import (
	"fmt"
	"math"
	"strings"
)

// ProductQuery asks about the catalogue. Both fields are optional.
type ProductQuery struct {
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
}

// brandAliases map words customers use to the brand text found in model names.
var brandAliases = []struct {
	word  string
	brand string
}{
	{"iphone", "iPhone"},
	{"apple", "iPhone"},
	{"samsung", "Samsung"},
	{"galaxy", "Samsung"},
	{"pixel", "Google"},
	{"google", "Google"},
}

// ProductQueryFromText picks the longest catalogue model named in the text,
// otherwise the first brand mentioned.
func (d *Desk) ProductQueryFromText(text string) ProductQuery {
	lower := strings.ToLower(text)
	for _, model := range d.kb.ModelsByLength() {
		if strings.Contains(lower, strings.ToLower(model)) {
			return ProductQuery{Model: model}
		}
	}
	return ProductQuery{Brand: brandInText(lower)}
}

func brandInText(lower string) string {
	for _, a := range brandAliases {
		if strings.Contains(lower, a.word) {
			return a.brand
		}
	}
	return ""
}

// ProductInfo returns a spec sheet for an exact model, the models of a
// brand, or the whole catalogue.
func (d *Desk) ProductInfo(q ProductQuery) string {
	if q.Model != "" {
		if p, ok := d.kb.Phone(q.Model); ok {
			var b strings.Builder
			fmt.Fprintf(&b, "%s Information:\n", p.Model)
			fmt.Fprintf(&b, "Price: %s\n", p.PriceLabel())
			fmt.Fprintf(&b, "Available Storage: %s\n", join(p.Storage))
			fmt.Fprintf(&b, "Colors: %s\n", join(p.Colors))
			b.WriteString("Specifications:\n")
			fmt.Fprintf(&b, "- Display: %s\n", p.Specs.Display)
			if p.Specs.Processor != "" {
				fmt.Fprintf(&b, "- Processor: %s\n", p.Specs.Processor)
			}
			fmt.Fprintf(&b, "- Camera: %s\n", p.Specs.Camera)
			fmt.Fprintf(&b, "- Battery: %s", p.Specs.Battery)
			return b.String()
		}
	}

	if q.Brand != "" {
		models := d.kb.PhonesByBrand(q.Brand)
		if len(models) == 0 {
			return fmt.Sprintf("Sorry, we don't have %s models in stock currently.", q.Brand)
		}
		return fmt.Sprintf("We have these %s models: %s. Ask about any specific model!", q.Brand, join(models))
	}

	return fmt.Sprintf("Available phones: %s", join(d.kb.ModelNames()))
}

// CheckAvailability reports stock for a model, optionally in one color.
func (d *Desk) CheckAvailability(model, color string) string {
	p, ok := d.kb.Phone(model)
	if !ok {
		return fmt.Sprintf("Model '%s' not found. Available phones: %s", model, join(d.kb.ModelNames()))
	}

	if color != "" && !p.HasColor(color) {
		return fmt.Sprintf("Color '%s' not available for %s. Available colors: %s", color, p.Model, join(p.Colors))
	}

	if p.Stock <= 0 {
		return fmt.Sprintf("The %s is currently out of stock.", p.Model)
	}

	if color != "" {
		return fmt.Sprintf("The %s in %s is in stock (%d units) at %s.", p.Model, color, p.Stock, p.PriceLabel())
	}
	return fmt.Sprintf("The %s is in stock (%d units) at %s. Colors: %s", p.Model, p.Stock, p.PriceLabel(), join(p.Colors))
}

// CompareModels lines up two catalogue models side by side.
func (d *Desk) CompareModels(first, second string) string {
	a, okA := d.kb.Phone(first)
	b, okB := d.kb.Phone(second)
	if !okA || !okB {
		return fmt.Sprintf("One or both models not found. Available phones: %s", join(d.kb.ModelNames()))
	}

	diff := math.Round(math.Abs(a.Price-b.Price)*100) / 100

	var s strings.Builder
	fmt.Fprintf(&s, "%s vs %s:\n", a.Model, b.Model)
	fmt.Fprintf(&s, "- Price: %s vs %s (difference %s)\n", a.PriceLabel(), b.PriceLabel(), formatDiff(diff))
	fmt.Fprintf(&s, "- Display: %s vs %s\n", a.Specs.Display, b.Specs.Display)
	fmt.Fprintf(&s, "- Processor: %s vs %s\n", a.Specs.Processor, b.Specs.Processor)
	fmt.Fprintf(&s, "- Camera: %s vs %s\n", a.Specs.Camera, b.Specs.Camera)
	fmt.Fprintf(&s, "- Battery: %s vs %s", a.Specs.Battery, b.Specs.Battery)
	return s.String()
}

func formatDiff(amount float64) string {
	if amount == math.Trunc(amount) {
		return fmt.Sprintf("$%.0f", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}
