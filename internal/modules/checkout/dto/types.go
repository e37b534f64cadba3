package dto

type PreferencesOutput struct {
	Shipping string
	Payment  string
}

type SummaryOutput struct {
	Shipping  string
	Payment   string
	ItemCount int
	Subtotal  float64
	Surcharge float64
	Total     float64
}
