package models

// Envelope - минимальный и максимальный час работы за неделю (0..24)
type Envelope struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
