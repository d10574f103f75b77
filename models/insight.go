package models

import "time"

// CareInsight is the structured output of the LLM-based interpretation
// service. The engine only consumes this typed form; no natural-language
// processing happens inside the core.
type CareInsight struct {
	HorseID         string    `json:"horseId"`
	Summary         string    `json:"summary"`
	Recommendations []string  `json:"recommendations"`
	RiskFlags       []string  `json:"riskFlags,omitempty"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

// InsightContext is the rolling conversation/history context kept per owner
// for the care-insight service.
type InsightContext struct {
	OwnerID   string    `json:"ownerId"`
	Entries   []string  `json:"entries"`
	UpdatedAt time.Time `json:"updatedAt"`
}
