package request

import (
	"obra_gris/internal/domain/entities"
)

type SuggestPricesRequest struct {
	System   string        `json:"system" binding:"required" example:"steel_frame"`
	Inputs   InputsRequest `json:"inputs"`
	Location string        `json:"location" binding:"required" example:"Córdoba"`
}

func (r SuggestPricesRequest) ResolveSystem() entities.ConstructionSystem {
	return EstimateRequest{System: r.System}.ResolveSystem()
}

type SupplierSearchRequest struct {
	System   string `json:"system" binding:"required" example:"sip"`
	Location string `json:"location" binding:"required" example:"Rosario"`
}

func (r SupplierSearchRequest) ResolveSystem() entities.ConstructionSystem {
	return EstimateRequest{System: r.System}.ResolveSystem()
}

type ChatMessageRequest struct {
	Role string `json:"role" example:"user"`
	Text string `json:"text"`
}

type ChatRequest struct {
	EstimateRequest
	Message string               `json:"message" binding:"required"`
	History []ChatMessageRequest `json:"history"`
}

func (r ChatRequest) ResolveHistory() []entities.ChatMessage {
	out := make([]entities.ChatMessage, 0, len(r.History))
	for _, m := range r.History {
		out = append(out, entities.ChatMessage{Role: entities.ChatRole(m.Role), Text: m.Text})
	}
	return out
}
