package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"obra_gris/internal/domain/entities"
	"obra_gris/internal/usecase/interfaces"
	"strings"
)

var (
	ErrInvalidLocation      = errors.New("invalid location")
	ErrEmptyMessage         = errors.New("empty message")
	ErrAdvisorNotConfigured = errors.New("advisor not configured")
)

// maxChatHistory bounds the conversation sent to the assistant.
const maxChatHistory = 20

// IAdvisorUseCase wraps the AI-backed collaborators: price oracle, supplier
// finder and assistant. None of them produces materials; they only read the
// estimator output or feed the override mapping of the next calculation.

type IAdvisorUseCase interface {
	SuggestPrices(ctx context.Context, system entities.ConstructionSystem, inputs entities.Inputs, location string) (map[string]float64, error)
	FindSuppliers(ctx context.Context, system entities.ConstructionSystem, location string) (entities.SupplierReport, error)
	Chat(ctx context.Context, message string, history []entities.ChatMessage, system entities.ConstructionSystem, inputs entities.Inputs, overrides entities.PriceOverrides) (string, error)
}

type AdvisorUseCase struct {
	estimates IEstimateUseCase
	oracle    interfaces.IPriceOracle
	finder    interfaces.ISupplierFinder
	assistant interfaces.IAssistant
}

var _ IAdvisorUseCase = (*AdvisorUseCase)(nil)

// NewAdvisorUseCase builds material lists through estimates, so the
// collaborators see the same prices the estimate endpoint returns.
func NewAdvisorUseCase(estimates IEstimateUseCase, oracle interfaces.IPriceOracle, finder interfaces.ISupplierFinder, assistant interfaces.IAssistant) *AdvisorUseCase {
	return &AdvisorUseCase{estimates: estimates, oracle: oracle, finder: finder, assistant: assistant}
}

// SuggestPrices asks the oracle for prices of the materials the given
// system needs. Ids the estimate does not contain and invalid prices are
// dropped, so the result can be merged into the overrides as is.
func (u *AdvisorUseCase) SuggestPrices(ctx context.Context, system entities.ConstructionSystem, inputs entities.Inputs, location string) (map[string]float64, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrInvalidLocation
	}
	res, err := u.estimates.Calculate(ctx, system, inputs, nil)
	if err != nil {
		return nil, err
	}
	items := res.Items
	if u.oracle == nil {
		log.Printf("[advisor][usecase] price oracle not configured")
		return nil, ErrAdvisorNotConfigured
	}

	log.Printf("[advisor][usecase] suggest-prices start system=%s location=%q materials=%d", system, location, len(items))
	suggested, err := u.oracle.SuggestPrices(ctx, items, location)
	if err != nil {
		log.Printf("[advisor][usecase] suggest-prices failed system=%s err=%v", system, err)
		return nil, err
	}

	known := make(map[string]bool, len(items))
	for _, it := range items {
		known[it.ID] = true
	}
	out := make(map[string]float64, len(suggested))
	for id, p := range suggested {
		if !known[id] || p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			log.Printf("[advisor][usecase] dropping suggestion id=%s price=%v", id, p)
			continue
		}
		out[id] = p
	}
	log.Printf("[advisor][usecase] suggest-prices success system=%s accepted=%d received=%d", system, len(out), len(suggested))
	return out, nil
}

func (u *AdvisorUseCase) FindSuppliers(ctx context.Context, system entities.ConstructionSystem, location string) (entities.SupplierReport, error) {
	location = strings.TrimSpace(location)
	if !system.Valid() {
		return entities.SupplierReport{}, ErrInvalidSystem
	}
	if location == "" {
		return entities.SupplierReport{}, ErrInvalidLocation
	}
	if u.finder == nil {
		log.Printf("[advisor][usecase] supplier finder not configured")
		return entities.SupplierReport{}, ErrAdvisorNotConfigured
	}

	report, err := u.finder.FindSuppliers(ctx, system, location)
	if err != nil {
		log.Printf("[advisor][usecase] find-suppliers failed system=%s err=%v", system, err)
		return entities.SupplierReport{}, err
	}
	report.System = system
	report.Location = location
	report.Citations = DedupeCitations(report.Citations)
	log.Printf("[advisor][usecase] find-suppliers success system=%s citations=%d", system, len(report.Citations))
	return report, nil
}

func (u *AdvisorUseCase) Chat(ctx context.Context, message string, history []entities.ChatMessage, system entities.ConstructionSystem, inputs entities.Inputs, overrides entities.PriceOverrides) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}
	res, err := u.estimates.Calculate(ctx, system, inputs, overrides)
	if err != nil {
		return "", err
	}
	if u.assistant == nil {
		log.Printf("[advisor][usecase] assistant not configured")
		return "", ErrAdvisorNotConfigured
	}

	snapshot := entities.EstimateSnapshot{System: system, Inputs: inputs, Materials: res.Items}
	answer, err := u.assistant.Ask(ctx, message, trimHistory(history), snapshot)
	if err != nil {
		log.Printf("[advisor][usecase] chat failed err=%v", err)
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// DedupeCitations drops citations with an empty or repeated URI, keeping
// the first occurrence and the original order.
func DedupeCitations(in []entities.Citation) []entities.Citation {
	seen := make(map[string]bool, len(in))
	out := make([]entities.Citation, 0, len(in))
	for _, c := range in {
		uri := strings.TrimSpace(c.URI)
		if uri == "" || seen[uri] {
			continue
		}
		seen[uri] = true
		title := strings.TrimSpace(c.Title)
		if title == "" {
			title = uri
		}
		out = append(out, entities.Citation{Title: title, URI: uri})
	}
	return out
}

func trimHistory(history []entities.ChatMessage) []entities.ChatMessage {
	out := make([]entities.ChatMessage, 0, len(history))
	for _, m := range history {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		if m.Role != entities.ChatRoleAssistant {
			m.Role = entities.ChatRoleUser
		}
		out = append(out, m)
	}
	if len(out) > maxChatHistory {
		out = out[len(out)-maxChatHistory:]
	}
	return out
}
