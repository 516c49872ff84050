package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"obra_gris/internal/domain/entities"
	"obra_gris/internal/usecase/interfaces"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrEmptyModelResponse = errors.New("empty model response")

const defaultModel = "gemini-2.5-flash"

const assistantInstruction = "Sos un asesor de obra para construcción en seco y tradicional en Argentina. " +
	"Respondé en español rioplatense, de forma breve y concreta, usando los datos del presupuesto que se te pasan. " +
	"No inventes cantidades distintas a las del presupuesto."

// generator is the subset of *genai.Models used by the advisor.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAdvisor backs the price oracle, supplier finder and assistant with a
// single Gemini model.
type GeminiAdvisor struct {
	models   generator
	model    string
	mockMode bool
}

var (
	_ interfaces.IPriceOracle    = (*GeminiAdvisor)(nil)
	_ interfaces.ISupplierFinder = (*GeminiAdvisor)(nil)
	_ interfaces.IAssistant      = (*GeminiAdvisor)(nil)
)

func NewGeminiAdvisor(ctx context.Context, apiKey string) (*GeminiAdvisor, error) {
	model := getenvDefault("GEMINI_MODEL", defaultModel)

	if isAdvisorMockEnabled() {
		log.Printf("[advisor][gemini] mock mode enabled")
		return &GeminiAdvisor{mockMode: true, model: model}, nil
	}

	if apiKey == "" {
		log.Printf("[advisor][gemini] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[advisor][gemini] failed creating client err=%v", err)
		return nil, err
	}
	log.Printf("[advisor][gemini] client initialized model=%s", model)

	return &GeminiAdvisor{models: client.Models, model: model}, nil
}

type suggestedPrice struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

var priceSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":    {Type: genai.TypeString},
			"price": {Type: genai.TypeNumber},
		},
		Required: []string{"id", "price"},
	},
}

func (a *GeminiAdvisor) SuggestPrices(ctx context.Context, materials []entities.MaterialItem, location string) (map[string]float64, error) {
	if a.mockMode {
		out := make(map[string]float64, len(materials))
		for _, m := range materials {
			out[m.ID] = m.UnitPrice
		}
		return out, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Estimá el precio unitario actual en pesos argentinos (ARS) en %s de cada material. ", location)
	b.WriteString("Devolvé un elemento por material con su id exacto.\n")
	for _, m := range materials {
		fmt.Fprintf(&b, "- id=%s nombre=%q unidad=%s\n", m.ID, m.Name, m.Unit)
	}

	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(b.String()), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   priceSchema,
	})
	if err != nil {
		log.Printf("[advisor][gemini] suggest-prices failed err=%v", err)
		return nil, err
	}
	return parseSuggestedPrices(resp.Text())
}

func parseSuggestedPrices(raw string) (map[string]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyModelResponse
	}
	var list []suggestedPrice
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(list))
	for _, p := range list {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			continue
		}
		out[id] = p.Price
	}
	return out, nil
}

func (a *GeminiAdvisor) FindSuppliers(ctx context.Context, system entities.ConstructionSystem, location string) (entities.SupplierReport, error) {
	if a.mockMode {
		return entities.SupplierReport{
			Text: fmt.Sprintf("Proveedores de %s en %s (modo de prueba).", system.Label(), location),
		}, nil
	}

	prompt := fmt.Sprintf(
		"Buscá corralones y proveedores de materiales para %s cerca de %s, Argentina. "+
			"Listá nombre, dirección o zona y contacto de cada uno.",
		system.Label(), location,
	)
	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		log.Printf("[advisor][gemini] find-suppliers failed err=%v", err)
		return entities.SupplierReport{}, err
	}

	return entities.SupplierReport{
		Text:      strings.TrimSpace(resp.Text()),
		Citations: groundingCitations(resp),
	}, nil
}

func groundingCitations(resp *genai.GenerateContentResponse) []entities.Citation {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var out []entities.Citation
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		out = append(out, entities.Citation{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return out
}

func (a *GeminiAdvisor) Ask(ctx context.Context, message string, history []entities.ChatMessage, snapshot entities.EstimateSnapshot) (string, error) {
	if a.mockMode {
		return fmt.Sprintf("Tu presupuesto de %s tiene %d materiales.", snapshot.System.Label(), len(snapshot.Materials)), nil
	}

	resp, err := a.models.GenerateContent(ctx, a.model, chatContents(message, history), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(assistantInstruction+"\n\n"+snapshotContext(snapshot), genai.RoleUser),
	})
	if err != nil {
		log.Printf("[advisor][gemini] chat failed err=%v", err)
		return "", err
	}
	answer := resp.Text()
	if strings.TrimSpace(answer) == "" {
		return "", ErrEmptyModelResponse
	}
	return answer, nil
}

func chatContents(message string, history []entities.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Role == entities.ChatRoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	return append(contents, genai.NewContentFromText(message, genai.RoleUser))
}

func snapshotContext(s entities.EstimateSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sistema: %s\n", s.System.Label())
	fmt.Fprintf(&b, "Platea: %.2f m², altura de muro: %.2f m, perímetro: %.2f m, ventanas: %.2f m², puertas: %d\n",
		s.Inputs.SlabArea, s.Inputs.WallHeight, s.Inputs.WallPerimeter, s.Inputs.WindowArea, s.Inputs.DoorCount)
	b.WriteString("Materiales:\n")
	for _, m := range s.Materials {
		fmt.Fprintf(&b, "- %s: %.2f %s a $%.2f\n", m.Name, m.Quantity, m.Unit, m.UnitPrice)
	}
	return b.String()
}

func isAdvisorMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ADVISOR_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
