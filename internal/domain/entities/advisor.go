package entities

// Citation is a web source returned by the supplier search.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// SupplierReport is the free-text supplier information for a system and
// location plus the sources it was grounded on.
type SupplierReport struct {
	System    ConstructionSystem `json:"system"`
	Location  string             `json:"location"`
	Text      string             `json:"text"`
	Citations []Citation         `json:"citations"`
}

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// EstimateSnapshot is the read-only view of the current estimate handed to
// the assistant together with a question.
type EstimateSnapshot struct {
	System    ConstructionSystem `json:"system"`
	Inputs    Inputs             `json:"inputs"`
	Materials []MaterialItem     `json:"materials"`
}
