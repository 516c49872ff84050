package entities

// EstimateExport is the shareable plain-text rendition of a calculation.
type EstimateExport struct {
	Text        string `json:"text"`
	WhatsAppURL string `json:"whatsapp_url"`
}
