package response

import "obra_gris/internal/domain/entities"

type SuggestedPricesResponse struct {
	Location string             `json:"location"`
	Prices   map[string]float64 `json:"prices"`
}

type CitationResponse struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type SupplierReportResponse struct {
	System    string             `json:"system"`
	Location  string             `json:"location"`
	Text      string             `json:"text"`
	Citations []CitationResponse `json:"citations"`
}

func FromSupplierReport(r entities.SupplierReport) SupplierReportResponse {
	citations := make([]CitationResponse, 0, len(r.Citations))
	for _, c := range r.Citations {
		citations = append(citations, CitationResponse{Title: c.Title, URI: c.URI})
	}
	return SupplierReportResponse{
		System:    string(r.System),
		Location:  r.Location,
		Text:      r.Text,
		Citations: citations,
	}
}

type ChatResponse struct {
	Answer string `json:"answer"`
}
