package model

// ImportRow is one decoded spreadsheet row. Errors holds problems found while
// decoding cells (for example a non-numeric budget) before validation runs.
type ImportRow struct {
	Row     int
	Request BuyerRequest
	Errors  []string
}

type ImportRowResult struct {
	Row   int    `json:"row"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type ImportResult struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	Errors    []string          `json:"errors,omitempty"`
	ValidRows int               `json:"validRows"`
	TotalRows int               `json:"totalRows"`
	Results   []ImportRowResult `json:"results"`
}

// BuyerEventMessage is published to the broker after a buyer mutation.
type BuyerEventMessage struct {
	BuyerIDs  []string `json:"buyer_ids"`
	Action    string   `json:"action"`
	ChangedBy string   `json:"changed_by"`
	Changed   []string `json:"changed_fields,omitempty"`
	At        int64    `json:"at"`
}
