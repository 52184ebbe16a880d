package domain

// RejectedRecord identifica um registro descartado na ingestão pela posição no lote
type RejectedRecord struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type IngestResult struct {
	BatchID  string           `json:"batch_id"`
	Received int              `json:"received"`
	Accepted int              `json:"accepted"`
	Rejected []RejectedRecord `json:"rejected"`
}
