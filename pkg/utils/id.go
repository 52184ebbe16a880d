package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	CampaignIDLength = 6
	batchIDLength    = 12
)

func GenerateID(length int) (string, error) {
	return gonanoid.Generate(characters, length)
}

// GenerateBatchID identifica um lote de ingestão de registros
func GenerateBatchID() (string, error) {
	id, err := GenerateID(batchIDLength)
	if err != nil {
		return "", err
	}
	return "batch_" + id, nil
}
