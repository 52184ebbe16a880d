package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// CampaignID identifica uma campanha. O upstream pode enviar ids numéricos ou
// textuais; ambos são normalizados para string.
type CampaignID string

func (id CampaignID) String() string {
	return string(id)
}

// UnmarshalJSON aceita tanto `1` quanto `"1"`
func (id *CampaignID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*id = ""
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return err
	}

	value, err := cast.ToStringE(raw)
	if err != nil {
		return fmt.Errorf("campaign id: %w", err)
	}

	*id = CampaignID(strings.TrimSpace(value))
	return nil
}

// ParseCampaignIDs converte uma lista separada por vírgula ("1, 2,3") em ids
func ParseCampaignIDs(csv string) []CampaignID {
	ids := make([]CampaignID, 0)
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ids = append(ids, CampaignID(part))
	}
	return ids
}

type Campaign struct {
	ID   CampaignID `json:"id"`
	Name string     `json:"name"`
}

// CampaignNames resolve o nome de exibição de cada campanha
type CampaignNames map[CampaignID]string

// NamesOf indexa as campanhas pelo id
func NamesOf(campaigns []Campaign) CampaignNames {
	names := make(CampaignNames, len(campaigns))
	for _, campaign := range campaigns {
		names[campaign.ID] = campaign.Name
	}
	return names
}

// Label retorna o nome da campanha ou "Campaign {id}" quando o nome não é conhecido
func (n CampaignNames) Label(id CampaignID) string {
	if name, ok := n[id]; ok && strings.TrimSpace(name) != "" {
		return name
	}
	return fmt.Sprintf("Campaign %s", id)
}
