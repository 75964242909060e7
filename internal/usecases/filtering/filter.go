package filtering

import (
	"strings"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Apply reduz a coleção de campanhas aplicando os estágios de filtro na ordem
// fixa: tipo único, conjunto de tipos, conjunto de status, busca textual e
// pisos numéricos. Cada estágio estreita a saída do anterior; a ordem só
// importa para desempenho, não para o resultado.
func Apply(campaigns []domain.Campaign, state domain.FilterState) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(campaigns))

	query := strings.ToLower(strings.TrimSpace(state.SearchQuery))

	for _, c := range campaigns {
		if state.SelectedType != "" && c.Type != state.SelectedType {
			continue
		}
		if len(state.CampaignTypes) > 0 && !containsType(state.CampaignTypes, c.Type) {
			continue
		}
		if len(state.Statuses) > 0 && !containsStatus(state.Statuses, c.Status) {
			continue
		}
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		if !meetsFloors(c, state.PerformanceFilters) {
			continue
		}

		out = append(out, c)
	}

	return out
}

// SelectActive resolve o seletor de campanha ativa, ortogonal aos filtros
// acima: "all" devolve a coleção inteira; um valor específico seleciona por
// id, com fallback para nome exato (sem distinção de caixa).
func SelectActive(campaigns []domain.Campaign, campaignFilter string) []domain.Campaign {
	if campaignFilter == "" || campaignFilter == domain.AllCampaigns {
		return campaigns
	}

	for _, c := range campaigns {
		if c.ID == campaignFilter {
			return []domain.Campaign{c}
		}
	}

	wanted := strings.ToLower(strings.TrimSpace(campaignFilter))
	for _, c := range campaigns {
		if strings.ToLower(strings.TrimSpace(c.Name)) == wanted {
			return []domain.Campaign{c}
		}
	}

	return nil
}

// SelectByIDs resolve a seleção manual (checkboxes). A ordem original da
// coleção é preservada.
func SelectByIDs(campaigns []domain.Campaign, ids []string) []domain.Campaign {
	if len(ids) == 0 {
		return nil
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	out := make([]domain.Campaign, 0, len(ids))
	for _, c := range campaigns {
		if _, ok := wanted[c.ID]; ok {
			out = append(out, c)
		}
	}

	return out
}

func containsType(types []domain.CampaignType, t domain.CampaignType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func containsStatus(statuses []domain.CampaignStatus, s domain.CampaignStatus) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func matchesQuery(c domain.Campaign, query string) bool {
	return strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(strings.ToLower(c.ID), query)
}

func meetsFloors(c domain.Campaign, floors domain.PerformanceFilters) bool {
	if floors.MinROAS != nil && c.ROAS < *floors.MinROAS {
		return false
	}
	if floors.MinCTR != nil && c.CTR < *floors.MinCTR {
		return false
	}
	if floors.MinConversions != nil && c.Conversions < *floors.MinConversions {
		return false
	}
	return true
}
