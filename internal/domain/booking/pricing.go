package booking

import "github.com/lumispa/salon-api/internal/models"

// Linha de serviço com o preço capturado no momento do cálculo.
type ServiceLine struct {
	ServiceID string
	Price     int64
}

// ComputeTotal soma os preços de catálogo dos serviços selecionados.
// IDs duplicados contam uma única vez (semântica de conjunto). Serviços
// desconhecidos ou inativos rejeitam o cálculo inteiro; linhas históricas
// que referenciam serviços desativados não passam por aqui.
func ComputeTotal(serviceIDs []string, catalog []models.Service) (int64, []ServiceLine, error) {
	byID := make(map[string]models.Service, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc
	}

	seen := make(map[string]bool, len(serviceIDs))
	var total int64
	var lines []ServiceLine

	for _, id := range serviceIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		svc, ok := byID[id]
		if !ok {
			return 0, nil, &UnknownServiceError{ServiceID: id}
		}
		if !svc.IsActive {
			return 0, nil, &InactiveServiceError{ServiceID: id}
		}

		total += svc.Price
		lines = append(lines, ServiceLine{
			ServiceID: svc.ID,
			Price:     svc.Price,
		})
	}

	if len(lines) == 0 {
		return 0, nil, ErrEmptyServiceSelection
	}

	return total, lines, nil
}
