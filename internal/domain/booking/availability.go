package booking

import (
	"sort"
	"time"

	"github.com/lumispa/salon-api/internal/models"
)

// ===============================
// Availability Resolver
// ===============================

type AvailabilityInput struct {
	Date time.Time

	// Template semanal do especialista (zero ou uma linha por weekday)
	Weekly []models.SpecialistAvailability

	// Override para a data. Quando presente, substitui o template inteiro.
	Override *models.SpecialistSchedule

	// Catálogo global de horários de início (ex: "08:00" ... "17:30")
	Catalog []string

	// Agendamentos já existentes do especialista na data, qualquer status
	Existing []models.Booking
}

// ResolveSlots calcula os horários livres de um especialista numa data.
// Função pura: toda a leitura fica a cargo do chamador.
//
//  1. Override presente → candidatos são exatamente os seus time_slots.
//  2. Senão, template semanal filtrado por is_available; candidatos são os
//     horários do catálogo dentro de [start_time, end_time).
//  3. Horários ocupados por agendamentos não-cancelados são removidos.
func ResolveSlots(in AvailabilityInput) []string {
	var candidates []string

	if in.Override != nil {
		candidates = append(candidates, in.Override.TimeSlots...)
	} else {
		weekday := int(in.Date.Weekday())

		var template *models.SpecialistAvailability
		for i := range in.Weekly {
			if in.Weekly[i].DayOfWeek == weekday {
				template = &in.Weekly[i]
				break
			}
		}

		if template == nil || !template.IsAvailable {
			return []string{}
		}

		start, okStart := parseHM(template.StartTime)
		end, okEnd := parseHM(template.EndTime)
		if !okStart || !okEnd {
			return []string{}
		}

		for _, slot := range in.Catalog {
			m, ok := parseHM(slot)
			if !ok {
				continue
			}
			if m >= start && m < end {
				candidates = append(candidates, slot)
			}
		}
	}

	taken := make(map[string]bool, len(in.Existing))
	for _, b := range in.Existing {
		if Blocks(Status(b.Status)) {
			taken[b.BookingTime] = true
		}
	}

	free := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, slot := range candidates {
		if taken[slot] || seen[slot] {
			continue
		}
		seen[slot] = true
		free = append(free, slot)
	}

	sort.Slice(free, func(i, j int) bool {
		a, _ := parseHM(free[i])
		b, _ := parseHM(free[j])
		return a < b
	})

	return free
}

// parseHM converte "HH:mm" em minutos desde meia-noite.
func parseHM(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
