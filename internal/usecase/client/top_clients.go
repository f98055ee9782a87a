package client

import (
	"context"
	"sort"

	domain "github.com/estilo26/booking-api/internal/domain/appointment"
)

// ClientSummary ranks a repeat client by completed visits.
type ClientSummary struct {
	ClientName      string `json:"client_name"`
	ClientPhone     string `json:"client_phone"`
	TotalVisits     int64  `json:"total_visits"`
	PreferredBarber string `json:"preferred_barber"`
}

type GetTopClients struct {
	repo domain.Repository
}

func NewGetTopClients(repo domain.Repository) *GetTopClients {
	return &GetTopClients{repo: repo}
}

// Execute groups completed appointments by phone. Cancelled, pending and
// no-show visits never count. Per group: the representative name is the
// lexicographic maximum, the preferred barber is the most frequent
// non-empty barber name with ties broken by the smallest name. Output is
// ordered by visits descending, phone ascending on equal counts.
func (uc *GetTopClients) Execute(
	ctx context.Context,
) ([]ClientSummary, error) {

	completed, err := uc.repo.ListAppointmentsByStatus(ctx, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}

	type group struct {
		name    string
		visits  int64
		barbers map[string]int
	}

	groups := make(map[string]*group)
	for _, ap := range completed {
		g, ok := groups[ap.ClientPhone]
		if !ok {
			g = &group{barbers: make(map[string]int)}
			groups[ap.ClientPhone] = g
		}
		g.visits++
		if ap.ClientName > g.name {
			g.name = ap.ClientName
		}
		if ap.BarberName != "" {
			g.barbers[ap.BarberName]++
		}
	}

	out := make([]ClientSummary, 0, len(groups))
	for phone, g := range groups {
		out = append(out, ClientSummary{
			ClientName:      g.name,
			ClientPhone:     phone,
			TotalVisits:     g.visits,
			PreferredBarber: preferredBarber(g.barbers),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalVisits != out[j].TotalVisits {
			return out[i].TotalVisits > out[j].TotalVisits
		}
		return out[i].ClientPhone < out[j].ClientPhone
	})

	return out, nil
}

func preferredBarber(counts map[string]int) string {
	best := ""
	bestCount := 0
	for name, n := range counts {
		if n > bestCount || (n == bestCount && bestCount > 0 && name < best) {
			best = name
			bestCount = n
		}
	}
	return best
}
