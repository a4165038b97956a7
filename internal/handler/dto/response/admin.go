package response

import (
	"institut-booking/internal/usecase/queries"
)

type AdminStatsResponse struct {
	TodayAppointments     int `json:"todayAppointments"`
	CompletedRevenueCents int `json:"completedRevenueCents"`
	ActiveServices        int `json:"activeServices"`
	Clients               int `json:"clients"`
}

// ServiceCollectionResponse is returned by every catalog write so the admin
// panel can replace its whole list instead of patching it in place.
type ServiceCollectionResponse struct {
	Service  *ServiceResponse   `json:"service,omitempty"`
	Services []*ServiceResponse `json:"services"`
}

func FromAdminStatsView(view *queries.AdminStatsView) *AdminStatsResponse {
	return &AdminStatsResponse{
		TodayAppointments:     view.TodayAppointments,
		CompletedRevenueCents: view.CompletedRevenueCents,
		ActiveServices:        view.ActiveServices,
		Clients:               view.Clients,
	}
}
