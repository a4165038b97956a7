package response

import (
	"institut-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, len(views))
	for i, v := range views {
		var resp SlotResponse
		_ = copier.Copy(&resp, v)
		out[i] = &resp
	}
	return out
}
