package response

import (
	"time"

	"huellitas/internal/domain/schedule"
	"huellitas/internal/domain/wizard"
)

type WizardStateResponse struct {
	Step         int              `json:"step"`
	Completed    bool             `json:"completed"`
	Service      *ServiceResponse `json:"service,omitempty"`
	Fecha        string           `json:"fecha,omitempty"`
	Hora         string           `json:"hora,omitempty"`
	Slots        []schedule.Slot  `json:"slots,omitempty"`
	Mascota      string           `json:"mascota,omitempty"`
	Observations string           `json:"observaciones,omitempty"`
	Addons       []string         `json:"addons,omitempty"`
	Subtotal     int64            `json:"subtotal"`
}

func FromWizardState(s *wizard.State) WizardStateResponse {
	resp := WizardStateResponse{
		Step:         s.Step,
		Completed:    s.Completed,
		Hora:         s.Time,
		Slots:        s.Slots,
		Observations: s.Observations,
		Addons:       s.Addons,
		Subtotal:     s.Subtotal(),
	}
	if s.Service != nil {
		svc := FromService(*s.Service)
		resp.Service = &svc
	}
	if s.Date != nil {
		resp.Fecha = s.Date.Format("2006-01-02")
	}
	if s.Pet != nil {
		resp.Mascota = s.Pet.Name
	}
	return resp
}

type CalendarCellResponse struct {
	Day       int    `json:"day,omitempty"`
	Fecha     string `json:"fecha,omitempty"`
	Blank     bool   `json:"blank,omitempty"`
	Today     bool   `json:"today,omitempty"`
	Past      bool   `json:"past,omitempty"`
	Selected  bool   `json:"selected,omitempty"`
	Available bool   `json:"available"`
}

type CalendarResponse struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Cells []CalendarCellResponse `json:"cells"`
}

func FromGrid(year, monthIndex int, grid *schedule.Grid) CalendarResponse {
	cells := make([]CalendarCellResponse, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		out := CalendarCellResponse{
			Blank:     cell.Blank,
			Today:     cell.IsToday,
			Past:      cell.IsPast,
			Selected:  cell.IsSelected,
			Available: cell.IsAvailable,
		}
		if !cell.Blank {
			out.Day = cell.Day
			out.Fecha = cell.Date.Format("2006-01-02")
		}
		cells = append(cells, out)
	}
	return CalendarResponse{
		Year:  year,
		Month: monthIndex,
		Cells: cells,
	}
}

type SlotsResponse struct {
	Fecha string          `json:"fecha"`
	Slots []schedule.Slot `json:"slots"`
}

func FromSlots(date time.Time, slots []schedule.Slot) SlotsResponse {
	return SlotsResponse{
		Fecha: date.Format("2006-01-02"),
		Slots: slots,
	}
}
