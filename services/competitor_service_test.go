package services

import (
	"testing"

	"innpilot/dto"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name        string
		own         float64
		competitors []dto.CompetitorDayRate
		want        string
	}{
		{"no observations", 3000, nil, "no_data"},
		{
			"all sold out",
			3000,
			[]dto.CompetitorDayRate{{Price: 2500, IsSoldOut: true}},
			"no_data",
		},
		{
			"cheapest",
			2000,
			[]dto.CompetitorDayRate{{Price: 2500}, {Price: 3200}},
			"cheapest",
		},
		{
			"premium",
			4000,
			[]dto.CompetitorDayRate{{Price: 2500}, {Price: 3200}},
			"premium",
		},
		{
			"inside the band",
			3000,
			[]dto.CompetitorDayRate{{Price: 2500}, {Price: 3200}},
			"competitive",
		},
		{
			"equal to lowest is competitive",
			2500,
			[]dto.CompetitorDayRate{{Price: 2500}, {Price: 3200}},
			"competitive",
		},
		{
			"sold-out rows carry no price signal",
			2000,
			[]dto.CompetitorDayRate{{Price: 1500, IsSoldOut: true}, {Price: 2500}},
			"cheapest",
		},
		{
			"single competitor at same price",
			2500,
			[]dto.CompetitorDayRate{{Price: 2500}},
			"competitive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, position(tt.own, tt.competitors))
		})
	}
}
