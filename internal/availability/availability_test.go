package availability

import (
	"fmt"
	"math/rand"
	"testing"

	"go-doctors-portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_CleaningScenario(t *testing.T) {
	services := []entity.Service{{Name: "Cleaning", Slots: entity.SlotList{"9am", "10am"}}}
	bookings := []entity.Booking{{Treatment: "Cleaning", Date: "2024-01-01", Slot: "9am", Patient: "a@x.com"}}

	got := Compute(services, bookings, "2024-01-01")

	require.Len(t, got, 1)
	assert.Equal(t, "Cleaning", got[0].Name)
	assert.Equal(t, entity.SlotList{"10am"}, got[0].Slots)
}

func TestCompute(t *testing.T) {
	services := []entity.Service{
		{Name: "Cleaning", Slots: entity.SlotList{"9am", "10am", "11am"}},
		{Name: "Whitening", Slots: entity.SlotList{"1pm", "2pm"}},
		{Name: "Cavity", Slots: entity.SlotList{}},
	}

	tests := []struct {
		name     string
		bookings []entity.Booking
		date     string
		want     map[string]entity.SlotList
	}{
		{
			name: "no bookings keeps every slot",
			date: "2024-01-01",
			want: map[string]entity.SlotList{
				"Cleaning":  {"9am", "10am", "11am"},
				"Whitening": {"1pm", "2pm"},
				"Cavity":    {},
			},
		},
		{
			name: "bookings on other days are ignored",
			bookings: []entity.Booking{
				{Treatment: "Cleaning", Date: "2024-01-02", Slot: "9am"},
			},
			date: "2024-01-01",
			want: map[string]entity.SlotList{
				"Cleaning":  {"9am", "10am", "11am"},
				"Whitening": {"1pm", "2pm"},
				"Cavity":    {},
			},
		},
		{
			name: "slot of another treatment is not removed",
			bookings: []entity.Booking{
				{Treatment: "Whitening", Date: "2024-01-01", Slot: "9am"},
			},
			date: "2024-01-01",
			want: map[string]entity.SlotList{
				"Cleaning":  {"9am", "10am", "11am"},
				"Whitening": {"1pm", "2pm"},
				"Cavity":    {},
			},
		},
		{
			name: "fully booked service keeps an empty list",
			bookings: []entity.Booking{
				{Treatment: "Whitening", Date: "2024-01-01", Slot: "2pm"},
				{Treatment: "Whitening", Date: "2024-01-01", Slot: "1pm"},
				{Treatment: "Cleaning", Date: "2024-01-01", Slot: "10am"},
			},
			date: "2024-01-01",
			want: map[string]entity.SlotList{
				"Cleaning":  {"9am", "11am"},
				"Whitening": {},
				"Cavity":    {},
			},
		},
		{
			name: "unknown treatment and slot are harmless",
			bookings: []entity.Booking{
				{Treatment: "Surgery", Date: "2024-01-01", Slot: "9am"},
				{Treatment: "Cleaning", Date: "2024-01-01", Slot: "midnight"},
			},
			date: "2024-01-01",
			want: map[string]entity.SlotList{
				"Cleaning":  {"9am", "10am", "11am"},
				"Whitening": {"1pm", "2pm"},
				"Cavity":    {},
			},
		},
		{
			name: "malformed date matches nothing",
			bookings: []entity.Booking{
				{Treatment: "Cleaning", Date: "2024-01-01", Slot: "9am"},
			},
			date: "not-a-date",
			want: map[string]entity.SlotList{
				"Cleaning":  {"9am", "10am", "11am"},
				"Whitening": {"1pm", "2pm"},
				"Cavity":    {},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(services, tt.bookings, tt.date)

			require.Len(t, got, len(services))
			for i, service := range got {
				assert.Equal(t, services[i].Name, service.Name)
				assert.Equal(t, tt.want[service.Name], service.Slots)
			}
		})
	}
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	services := []entity.Service{{Name: "Cleaning", Slots: entity.SlotList{"9am", "10am"}}}
	bookings := []entity.Booking{{Treatment: "Cleaning", Date: "2024-01-01", Slot: "9am"}}

	Compute(services, bookings, "2024-01-01")

	assert.Equal(t, entity.SlotList{"9am", "10am"}, services[0].Slots)
	assert.Equal(t, "9am", bookings[0].Slot)
}

func TestCompute_EmptyServices(t *testing.T) {
	got := Compute(nil, []entity.Booking{{Treatment: "Cleaning", Date: "d", Slot: "9am"}}, "d")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCompute_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dates := []string{"2024-01-01", "2024-01-02"}
	names := []string{"Cleaning", "Whitening", "Cavity", "Braces"}

	for iter := 0; iter < 200; iter++ {
		var services []entity.Service
		for _, name := range names {
			slots := entity.SlotList{}
			n := rng.Intn(6)
			for i := 0; i < n; i++ {
				slots = append(slots, fmt.Sprintf("slot-%d", i))
			}
			services = append(services, entity.Service{Name: name, Slots: slots})
		}

		var bookings []entity.Booking
		n := rng.Intn(12)
		for i := 0; i < n; i++ {
			bookings = append(bookings, entity.Booking{
				Treatment: names[rng.Intn(len(names))],
				Date:      dates[rng.Intn(len(dates))],
				Slot:      fmt.Sprintf("slot-%d", rng.Intn(6)),
			})
		}

		date := dates[rng.Intn(len(dates))]
		got := Compute(services, bookings, date)

		// Idempotent.
		assert.Equal(t, got, Compute(services, bookings, date))

		for i, service := range got {
			assert.Equal(t, services[i].Name, service.Name)

			// Never offers a booked slot.
			for _, b := range bookings {
				if b.Date == date && b.Treatment == service.Name {
					assert.NotContains(t, service.Slots, b.Slot)
				}
			}

			// Remaining slots are an ordered subsequence of the configured ones.
			j := 0
			for _, slot := range service.Slots {
				for j < len(services[i].Slots) && services[i].Slots[j] != slot {
					j++
				}
				require.Less(t, j, len(services[i].Slots), "slot %q out of order", slot)
				j++
			}
		}
	}
}
