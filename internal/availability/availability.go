// Package availability derives the open appointment slots of each service
// for a single day.
package availability

import "go-doctors-portal/internal/domain/entity"

// Compute returns every service with the slots already booked on date
// removed. Service order and the configured slot order are preserved and the
// inputs are left untouched. The date is compared verbatim, so a malformed
// date matches no bookings and every slot stays open.
func Compute(services []entity.Service, bookings []entity.Booking, date string) []entity.Service {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b.Date != date {
			continue
		}
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	result := make([]entity.Service, 0, len(services))
	for _, service := range services {
		taken := booked[service.Name]
		open := make(entity.SlotList, 0, len(service.Slots))
		for _, slot := range service.Slots {
			if _, ok := taken[slot]; ok {
				continue
			}
			open = append(open, slot)
		}
		service.Slots = open
		result = append(result, service)
	}

	return result
}
