package service

import "time"

// HolidayOverride получает вычисленный признак выходного и может его переопределить.
// Возвращаемое значение окончательное.
type HolidayOverride func(isHoliday bool, start, end time.Time, workerID uint) bool

// CapacityOverride принудительно задает вместимость услуги.
// forced = false означает, что нужно считать вместимость по сотрудникам.
type CapacityOverride func(serviceID uint) (capacity int, forced bool)

// PassThroughHoliday - переопределение по умолчанию, ничего не меняет
func PassThroughHoliday(isHoliday bool, _, _ time.Time, _ uint) bool {
	return isHoliday
}

// NoCapacityOverride - переопределение по умолчанию, вместимость не задается
func NoCapacityOverride(uint) (int, bool) {
	return 0, false
}

// FixedCapacity возвращает переопределение с постоянной вместимостью для перечисленных услуг
// (для всех услуг, если список пуст)
func FixedCapacity(capacity int, serviceIDs ...uint) CapacityOverride {
	return func(serviceID uint) (int, bool) {
		if len(serviceIDs) == 0 {
			return capacity, true
		}
		for _, id := range serviceIDs {
			if id == serviceID {
				return capacity, true
			}
		}
		return 0, false
	}
}
