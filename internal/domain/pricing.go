package domain

import "time"

// Per-day add-on prices in paise.
const (
	AddonDriverPerDay    int64 = 50000
	AddonGPSPerDay       int64 = 10000
	AddonChildSeatPerDay int64 = 15000
	AddonInsurancePerDay int64 = 30000

	ServiceChargePercent = 5
)

type Addons struct {
	Driver    bool `json:"driver"`
	GPS       bool `json:"gps"`
	ChildSeat bool `json:"child_seat"`
	Insurance bool `json:"insurance"`
}

func (a Addons) PerDay() int64 {
	var sum int64
	if a.Driver {
		sum += AddonDriverPerDay
	}
	if a.GPS {
		sum += AddonGPSPerDay
	}
	if a.ChildSeat {
		sum += AddonChildSeatPerDay
	}
	if a.Insurance {
		sum += AddonInsurancePerDay
	}
	return sum
}

type Totals struct {
	Days          int   `json:"days"`
	Base          int64 `json:"base"`
	Addons        int64 `json:"addons"`
	Subtotal      int64 `json:"subtotal"`
	ServiceCharge int64 `json:"service_charge"`
	Total         int64 `json:"total"`
}

// RentalDays counts started 24h periods, never less than one.
func RentalDays(start, end time.Time) int {
	d := end.Sub(start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

func Quote(pricePerDay int64, start, end time.Time, addons Addons) Totals {
	days := RentalDays(start, end)
	t := Totals{
		Days:   days,
		Base:   pricePerDay * int64(days),
		Addons: addons.PerDay() * int64(days),
	}
	t.Subtotal = t.Base + t.Addons
	t.ServiceCharge = (t.Subtotal*ServiceChargePercent + 50) / 100
	t.Total = t.Subtotal + t.ServiceCharge
	return t
}
