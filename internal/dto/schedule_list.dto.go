package dto

import "time"

type ScheduleListDTO struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	BarberName   string    `json:"barber_name"`
	TotalPrice   float64   `json:"total_price"`
}
