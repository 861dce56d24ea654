package constants

// Обменник для событий сайта
const (
	ExchangeLeads     = "shortlet_leads_exchange"
	ExchangeLeadsType = "topic"
)

// Ключи маршрутизации
const (
	RoutingKeyBookingInquiry = "leads.booking.inquiry"
)

// Заголовки события
const (
	EventTypeBookingInquiry    = "BookingInquiryEvent"
	EventVersionBookingInquiry = "1.0.0"
)
