package domain

import (
	"fmt"
	"net/url"
	"strings"
)

const whatsAppBaseURL = "https://wa.me/"

// WhatsAppLink собирает deep link. Пробелы кодируются как %20, а не "+".
func WhatsAppLink(number, message string) string {
	link := whatsAppBaseURL + onlyDigits(number)
	if message == "" {
		return link
	}
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GreetingMessage - общий текст для кнопки WhatsApp на главной
func GreetingMessage(brand string) string {
	return fmt.Sprintf("Hello %s 👋\n\nI’d like help booking a premium shortlet.", brand)
}

// BookingMessage - текст заявки на бронирование. totalDisplay уже отформатирован в валюте.
func BookingMessage(brand string, p Property, draft BookingDraft, totalDisplay string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s 👋\n\n", brand)
	b.WriteString("I’m interested in booking:\n")
	fmt.Fprintf(&b, "%s\n📍 %s\n\n", p.Name, p.Location)
	fmt.Fprintf(&b, "📅 Check-in: %s\n", FormatDateOr(draft.CheckIn, "Flexible"))
	fmt.Fprintf(&b, "📅 Check-out: %s\n", FormatDateOr(draft.CheckOut, "Flexible"))
	fmt.Fprintf(&b, "👥 Guests: %d\n", draft.Guests)
	fmt.Fprintf(&b, "🌙 Duration: %d night(s)\n\n", draft.Nights)
	fmt.Fprintf(&b, "💰 Estimated total: %s\n\n", totalDisplay)
	b.WriteString("Please share availability & next steps.")
	return b.String()
}
