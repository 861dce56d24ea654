package textfmt

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label превращает идентификатор ("serviced-apartment") в подпись ("Serviced Apartment")
func Label(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' })
	// Caser хранит состояние, поэтому создается на каждый вызов
	return cases.Title(language.English).String(strings.Join(words, " "))
}
