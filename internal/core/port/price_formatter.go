package port

type PriceFormatterPort interface {
	// Format возвращает сумму в валюте сайта без дробной части, например ₦375,000
	Format(amount int64) string
}
