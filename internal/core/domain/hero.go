package domain

// NextSlide - следующий индекс слайда по кругу
func NextSlide(current, count int) int {
	if count <= 0 {
		return 0
	}
	return (current + 1) % count
}
