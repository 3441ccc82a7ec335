// Package pagination содержит постраничную нарезку коллекций для ответов API.
package pagination

import "strconv"

// PageSize - фиксированный размер страницы вопросов
const PageSize = 10

// DefaultPage используется, когда параметр page не передан или не является числом
const DefaultPage = 1

// Paginate возвращает срез items для страницы page (нумерация с 1):
// элементы [(page-1)*PageSize, page*PageSize).
// Для page <= 0 и для страниц за пределами коллекции возвращается пустой срез.
func Paginate[T any](items []T, page int) []T {
	// page проверяется до вычисления смещения, иначе (page-1)*PageSize переполняется
	if page < 1 || page > TotalPages(len(items)) {
		return []T{}
	}

	start := (page - 1) * PageSize

	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}

	// Копируем, чтобы результат не держал ссылку на исходный массив
	result := make([]T, end-start)
	copy(result, items[start:end])
	return result
}

// ParsePage разбирает значение query-параметра page.
// Пустая строка и нечисловые значения дают DefaultPage, как и в исходном API.
// Ноль и отрицательные числа возвращаются как есть: Paginate отдаст для них пустую страницу.
func ParsePage(raw string) int {
	if raw == "" {
		return DefaultPage
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPage
	}
	return page
}

// TotalPages возвращает количество страниц для коллекции размера total
func TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}
