package entity

// Category представляет категорию вопросов. Через API доступна только на чтение.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"column:type;type:text;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CategoryMap - отображение ID категории в ее название.
// В JSON сериализуется как объект {"1": "Science", ...}.
type CategoryMap map[uint]string

// NewCategoryMap строит CategoryMap из списка категорий.
// Порядок входного списка не важен; при повторе ID побеждает последняя запись.
func NewCategoryMap(categories []Category) CategoryMap {
	result := make(CategoryMap, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}
	return result
}

// Name возвращает название категории или пустую строку, если категория неизвестна
func (m CategoryMap) Name(id uint) string {
	return m[id]
}
