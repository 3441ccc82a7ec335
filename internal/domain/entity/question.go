package entity

import "strings"

// Question представляет вопрос викторины.
// Вопрос создается вставкой и удаляется по ID; обновление не поддерживается.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:question;type:text;not null" json:"question"`
	Answer     string `gorm:"column:answer;type:text;not null" json:"answer"`
	Category   uint   `gorm:"column:category;not null;index" json:"category"`
	Difficulty int    `gorm:"column:difficulty;not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsComplete проверяет, что все обязательные поля заполнены ненулевыми значениями
func (q *Question) IsComplete() bool {
	return strings.TrimSpace(q.Text) != "" &&
		strings.TrimSpace(q.Answer) != "" &&
		q.Category != 0 &&
		q.Difficulty != 0
}

// InCategory проверяет принадлежность вопроса категории.
// categoryID == 0 означает "все категории".
func (q *Question) InCategory(categoryID uint) bool {
	return categoryID == 0 || q.Category == categoryID
}
