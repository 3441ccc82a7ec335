package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены
	// (в том числе пустая страница пагинации).
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных (отсутствующие или пустые поля).
	ErrValidation = errors.New("validation failed")

	// ErrUnprocessable используется, когда операция записи не может быть выполнена:
	// удаление несуществующей записи или любая ошибка БД во время записи.
	ErrUnprocessable = errors.New("unprocessable entity")

	// ErrMalformedInput используется для некорректного тела запроса викторины.
	// Отдается клиенту как 500, а не 400.
	ErrMalformedInput = errors.New("malformed input")

	// ErrConflict используется для конфликтов состояния (например, нарушение уникальности).
	ErrConflict = errors.New("resource state conflict")
)
