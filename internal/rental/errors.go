package rental

import "errors"

// Таксономия ошибок ядра. Репозитории и сервисы оборачивают конкретные
// ошибки через fmt.Errorf("...: %w", ...), вызывающая сторона проверяет
// errors.Is.
var (
	// Входные данные не прошли проверку; хранилище не затрагивалось.
	ErrValidation = errors.New("validation failed")
	// Запрошенной строки нет.
	ErrNotFound = errors.New("record not found")
	// Нарушение уникального ограничения (дубль номера, email и т.п.).
	ErrConstraint = errors.New("constraint violated")
	// БД недоступна.
	ErrConnection = errors.New("database unreachable")
	// Любой другой сбой выражения; многошаговая операция откатывается целиком.
	ErrPersistence = errors.New("persistence failure")

	// Машина занята пересекающимся бронированием (строгий режим одобрения).
	ErrCarUnavailable = errors.New("car is not available for the requested dates")
	// Сумма не сходится с rate_per_day * число дней (режим проверки сумм).
	ErrAmountMismatch = errors.New("total amount does not match rate and duration")
	// Неверная пара email/пароль.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
