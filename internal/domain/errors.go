package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation означает, что запись не прошла проверку формы или формата (отсутствует поле, неверный процент).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound возвращается, если операция ссылается на id, которого нет в коллекции.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientQuantity возвращается на попытку убрать из корзины больше единиц, чем в ней лежит.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	// ErrSessionKeyNotFound возвращается хранилищем сессии, если ключ ещё не записан.
	ErrSessionKeyNotFound = errors.New("session key not found")
	// ErrSessionVersionConflict сигнализирует, что ключ сессии изменился между чтением и записью.
	ErrSessionVersionConflict = errors.New("session version conflict")
	// ErrNamespaceRequired возвращается при пустом префиксе ключей сессии.
	ErrNamespaceRequired = errors.New("session namespace is required")
)

// InsufficientQuantityError описывает неудачное списание количества позиции.
type InsufficientQuantityError struct {
	ItemID    string
	Requested int
	Available int
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf(
		"can not remove %d of item %q: cart only has %d (short by %d)",
		e.Requested, e.ItemID, e.Available, e.Shortfall(),
	)
}

// Shortfall возвращает, сколько единиц не хватило.
func (e *InsufficientQuantityError) Shortfall() int {
	return e.Requested - e.Available
}

// Is позволяет сравнивать ошибку с ErrInsufficientQuantity через errors.Is.
func (e *InsufficientQuantityError) Is(target error) bool {
	return target == ErrInsufficientQuantity
}

// IsVersionConflict проверяет, является ли ошибка конфликтом версий сессии.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrSessionVersionConflict)
}

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// NewValidationError оборачивает ErrValidation с описанием проблемы.
func NewValidationError(message string) error {
	return validationErrorf("%s", message)
}

// NewNotFoundError оборачивает ErrNotFound с описанием сущности и идентификатора.
func NewNotFoundError(kind, id string) error {
	return notFoundErrorf("cart does not contain %s with id = %s", kind, id)
}
