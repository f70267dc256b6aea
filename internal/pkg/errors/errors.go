package errors

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Details:    details,
	}
}

// ErrInsufficientData возвращается геометрией при пустом наборе точек.
// Это ошибка программирования: агрегатор никогда не передаёт пустые группы.
var ErrInsufficientData = errors.New("insufficient data: empty point set")

// UnknownCodeError - в адресных данных встретился код, отсутствующий в
// реестре. Код пропускается и логируется, запуск продолжается.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("postal code %s not present in registry", e.Code)
}

// MalformedBoundaryError - незамкнутое или вырожденное кольцо границы.
// Фатальна для построения индекса: с частичными данными резолвер не
// может безопасно отвечать.
type MalformedBoundaryError struct {
	Region   string
	Vertices int
	Reason   string
}

func (e *MalformedBoundaryError) Error() string {
	return fmt.Sprintf("malformed boundary for %q (%d vertices): %s", e.Region, e.Vertices, e.Reason)
}
