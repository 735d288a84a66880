package domain

import "errors"

// Доменные ошибки, преобразуемые на границе handler-слоя в HTTP статусы
var (
	// ErrEmailRequired возвращается когда в запросе отсутствует обязательный email
	ErrEmailRequired = errors.New("email is required")

	// ErrUserExists возвращается при попытке создать пользователя с занятым email
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound возвращается когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrMembershipNotFound возвращается когда запись о членстве не найдена
	ErrMembershipNotFound = errors.New("team membership not found")

	// ErrInvalidRole возвращается когда роль в записи о членстве не "employee"
	ErrInvalidRole = errors.New("role must be employee")

	// ErrAssetNotFound возвращается когда актив не найден
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetNameRequired возвращается когда в запросе отсутствует имя актива
	ErrAssetNameRequired = errors.New("assetName is required")

	// ErrInvalidID возвращается когда идентификатор имеет неверный формат
	ErrInvalidID = errors.New("invalid id format")

	// ErrInvalidPrice возвращается когда сумма платежа не положительна
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrUnauthorized возвращается при неудачной аутентификации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда JWT токен невалиден или истек
	ErrInvalidToken = errors.New("invalid token")
)
