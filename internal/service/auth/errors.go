package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной или пустой паре email/пароль, без уточнения, что именно неверно
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUnauthorized возвращается, если токен отсутствует или не живой
	ErrUnauthorized = errors.New("auth: unauthorized")

	// ErrInternal возвращается при ошибках хранилища сессий или генерации токена
	ErrInternal = errors.New("auth: internal error")
)
