package amqpnotify

import "errors"

var (
	// ErrConnect возвращается, если не удалось подключиться к брокеру или объявить exchange
	ErrConnect = errors.New("amqp publisher: connect failed")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("amqp publisher: publish failed")
)
