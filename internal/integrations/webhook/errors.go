package webhook

import "errors"

var (
	// ErrInternal возвращается при ошибках построения или отправки запроса
	ErrInternal = errors.New("webhook client: internal error")

	// ErrUnexpectedStatus возвращается, если получатель ответил не 2xx
	ErrUnexpectedStatus = errors.New("webhook client: unexpected status")
)
