// Package services содержит общие для сервисного слоя ошибки.
package services

import "errors"

// ErrNotImplemented возвращается операциями, для которых ещё нет реализации.
// HTTP-слой отвечает на неё статусом 501.
var ErrNotImplemented = errors.New("not implemented")
