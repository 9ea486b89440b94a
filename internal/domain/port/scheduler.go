package port

import "time"

// Scheduler запускает отложенные действия по ключу.
type Scheduler interface {
	// Schedule заменяет ранее запланированное действие с тем же ключом.
	Schedule(key string, delay time.Duration, fn func())

	// Cancel отменяет действие; после Cancel fn гарантированно не будет вызвана.
	Cancel(key string)
}

// Debouncer открывает меню сразу и сворачивает его после паузы без действий.
type Debouncer interface {
	// Enter отменяет ожидающее сворачивание и вызывает onOpen, если меню ещё закрыто.
	Enter(key string, onOpen func())
	// Leave планирует сворачивание; onClose вызывается, если за паузу не было Enter.
	Leave(key string, onClose func())
	// Close закрывает меню сразу, без onClose.
	Close(key string)
}
