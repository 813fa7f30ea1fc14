package domain

import "sync/atomic"

// Ticket - результат маршрутизации одного запроса
// если Admitted, слот на Destination занят и должен быть освобожден через Release
type Ticket struct {
	Request     Request
	Destination *Destination
	Strategy    string
	Admitted    bool

	released atomic.Bool
}

// Release освобождает занятый слот ровно один раз
// для отклоненного запроса и при повторном вызове ничего не делает
func (t *Ticket) Release() {
	if t == nil || !t.Admitted || t.Destination == nil {
		return
	}
	if t.released.CompareAndSwap(false, true) {
		t.Destination.Release()
	}
}

// Released сообщает, был ли слот уже освобожден
func (t *Ticket) Released() bool {
	return t != nil && t.released.Load()
}
