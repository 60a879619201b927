package usecase

import (
	"math/rand"
	"time"
)

// RandomSource источник случайности для выбора ментора.
// *rand.Rand удовлетворяет интерфейсу, что позволяет фиксировать выбор в тестах.
type RandomSource interface {
	Intn(n int) int
}

// GlobalRandom использует общий генератор math/rand, безопасный для горутин
type GlobalRandom struct{}

// Intn возвращает случайное число в [0, n)
func (GlobalRandom) Intn(n int) int {
	return rand.Intn(n)
}

// Clock возвращает текущее время; подменяется в тестах
type Clock func() time.Time
