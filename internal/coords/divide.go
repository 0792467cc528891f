package coords

import "github.com/annel0/mmo-coords/internal/vec"

// divFloor делит с округлением к минус бесконечности: q*n <= a < (q+1)*n.
// Усечение здесь недопустимо: -1/12 должно давать -1, а не 0.
// Вычитания до деления нет, поэтому переполнения нет на всем диапазоне int.
func divFloor(a, n int) int {
	q := a / n
	if a%n < 0 {
		q--
	}
	return q
}

// divNonNeg - быстрый путь для заведомо неотрицательных a.
// Для отрицательных a результат не определен (предусловие InBounds).
func divNonNeg(a, n int) int {
	return int(uint(a) / uint(n))
}

func divFloorXY(v vec.Vec2, n int) vec.Vec2 {
	return vec.Vec2{X: divFloor(v.X, n), Y: divFloor(v.Y, n)}
}

func divNonNegXY(v vec.Vec2, n int) vec.Vec2 {
	return vec.Vec2{X: divNonNeg(v.X, n), Y: divNonNeg(v.Y, n)}
}
