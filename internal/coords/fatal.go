package coords

import (
	"fmt"

	"github.com/annel0/mmo-coords/internal/logging"
)

// fatalf сообщает об ошибке программиста (значение вне закрытого перечисления,
// несоизмеримые масштабы) и паникует. Молчаливой подстановки значения нет.
func fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logging.GetCoordsLogger().Error("%s", msg)
	panic("coords: " + msg)
}
