package diag

import "fmt"

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0
	// Лексические
	LexInfo               Code = 1000
	LexUnterminatedString Code = 1001

	// Индексация
	IdxInfo       Code = 3000
	IdxStaleCache Code = 3001
)

// ID returns the stable textual identifier of the code.
func (c Code) ID() string {
	return fmt.Sprintf("R%04d", uint16(c))
}
