package lexer

// ===== Классификаторы символов диалекта =====

// isSymbolStart: байт, с которого может начинаться идентификатор.
// '.' начинает локальную метку, '_' — обычный идентификатор.
func isSymbolStart(b byte) bool {
	return b == '.' || b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// isSymbolByte: symbol-constituent байт внутри идентификатора или
// имени директивы.
func isSymbolByte(b byte) bool {
	return isSymbolStart(b) || (b >= '0' && b <= '9')
}
