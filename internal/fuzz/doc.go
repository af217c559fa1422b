// Package fuzztests houses Go fuzz harnesses for the translation pipeline
// (source -> lexer -> rewrite -> reassembler). They guard against panics and
// check that a translated file survives a trip back and forth unchanged.
//
// Назначение: прогонять произвольные байты через лексер и транслятор.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
