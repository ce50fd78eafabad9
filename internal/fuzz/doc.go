// Package fuzztests houses Go fuzz harnesses that exercise the template
// pipeline (source -> lexer -> parser -> lint -> autofix). Its goal is to
// smoke test robustness and guard against panics or runaway loops on
// arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер, парсер и правила.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/lint, internal/testkit.
package fuzztests
