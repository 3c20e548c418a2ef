package export

import "errors"

var (
	// ErrWriteFile возвращается при ошибке записи файла экспорта
	ErrWriteFile = errors.New("export.writer: failed to write export file")
)
