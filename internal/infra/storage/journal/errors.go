package journal

import "errors"

var (
	// ErrDisabled возвращается при чтении журнала, когда база данных не подключена
	ErrDisabled = errors.New("journal.repository: journal is disabled")

	// ErrInvalidEntry возвращается при попытке записать некорректную запись
	ErrInvalidEntry = errors.New("journal.repository: invalid entry")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("journal.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("journal.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("journal.repository: failed to scan row")
)
