package apperror

var (
	ErrNotFound         = New(CodeNotFound, "запись не найдена")
	ErrDuplicate        = New(CodeDuplicate, "запись уже существует")
	ErrInvalidReference = New(CodeInvalidReference, "ссылка на несуществующее значение")
	ErrInvalidInput     = New(CodeInvalidInput, "некорректные входные данные")
)
