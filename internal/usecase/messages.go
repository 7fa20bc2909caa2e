package usecase

// User-facing messages. The frontend matches on these strings, so they
// stay localized exactly as shipped.
const (
	MsgFillAllFields      = "Заполните все поля"
	MsgInvalidCredentials = "Неверное имя пользователя или пароль"
	MsgUserExists         = "Пользователь с таким именем или email уже существует"
	MsgUnknownPath        = "Неизвестный путь"
	MsgMethodNotAllowed   = "Метод не поддерживается"
	MsgUserIDRequired     = "userId обязателен"
	MsgUserFriendRequired = "userId и friendId обязательны"
	MsgInvalidBody        = "Неверный формат запроса"
)
