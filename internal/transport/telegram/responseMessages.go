package telegram

const (
	internalErrMsg string = "что-то пошло не так..."

	welcomeMsg string = "Добро пожаловать в книжную платформу! Войдите командой /login или зарегистрируйтесь через /register."
	helpMsg    string = "Команды:\n/login — войти\n/register — регистрация\n/books — книги платформы\n/newbook — опубликовать книгу\n/read — читать книгу\n/profile — профиль\n/email — email устройства для отправки книг\n/history — история скачиваний\n/logout — выйти"

	alreadyLoggedInMsg string = "вы уже авторизованы"
	enterEmailMsg      string = "введите email:"
	enterPasswordMsg   string = "введите пароль:"
	enterNameMsg       string = "введите имя:"
	loginFailedMsg     string = "не удалось войти, проверьте email и пароль и повторите /login"
	registerFailedMsg  string = "не удалось зарегистрироваться, повторите /register"
	loggedOutMsg       string = "вы вышли из аккаунта"

	enterBookTitleMsg  string = "введите название книги:"
	enterBookGenreMsg  string = "введите жанр:"
	enterBookDescrMsg  string = "введите описание:"
	sendBookCoverMsg   string = "отправьте обложку (jpeg/png, до 10MB):"
	sendBookFileMsg    string = "отправьте файл книги (pdf/epub, до 50MB):"
	bookCreatedMsg     string = "Книга создана и добавлена в библиотеку!"
	bookUpdatedMsg     string = "Книга обновлена!"
	bookDeletedMsg     string = "Книга удалена"
	bookNotFoundMsg    string = "книга не найдена"
	createCancelledMsg string = "создание книги отменено"

	enterImprovePromptMsg string = "опишите, как улучшить описание (или отправьте «-» для варианта по умолчанию):"

	profileUpdatedMsg string = "Профиль обновлен"
	enterNewNameMsg   string = "введите новое имя:"
	enterNewBioMsg    string = "введите новое био:"
	sendNewPhotoMsg   string = "отправьте новое фото профиля:"

	enterDeviceEmailMsg   string = "введите email вашего устройства (например send-to-kindle адрес):"
	invalidEmailMsg       string = "это не похоже на email, попробуйте еще раз"
	emailLinkedMsg        string = "email успешно привязан"
	emailDeletedMsg       string = "email успешно удален"
	emailNotLinkedMsg     string = "email устройства не привязан, привяжите его командой /email"
	bookSentToDeviceMsg   string = "Книга отправлена на ваше устройство. Для больших файлов доставка может занять до минуты."
	startBookDownloadMsg  string = "начинаем скачивать книгу..."
	blobLoadFailedMsg     string = "Не удалось загрузить файл книги. Попробуйте еще раз."
	chooseBookToReadMsg   string = "выберите книгу для чтения через /books или укажите id: /read <id>"
)
