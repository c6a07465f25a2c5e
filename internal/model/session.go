package model

// Action определяет какой ввод бот ожидает от пользователя следующим сообщением.
type Action string

const (
	DefaultAction Action = ""

	ExpectingLoginEmail    Action = "login_email"
	ExpectingLoginPassword Action = "login_password"

	ExpectingRegisterName     Action = "register_name"
	ExpectingRegisterEmail    Action = "register_email"
	ExpectingRegisterPassword Action = "register_password"

	ExpectingBookTitle       Action = "book_title"
	ExpectingBookGenre       Action = "book_genre"
	ExpectingBookDescription Action = "book_description"
	ExpectingBookCover       Action = "book_cover"
	ExpectingBookFile        Action = "book_file"

	ExpectingEditTitle       Action = "edit_title"
	ExpectingEditGenre       Action = "edit_genre"
	ExpectingEditDescription Action = "edit_description"
	ExpectingImprovePrompt   Action = "improve_prompt"

	ExpectingProfileName  Action = "profile_name"
	ExpectingProfileBio   Action = "profile_bio"
	ExpectingProfilePhoto Action = "profile_photo"

	ExpectingDeviceEmail Action = "device_email"
)

type Breadcrumb struct {
	Label string
	Path  string
}

// Session хранит все клиентское состояние чата: токен, профиль, хлебные крошки
// и состояние текущего диалога-формы.
type Session struct {
	Token         string
	User          *User
	Breadcrumbs   []Breadcrumb
	Action        Action
	BookDraft     *BookDraft
	EditingBookID string
	LoginEmail    string
	RegisterName  string
	RegisterEmail string
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}
