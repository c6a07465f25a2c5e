package tgCallback

// Callback button prefixes
const (
	PageNumber      string = "page_number"
	NewBook         string = "new_book"
	CancelDialog    string = "cancel_dialog"
	Logout          string = "logout"
	LinkEmail       string = "link_email"
	DeleteEmail     string = "delete_email"
	EditName        string = "edit_name"
	EditBio         string = "edit_bio"
	EditPhoto       string = "edit_photo"
	KeepDescription string = "keep_description"
	FixGrammar      string = "fix_grammar"
	ImproveDescr    string = "improve_description"

	// prefixes
	BackToBooksPage string = "back_to_books_page:"
	ToBookDetails   string = "to_book_details:"
	ToBooksPage     string = "to_books_page:"
	ReadBook        string = "read_book:"
	DownloadBook    string = "download_book:"
	SendToDevice    string = "send_to_device:"
	DeleteBook      string = "delete_book:"
	ConfirmDelete   string = "confirm_delete:"
	EditTitle       string = "edit_title:"
	EditGenre       string = "edit_genre:"
	EditDescr       string = "edit_description:"
	ImproveBook     string = "improve_book_description:"
	FixBookText     string = "fix_book_description:"
)
