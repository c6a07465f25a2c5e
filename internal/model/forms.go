package model

// FileRef описывает загруженный пользователем файл, сохраненный на диск
// до отправки на платформу.
type FileRef struct {
	Name string
	Size int64
	MIME string
	Path string
}

type BookDraft struct {
	Title       string `validate:"required,min=1"`
	Genre       string `validate:"required,min=1"`
	Description string `validate:"required,min=1"`
	CoverImage  *FileRef
	File        *FileRef
}

type ProfileDraft struct {
	Name           string
	Bio            string
	ProfilePicture *FileRef
}

func (d ProfileDraft) Empty() bool {
	return d.Name == "" && d.Bio == "" && d.ProfilePicture == nil
}
