package files

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"
)

// generateUniqueFilename проверяет существование файла в dir и генерирует уникальное имя
func generateUniqueFilename(dir string, filename string) string {
	ext := path.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	i := 1

	for {
		if _, err := os.Stat(path.Join(dir, filename)); errors.Is(err, fs.ErrNotExist) {
			break
		}
		filename = fmt.Sprintf("%s(%d)%s", base, i, ext)
		i++
	}

	return filename
}

func DeleteFile(filePath string) error {
	if err := os.Remove(filePath); err != nil {
		return err
	}
	return nil
}

// CreateFile создает файл в директории dir с названием файла filename и c содержимым файла content.
// Если файл с таким именем уже существует - название будет дополнено цифровым индексом
func CreateFile(dir string, filename string, content io.Reader) (filePath string, err error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	filename = generateUniqueFilename(dir, filename)
	filePath = path.Join(dir, filename)
	outFile, err := os.Create(filePath)
	if err != nil {
		return "", err
	}

	_, err = io.Copy(outFile, content)
	if err != nil {
		slog.Error("Write file failed", slog.String("filename", filename), slog.String("err", err.Error()))
		_ = outFile.Close()
		errDelete := DeleteFile(filePath)
		if errDelete != nil {
			slog.Error("failed on delete file", slog.String("filePath", filePath), slog.String("err", errDelete.Error()))
		}
		return "", err
	}

	_ = outFile.Close()
	return filePath, nil
}

// DeleteOlderThan удаляет из dir файлы, которые не менялись дольше maxAge.
func DeleteOlderThan(dir string, maxAge time.Duration) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	deadline := time.Now().Add(-maxAge)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(deadline) {
			if err = os.Remove(path.Join(dir, entry.Name())); err != nil {
				slog.Error("failed on delete old file", slog.String("file", entry.Name()), slog.String("err", err.Error()))
			}
		}
	}

	return nil
}
