package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Anything that is not a DOCX is stored as a PDF; extraction fails soft on bad content.
var storedExtensions = map[string]string{
	".docx": ".docx",
}

const defaultExtension = ".pdf"

type StorageService interface {
	// NewFolder reserves a fresh per-upload directory and returns its path.
	NewFolder() (string, error)
	SaveFile(file *multipart.FileHeader, folder, baseName string) (string, []byte, error)
	DeleteFolder(folder string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) NewFolder() (string, error) {
	folder := filepath.Join(s.uploadPath, uuid.New().String())
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}
	return folder, nil
}

// SaveFile stores the upload as folder/baseName<ext> and returns the path and the raw bytes.
func (s *storageService) SaveFile(file *multipart.FileHeader, folder, baseName string) (string, []byte, error) {
	ext, ok := storedExtensions[strings.ToLower(filepath.Ext(file.Filename))]
	if !ok {
		ext = defaultExtension
	}

	filePath := filepath.Join(folder, baseName+ext)

	src, err := file.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, src); err != nil {
		return "", nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	if err := os.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
		return "", nil, fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, buf.Bytes(), nil
}

func (s *storageService) DeleteFolder(folder string) error {
	if err := os.RemoveAll(folder); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	return nil
}
