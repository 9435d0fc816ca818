package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ImageStore is the collaborator that keeps product photos. The reference
// string it returns is stored verbatim on the product row.
type ImageStore interface {
	Save(src io.Reader, categorySlug, subcategorySlug, productSlug, originalName string) (string, error)
	Delete(imageURL string) error
	Exists(imageURL string) bool
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// LocalImageStore writes images under baseDir and serves them under
// baseURL, keyed by category/subcategory/product slug.
type LocalImageStore struct {
	baseDir string
	baseURL string
}

func NewLocalImageStore(baseDir, baseURL string) *LocalImageStore {
	return &LocalImageStore{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *LocalImageStore) Save(src io.Reader, categorySlug, subcategorySlug, productSlug, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		ext = ".jpg"
	}

	dir := filepath.Join(s.baseDir, categorySlug, subcategorySlug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	filename := productSlug + ext
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create image file %s: %w", filename, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file %s: %w", filename, err)
	}

	return fmt.Sprintf("%s/%s/%s/%s", s.baseURL, categorySlug, subcategorySlug, filename), nil
}

// Delete removes the backing file. A reference pointing at a file that no
// longer exists is not an error.
func (s *LocalImageStore) Delete(imageURL string) error {
	path, ok := s.localPath(imageURL)
	if !ok {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image %s: %w", path, err)
	}
	return nil
}

func (s *LocalImageStore) Exists(imageURL string) bool {
	path, ok := s.localPath(imageURL)
	if !ok {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func (s *LocalImageStore) localPath(imageURL string) (string, bool) {
	if imageURL == "" || !strings.HasPrefix(imageURL, s.baseURL+"/") {
		return "", false
	}
	rel := strings.TrimPrefix(imageURL, s.baseURL+"/")
	return filepath.Join(s.baseDir, filepath.FromSlash(rel)), true
}
