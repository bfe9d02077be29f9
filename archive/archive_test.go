package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalBackendPut(t *testing.T) {
	// Mock
	sourceDir := t.TempDir()
	archiveRoot := t.TempDir()
	sourcePath := filepath.Join(sourceDir, "S5P_TEST_L2__NO2____20210305T094812_20210305T112942_17605_01_010400_20210307T031242.nc")
	assert.Nil(t, os.WriteFile(sourcePath, []byte("netcdf bytes"), 0644))

	// Tested code
	backend, err := NewBackend(archiveRoot)
	assert.Nil(t, err)
	err = backend.Put(sourcePath, "sentinel-5p/L2__NO2___/TEST/2021/03/05", filepath.Base(sourcePath))

	// Asserts
	assert.Nil(t, err)
	archivedPath := filepath.Join(archiveRoot, "sentinel-5p", "L2__NO2___", "TEST", "2021", "03", "05", filepath.Base(sourcePath))
	archived, readErr := os.ReadFile(archivedPath)
	assert.Nil(t, readErr)
	assert.Equal(t, []byte("netcdf bytes"), archived)
}

func TestLocalBackendPut_Overwrite(t *testing.T) {
	// Mock
	sourceDir := t.TempDir()
	archiveRoot := t.TempDir()
	sourcePath := filepath.Join(sourceDir, "product.nc")
	assert.Nil(t, os.WriteFile(sourcePath, []byte("first"), 0644))

	backend := newLocalBackend(archiveRoot)
	assert.Nil(t, backend.Put(sourcePath, "sentinel-5p/AUX_CTMANA", "product.nc"))

	// Tested code
	assert.Nil(t, os.WriteFile(sourcePath, []byte("second"), 0644))
	err := backend.Put(sourcePath, "sentinel-5p/AUX_CTMANA", "product.nc")

	// Asserts
	assert.Nil(t, err)
	archived, readErr := os.ReadFile(filepath.Join(archiveRoot, "sentinel-5p", "AUX_CTMANA", "product.nc"))
	assert.Nil(t, readErr)
	assert.Equal(t, []byte("second"), archived)
}

func TestLocalBackendPut_MissingSource(t *testing.T) {
	backend := newLocalBackend(t.TempDir())
	err := backend.Put(filepath.Join(t.TempDir(), "absent.nc"), "sentinel-5p/AUX_CTMANA", "absent.nc")
	assert.NotNil(t, err)
}

func TestSplitS3Target(t *testing.T) {
	scenarios := []struct {
		target string
		bucket string
		prefix string
	}{
		{"s3://products", "products", ""},
		{"s3://products/raw", "products", "raw"},
		{"s3://products/raw/sentinel", "products", "raw/sentinel"},
		{"s3://products/raw/", "products", "raw"},
		{"s3://", "", ""},
	}

	for _, scenario := range scenarios {
		bucket, prefix := splitS3Target(scenario.target)
		assert.Equal(t, scenario.bucket, bucket, "Bucket for %v", scenario.target)
		assert.Equal(t, scenario.prefix, prefix, "Prefix for %v", scenario.target)
	}
}

func TestNewBackend_LocalTarget(t *testing.T) {
	backend, err := NewBackend(t.TempDir())
	assert.Nil(t, err)
	assert.IsType(t, &localBackend{}, backend)
}

func TestNewBackend_S3Target(t *testing.T) {
	// Mock
	t.Setenv("S3_ENDPOINT", "objectstore.example.com:9000")
	t.Setenv("S3_ACCESS_KEY", "testkey")
	t.Setenv("S3_SECRET_KEY", "testsecret")

	// Tested code
	backend, err := NewBackend("s3://products/raw")

	// Asserts
	assert.Nil(t, err)
	assert.IsType(t, &s3Backend{}, backend)
	s3 := backend.(*s3Backend)
	assert.Equal(t, "products", s3.bucket)
	assert.Equal(t, "raw", s3.prefix)
}

func TestNewBackend_Errors(t *testing.T) {
	_, err := NewBackend("")
	assert.NotNil(t, err)

	_, err = NewBackend("s3://")
	assert.NotNil(t, err)
}
